// Package cmd implements the command-line interface for gokv. It provides
// an interactive REPL, one-shot command verbs that each run a single
// command against a freshly loaded store and save on exit, and a metrics
// dump of the current Prometheus counters.
//
// See gokv --help for a list of all commands.
package cmd
