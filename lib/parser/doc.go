// Package parser tokenises a single command line into a command.Request:
// a case-insensitive action token followed by bare or double-quoted
// string arguments.
package parser
