// Package logging provides the small leveled logger used by the
// dispatcher: a name-tagged, printf-style logger with
// no dependency on any particular consensus or RPC library's logger
// interface.
package logging
