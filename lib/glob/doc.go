// Package glob implements the key-pattern matcher the KEYS command uses:
// '*' for zero or more characters, '?' for exactly one, and '\' to escape
// the following character literally.
package glob
