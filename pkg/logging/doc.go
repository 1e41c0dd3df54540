// Package logging configures structured logging for the idgen CLI.
//
// Logs always go to stderr so they never mix with generated identifiers on
// stdout. The package wraps log/slog with level and format parsing suitable
// for flag values.
package logging
