// Package logging constructs the slog loggers used across profilescan.
//
// Two formats are supported: a compact console handler for humans
// (timestamp, level, message, key=value attrs) and a JSON handler for
// machine consumption. Diagnostic output shares the stream with the normal
// report, so both handlers write to stdout by default; errors raised before
// a logger exists go to stderr at the CLI boundary instead.
package logging
