// Package services defines shared utilities consumed by the loader, parser,
// generator, and the CLI that drives them.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, sheet names, and course codes for
//     logging.
//   - Structured error markers plus the Wrap helper that classify failures
//     (unsupported format, unavailable source, malformed source, missing
//     columns, write failures) into history records and exit codes.
//
// Use these helpers when wiring new pipeline steps so failure handling stays
// uniform from the loader down to the command line.
package services
