// Package history records generation runs.
//
// Every run lands in a SQLite database (runs table, one row per course or
// sheet) so `contentgen history` can list and show past runs, and optionally
// in a timestamped JSON file under the history directory in the format the
// content team already archives (YYMMDD_HHMM.json).
package history
