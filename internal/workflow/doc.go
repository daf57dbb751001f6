// Package workflow drives a generate invocation from input location to
// history record.
//
// The Runner takes the state directory lock, assigns a run id, expands
// --all-sheets into one unit of work per workbook sheet, and for each unit
// loads the sheet, parses and lints the course, and hands it to the
// generator. Units run sequentially; a failing unit is logged and recorded
// and the batch moves on. Each finished unit, success or failure, is written
// to the SQLite history and, when enabled, a JSON history file.
package workflow
