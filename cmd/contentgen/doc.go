// Command contentgen turns a course sheet (XLSX, CSV or a shared Google
// Sheets link) into per-lesson web asset directories.
//
// Subcommands:
//
//	generate  build the course tree (or preview it with --dry-run)
//	sheets    list the sheets of a workbook
//	history   browse past runs
//	config    create, validate or print the configuration
//	doctor    check directories, the history database and an input sheet
//
// Exit status is 0 on success, 2 for configuration or unsupported input, 3
// when the sheet cannot be fetched or decoded, 4 for schema and validation
// failures, 5 when the tree cannot be written and 1 otherwise.
package main
