// Package course turns a loaded course sheet into the structured course model
// consumed by the generator.
//
// Parsing validates the required columns, cleans the rows (subject fill,
// chapter forward-fill, absent markers), folds rows into chapters, normalizes
// media URLs, and derives the course code from the first lesson's video URL.
// The resulting Course is read-only. Lint reports inputs that parse but are
// probably wrong; callers decide whether warnings are fatal.
package course
