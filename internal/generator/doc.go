// Package generator materializes a parsed course as a lesson directory tree.
//
// Plan computes every directory and file (path, content, mode) from a course
// and options; Generate either writes that plan or, for dry runs, reports it
// untouched. Both paths share Plan so a preview cannot drift from what a real
// run writes.
package generator
