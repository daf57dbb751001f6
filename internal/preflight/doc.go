// Package preflight provides readiness checks for the filesystem paths and
// inputs contentgen depends on.
//
// The CLI "contentgen doctor" command runs RunAll and renders the results as
// a table. Checks never create anything; a missing output root passes when
// its nearest existing parent is writable because generate creates it.
package preflight
