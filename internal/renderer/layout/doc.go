// Package layout maps between the raw bytes of a line and the columns they
// occupy once tabs are expanded.
//
// Every byte other than a tab advances the rendered column by one. A tab
// advances it to the next multiple of the tab width. Lines are treated as
// plain byte slices; no attempt is made to measure multi-byte characters.
package layout
