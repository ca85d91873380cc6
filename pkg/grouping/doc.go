// Package grouping turns a grouping diagnostics tree into an annotated view
// tree ready for display.
//
// Rendering never mutates its input and has no error conditions.
// Components that carry no diagnostic value are dropped. Non-contributing
// components are dropped unless the caller asks for them, and each level
// records whether its values read best inline or one per line.
package grouping
