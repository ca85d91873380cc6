// Package loader reads grouping diagnostics and scrubbing rules from local files.
//
// A path of "-" reads from the given stdin reader. Nothing is ever written back.
package loader
