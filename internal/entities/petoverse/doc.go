// Package petoverse holds the data structures shared by every Petoverse layer.
// Everything here is plain data with JSON tags; behaviour lives in the draft,
// flow, cosmetics and catalog packages.
package petoverse
