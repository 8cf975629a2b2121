// Package pairfile reads and writes ordered maps as YAML documents.
//
// A pair file is a single YAML mapping whose keys and values are scalars:
//
//	a: 1
//	b: hello
//	c: "3"
//
// Document order is insertion order. Later duplicates of a key update the
// value in place, as Add would.
package pairfile
