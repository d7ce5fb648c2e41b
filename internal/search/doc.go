// Package search holds the in-memory half of the search pipeline: query
// matching, rank keys per sort type, stable ordering and page slicing.
//
// Everything here is pure. Functions never mutate the slices they are
// given and perform no I/O, so they are safe to call from any goroutine.
package search
