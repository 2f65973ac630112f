// Package parse defines the character stream contract shared by every text
// source a grammar may run over, and a small set of combinators built only on
// that contract.
//
// A grammar written against Input runs unchanged over a single string (Str)
// or over the multi-line virtual stream of package strslice.
package parse
