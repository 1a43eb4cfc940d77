// Package xfs is a small filesystem access layer: whole-file and block reads and writes, their
// asynchronous counterparts, and a normalized Path value type.
//
// Synchronous operations never fail loudly. Missing files, short reads, and out of bounds blocks
// all produce empty (or zero, or false) results. FileReader.Size and FileReader.Block are the
// exceptions, returning errors which distinguish these cases.
//
// Asynchronous operations run their synchronous counterpart on a new goroutine and return a Future
// which resolves to the same value. They cannot be cancelled.
package xfs
