// Package charlist provides the circular alphabets that columns scroll through.
//
// A [List] is built from an alphabet string of N code points and exposes a
// sequence of length 2N+1:
//
//	[Empty, a0 .. aN-1, a0 .. aN-1]
//
// Position 0 is the [Empty] sentinel used as the endpoint of insert and delete
// paths. The second copy of the alphabet lets a path cross the wraparound
// point with plain integer arithmetic, so a column scrolling from '9' to '1'
// over the digits walks 9, 0, 1 instead of 9, 8, ... 1.
//
// # Example
//
//	digits := charlist.New(charlist.Number)
//	p, ok := digits.Path('9', '1', charlist.Any)
//	// ok == true, p.Start == 10, p.End == 12
//
// Lists are immutable after construction and may be shared between columns.
package charlist
