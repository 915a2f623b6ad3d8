/*
Package seqs provides persistent general-purpose sequences.

Sequences

A Seq organizes its elements internally in a 2-3 finger tree. Finger trees
(Hinze & Paterson 2006) keep a handful of elements at each end of the
sequence directly accessible, with the bulk of the elements stored in a
recursive middle tree of 2-3 nodes. This gives sequences performance
characteristics differing from Go slices:

	Operation     |   Seq                 |  Slice
	--------------+-----------------------+--------
	Push/Pop end  |   O(1) amortized      |   O(1)*
	Index         |   O(log n)            |   O(1)
	Concatenate   |   O(log min(m,n))     |   O(n)
	Split         |   O(log n)            |   O(1)†
	Insert        |   O(log n)            |   O(n)

	*  amortized, and only at the back
	†  but aliasing the same backing array

Every operation returns a new sequence value and leaves its input
untouched; older versions stay valid and share untouched sub-trees with
newer ones. Because no operation ever mutates a published value, sequences
may be read concurrently from any number of goroutines without locking.

A sequence created by

	seqs.Seq[int]{}

is a valid object and behaves like the empty sequence.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package seqs

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SeqError is an error type for the seqs module.
type SeqError string

func (e SeqError) Error() string {
	return string(e)
}

// ErrEmptySeq is flagged whenever an element is requested from an empty
// sequence.
const ErrEmptySeq = SeqError("access to empty sequence")

// ErrIndexOutOfBounds is flagged whenever a sequence position is negative or
// greater than the length of the sequence.
const ErrIndexOutOfBounds = SeqError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SeqError("illegal arguments")

// ErrInvalidStructure signals a broken tree invariant, detected by Check.
const ErrInvalidStructure = SeqError("invalid sequence structure")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
