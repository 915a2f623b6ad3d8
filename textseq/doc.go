/*
Package textseq bridges persistent sequences and Unicode text.

It splits text into grapheme clusters or line-wrap segments and loads text
files fragment-wise, in each case producing a persistent sequence from
package seqs. A small console formatter prints such sequences with
terminal-aware line breaking.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.
*/
package textseq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'seqs'
func tracer() tracing.Trace {
	return tracing.Select("seqs")
}
