package textseq

import (
	"bufio"
	"strings"

	"github.com/npillmayer/seqs"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Graphemes splits a string into its grapheme clusters (user-perceived
// characters, UAX#29) and returns them as a persistent sequence.
func Graphemes(s string) seqs.Seq[string] {
	gstr := grapheme.StringFromString(s)
	out := seqs.Seq[string]{}
	for i := 0; i < gstr.Len(); i++ {
		out = out.Append(gstr.Nth(i))
	}
	return out
}

// Segments splits a string at line-wrap opportunities (UAX#14) and returns
// the fragments as a persistent sequence. Fragments keep their trailing
// spaces, so concatenating the elements restores the input.
func Segments(s string) seqs.Seq[string] {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(s)))
	out := seqs.Seq[string]{}
	for segmenter.Next() {
		out = out.Append(string(segmenter.Bytes()))
	}
	return out
}

// Join concatenates the elements of a string sequence. Inverse of Segments.
func Join(s seqs.Seq[string]) string {
	var b strings.Builder
	s.Each(func(frag string) bool {
		b.WriteString(frag)
		return true
	})
	return b.String()
}
