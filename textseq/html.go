package textseq

import (
	"io"

	"github.com/npillmayer/seqs"
	"golang.org/x/net/html"
)

// InnerText creates a text sequence for the textual content of an HTML
// element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that textseq.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
//
// The fragment organization of the resulting sequence reflects the
// hierarchy of the element node's descendents: one element per HTML text
// node.
func InnerText(n *html.Node) (seqs.Seq[string], error) {
	if n == nil {
		return seqs.Seq[string]{}, seqs.ErrIllegalArguments
	}
	out := seqs.Seq[string]{}
	collectText(n, &out)
	return out, nil
}

func collectText(n *html.Node, out *seqs.Seq[string]) {
	if n.Type == html.TextNode {
		*out = out.Append(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}

// TextFromHTML creates a text sequence from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts
// the pure text.
func TextFromHTML(input io.Reader) (seqs.Seq[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return seqs.Seq[string]{}, err
	}
	out := seqs.Seq[string]{}
	for _, n := range nodes {
		collectText(n, &out)
	}
	return out, nil
}
