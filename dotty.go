package seqs

import (
	"fmt"
	"io"
)

// dotids hands out node IDs for the DOT dump.
type dotids struct {
	max int
}

func (ids *dotids) alloc() int {
	ids.max++
	return ids.max
}

// Seq2Dot outputs the internal structure of a Seq in Graphviz DOT format
// (for debugging purposes).
func Seq2Dot[T any](s Seq[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12,shape=box];\n")
	ids := &dotids{}
	switch t := s.tree.(type) {
	case nil:
		fmt.Fprintf(w, "\"%d\" [label=\"empty\"];\n", ids.alloc())
	case *singleTree[T]:
		fmt.Fprintf(w, "\"%d\" [label=\"single\\n“%v”\"];\n", ids.alloc(), t.item)
	case *deepTree[T]:
		id := ids.alloc()
		fmt.Fprintf(w, "\"%d\" [label=\"deep n=%d\"];\n", id, t.size)
		dotDigit(w, ids, id, t.pre)
		dotSpine[T](w, ids, id, t.mid)
		dotDigit(w, ids, id, t.suf)
	}
	io.WriteString(w, "}\n")
}

func dotDigit[T any](w io.Writer, ids *dotids, parent int, d []T) {
	id := ids.alloc()
	label := ""
	for i, x := range d {
		if i > 0 {
			label += " "
		}
		label += fmt.Sprintf("“%v”", x)
	}
	fmt.Fprintf(w, "\"%d\" [label=\"%s\",style=filled,fillcolor=lightgray];\n", id, label)
	fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", parent, id)
}

func dotSpine[T any](w io.Writer, ids *dotids, parent int, sp spine[T]) {
	switch t := sp.(type) {
	case nil:
		id := ids.alloc()
		fmt.Fprintf(w, "\"%d\" [label=\"∅\",shape=circle];\n", id)
		fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", parent, id)
	case *spineSingle[T]:
		id := ids.alloc()
		fmt.Fprintf(w, "\"%d\" [label=\"spine single\"];\n", id)
		fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", parent, id)
		dotNode(w, ids, id, t.node)
	case *spineDeep[T]:
		id := ids.alloc()
		fmt.Fprintf(w, "\"%d\" [label=\"spine deep n=%d\"];\n", id, t.size)
		fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", parent, id)
		for _, n := range t.pre {
			dotNode(w, ids, id, n)
		}
		dotSpine[T](w, ids, id, t.mid)
		for _, n := range t.suf {
			dotNode(w, ids, id, n)
		}
	}
}

func dotNode[T any](w io.Writer, ids *dotids, parent int, n *node23[T]) {
	id := ids.alloc()
	if n.leafs != nil {
		label := ""
		for i, x := range n.leafs {
			if i > 0 {
				label += " "
			}
			label += fmt.Sprintf("“%v”", x)
		}
		fmt.Fprintf(w, "\"%d\" [label=\"%s\",style=filled,fillcolor=lightblue];\n", id, label)
		fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", parent, id)
		return
	}
	fmt.Fprintf(w, "\"%d\" [label=\"node%d n=%d\"];\n", id, len(n.kids), n.size)
	fmt.Fprintf(w, "\"%d\" -> \"%d\";\n", parent, id)
	for _, k := range n.kids {
		dotNode(w, ids, id, k)
	}
}
