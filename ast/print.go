package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable representation of a node to w
func Print(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	if n == nil {
		fmt.Fprintf(w, ":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Fprintf(w, "%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		fmt.Fprintf(w, "(%v)\n", n.Token())
		for i := 0; i < n.Len(); i++ {
			printLevel(w, n.At(i), level+1)
		}

	case NodeTypeAtom:
		fmt.Fprintf(w, "%q (%v)\n", n.Text(), n.Token())

	default:
		panic("unknown node type")
	}
}

// Encode transforms a node into its S-expression text representation
func Encode(n *Node) []byte {
	var sb strings.Builder
	encodeNode(&sb, n)
	return []byte(sb.String())
}

func encodeNode(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteString(":nil")
		return
	}
	switch n.Type() {
	case NodeTypeList:
		sb.WriteByte('(')
		for i := 0; i < n.Len(); i++ {
			if i > 0 {
				sb.WriteByte(' ')
			}
			encodeNode(sb, n.At(i))
		}
		sb.WriteByte(')')

	case NodeTypeAtom:
		sb.WriteString(n.Text())

	default:
		panic("unknown node type")
	}
}
