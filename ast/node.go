package ast

import (
	"fmt"
	"strconv"

	"github.com/xiam/churchc/lexer"
)

// Node represents a leaf or a branch of the AST. Nodes are not modified after
// they're created.
type Node struct {
	nt   NodeType
	tok  *lexer.Token
	text string
	list []*Node
}

func newNode(nt NodeType, tok *lexer.Token, text string, list []*Node) *Node {
	return &Node{
		nt:   nt,
		tok:  tok,
		text: text,
		list: list,
	}
}

// NewAtom creates and returns a node of type "atom" holding the given text
func NewAtom(tok *lexer.Token, text string) *Node {
	return newNode(NodeTypeAtom, tok, text, nil)
}

// NewList creates and returns a node of type "list". Nil children are
// discarded.
func NewList(tok *lexer.Token, children ...*Node) *Node {
	list := make([]*Node, 0, len(children))
	for _, child := range children {
		if child != nil {
			list = append(list, child)
		}
	}
	return newNode(NodeTypeList, tok, "", list)
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Pos returns the source position of the node, or (0, 0) if the node was not
// created from source text.
func (n Node) Pos() (int, int) {
	if n.tok == nil {
		return 0, 0
	}
	return n.tok.Pos()
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Text returns the text of an atom, or an empty string for lists.
func (n Node) Text() string {
	return n.text
}

// List returns a copy of the children of the node.
func (n *Node) List() []*Node {
	list := make([]*Node, len(n.list))
	copy(list, n.list)
	return list
}

// Len returns the number of children of a list node.
func (n *Node) Len() int {
	return len(n.list)
}

// At returns the i-th child of a list node.
func (n *Node) At(i int) *Node {
	return n.list[i]
}

// IsAtom returns true if the node is of type atom
func (n *Node) IsAtom() bool {
	return n.nt&nodeTypeValue > 0
}

// IsList returns true if the node is of type list
func (n *Node) IsList() bool {
	return n.nt&nodeTypeVector > 0
}

// IsInteger returns true if the node is an atom holding a signed decimal
// integer literal.
func (n *Node) IsInteger() bool {
	if !n.IsAtom() || n.text == "" {
		return false
	}
	s := n.text
	if s[0] == '-' && len(s) > 1 {
		s = s[1:]
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Int parses the integer literal held by an atom.
func (n *Node) Int() (int64, error) {
	if !n.IsInteger() {
		return 0, fmt.Errorf("%q is not an integer literal", n.text)
	}
	return strconv.ParseInt(n.text, 10, 64)
}

func (n Node) String() string {
	if n.nt == NodeTypeList {
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.list))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.text)
}
