package parser

import (
	"bytes"
	"io"

	"github.com/xiam/churchc/ast"
	"github.com/xiam/churchc/lexer"
)

// DefaultMaxDepth is the maximum list nesting accepted by a parser created
// with default options.
const DefaultMaxDepth = 10000

// Options modifies the behaviour of a Parser
type Options struct {
	// MaxDepth limits how deep lists can be nested. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// Parser builds an AST out of the tokens produced by a lexer.
type Parser struct {
	lx   *lexer.Lexer
	opts Options

	forms []*ast.Node
	tok   lexer.Token
	depth int
}

// New creates a parser that reads from r
func New(r io.Reader) *Parser {
	return &Parser{
		lx: lexer.New(r),
	}
}

// SetOptions replaces the options of the parser
func (p *Parser) SetOptions(opts Options) {
	p.opts = opts
}

func (p *Parser) maxDepth() int {
	if p.opts.MaxDepth > 0 {
		return p.opts.MaxDepth
	}
	return DefaultMaxDepth
}

// Parse reads every top-level form from the input.
func (p *Parser) Parse() error {
	p.forms = []*ast.Node{}
	p.next()

	for !p.tok.Is(lexer.TokenEOF) {
		node, err := p.parseOne()
		if err != nil {
			return err
		}
		p.forms = append(p.forms, node)
	}

	return p.lx.Err()
}

// Forms returns the top-level forms read by Parse, in source order.
func (p *Parser) Forms() []*ast.Node {
	forms := make([]*ast.Node, len(p.forms))
	copy(forms, p.forms)
	return forms
}

// Root returns the single top-level form if there was exactly one, or a list
// holding every top-level form otherwise. A list root is therefore either one
// compound form or a sequence of forms; use Forms to tell them apart.
func (p *Parser) Root() *ast.Node {
	if len(p.forms) == 1 {
		return p.forms[0]
	}
	return ast.NewList(nil, p.forms...)
}

func (p *Parser) next() {
	p.tok = p.lx.Next()
}

func (p *Parser) curr() *lexer.Token {
	tok := p.tok
	return &tok
}

func (p *Parser) fail(err error, text string) error {
	line, col := p.tok.Pos()
	return &Error{Err: err, Text: text, Line: line, Col: col}
}

func (p *Parser) parseOne() (*ast.Node, error) {
	switch p.tok.Type() {
	case lexer.TokenOpenList:
		return p.parseList()

	case lexer.TokenNumber, lexer.TokenSymbol:
		tok := p.curr()
		p.next()
		return ast.NewAtom(tok, tok.Text()), nil

	case lexer.TokenEOF:
		return nil, p.fail(ErrUnexpectedEOF, "")
	}

	return nil, p.fail(ErrUnexpectedToken, p.tok.Text())
}

func (p *Parser) parseList() (*ast.Node, error) {
	if p.depth >= p.maxDepth() {
		return nil, p.fail(ErrNestingTooDeep, p.tok.Text())
	}

	p.depth++
	defer func() {
		p.depth--
	}()

	open := p.curr()
	p.next()

	children := []*ast.Node{}
	for {
		switch p.tok.Type() {
		case lexer.TokenCloseList:
			p.next()
			return ast.NewList(open, children...), nil

		case lexer.TokenEOF:
			return nil, p.fail(ErrUnexpectedEOF, "")
		}

		node, err := p.parseOne()
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
}

// Parse reads the given input and returns its root node. See Parser.Root.
func Parse(in []byte) (*ast.Node, error) {
	p := New(bytes.NewReader(in))

	if err := p.Parse(); err != nil {
		return nil, err
	}

	return p.Root(), nil
}

// ParseForms reads the given input and returns its top-level forms.
func ParseForms(in []byte) ([]*ast.Node, error) {
	p := New(bytes.NewReader(in))

	if err := p.Parse(); err != nil {
		return nil, err
	}

	return p.Forms(), nil
}
