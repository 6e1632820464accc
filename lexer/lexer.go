package lexer

import (
	"bufio"
	"bytes"
	"io"
)

type lexState func(*Lexer) lexState

var (
	isOpenList  = isTokenType(TokenOpenList)
	isCloseList = isTokenType(TokenCloseList)

	isWhitespace = isOneOf(whitespace)
	isDigit      = isOneOf(digits)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	return &Lexer{
		in:   bufio.NewReader(r),
		buf:  []rune{},
		line: 1,
		col:  1,
	}
}

// Lexer represents a lexical analyzer. Tokens are pulled one at a time with
// Next.
type Lexer struct {
	in *bufio.Reader

	tok     Token
	eof     bool
	lastErr error

	buf []rune

	line      int
	col       int
	startLine int
	startCol  int
}

// Next returns the next token from the input. Once the input is exhausted
// every call returns a TokenEOF token at the same position.
func (lx *Lexer) Next() Token {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}
	return lx.tok
}

// Err returns the first non-EOF error found while reading the input.
func (lx *Lexer) Err() error {
	return lx.lastErr
}

func (lx *Lexer) mark() {
	lx.startLine, lx.startCol = lx.line, lx.col
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tok = Token{
		tt:     tt,
		lexeme: string(lx.buf),

		line: lx.startLine,
		col:  lx.startCol,
	}
	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) peek() (rune, bool) {
	r, _, err := lx.in.ReadRune()
	if err != nil {
		return rune(0), false
	}
	_ = lx.in.UnreadRune()
	return r, true
}

func (lx *Lexer) next() (rune, error) {
	r, _, err := lx.in.ReadRune()
	if err != nil {
		return rune(0), err
	}

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	if lx.eof {
		return lexStateEOF
	}

	for {
		p, ok := lx.peek()
		if !ok || !isWhitespace(p) {
			break
		}
		if _, err := lx.next(); err != nil {
			return lexStateError(err)
		}
	}

	lx.mark()

	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {
	case isOpenList(r):
		return lexEmit(TokenOpenList)
	case isCloseList(r):
		return lexEmit(TokenCloseList)
	case isDigit(r):
		return lexCollectStream(TokenNumber, isDigit)
	case r == '-':
		if p, ok := lx.peek(); ok && isDigit(p) {
			return lexCollectStream(TokenNumber, isDigit)
		}
	}

	return lexCollectStream(TokenSymbol, func(r rune) bool {
		return !isDelimiter(r)
	})
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return nil
	}
}

func lexCollectStream(tt TokenType, accept func(rune) bool) lexState {
	return func(lx *Lexer) lexState {
		for {
			p, ok := lx.peek()
			if !ok || !accept(p) {
				break
			}
			if _, err := lx.next(); err != nil {
				break
			}
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		if err != io.EOF && lx.lastErr == nil {
			lx.lastErr = err
		}
		lx.eof = true
		return lexStateEOF
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.mark()
	lx.emit(TokenEOF)
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// including the closing TokenEOF.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Is(TokenEOF) {
			break
		}
	}

	if err := lx.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
