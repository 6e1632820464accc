package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid    TokenType = iota
	TokenOpenList             // Open parenthesis: "("
	TokenCloseList            // Close parenthesis: ")"
	TokenNumber               // Decimal integer, optionally negative: "-12"
	TokenSymbol               // Any other run of non-delimiters
	TokenEOF                  // End of input
)

var tokenValues = map[TokenType][]rune{
	TokenOpenList:  []rune{'('},
	TokenCloseList: []rune{')'},
}

var (
	whitespace = []rune(" \t\r\n")
	digits     = []rune("0123456789")
)

var tokenNames = map[TokenType]string{
	TokenInvalid:   "invalid",
	TokenOpenList:  "open_list",
	TokenCloseList: "close_list",
	TokenNumber:    "number",
	TokenSymbol:    "symbol",
	TokenEOF:       "EOF",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return isOneOf(tokenValues[tt])
}

func isOneOf(set []rune) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range set {
			if v == r {
				return true
			}
		}
		return false
	}
}

func isDelimiter(r rune) bool {
	return isWhitespace(r) || isOpenList(r) || isCloseList(r)
}
