package expr

import (
	"fmt"
	"strconv"
)

// Kind classifies a token.
type Kind int

const (
	EOF    Kind = iota // end of input
	INT                // signed decimal integer
	AT                 // @
	AMP                // &
	PIPE               // |
	LPAREN             // (
	RPAREN             // )
)

var kindNames = [...]string{
	EOF:    "end of input",
	INT:    "integer",
	AT:     "'@'",
	AMP:    "'&'",
	PIPE:   "'|'",
	LPAREN: "'('",
	RPAREN: "')'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is one lexeme with its byte offset in the source.
type Token struct {
	Kind Kind
	Text string
	Pos  int
	Val  int // valid for INT
}

// Lexer splits sieve text into tokens.
type Lexer struct {
	src string
	pos int
}

// NewLexer returns a lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: src}
}

// Next returns the next token, or an error wrapping ErrMalformedLiteral for
// a character outside the grammar or an integer that overflows int.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]
	switch c {
	case '@':
		l.pos++
		return Token{Kind: AT, Text: "@", Pos: start}, nil
	case '&':
		l.pos++
		return Token{Kind: AMP, Text: "&", Pos: start}, nil
	case '|':
		l.pos++
		return Token{Kind: PIPE, Text: "|", Pos: start}, nil
	case '(':
		l.pos++
		return Token{Kind: LPAREN, Text: "(", Pos: start}, nil
	case ')':
		l.pos++
		return Token{Kind: RPAREN, Text: ")", Pos: start}, nil
	}

	if c == '-' || c == '+' {
		l.pos++
	}
	digits := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos == digits {
		l.pos = start + 1
		return Token{}, malformed(l.src, start, l.pos, "unexpected character")
	}
	text := l.src[start:l.pos]
	v, err := strconv.Atoi(text)
	if err != nil {
		return Token{}, malformed(l.src, start, l.pos, "integer out of range")
	}

	return Token{Kind: INT, Text: text, Pos: start, Val: v}, nil
}

// Tokenize lexes the whole input, EOF token included.
func Tokenize(src string) ([]Token, error) {
	l := NewLexer(src)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

// malformed builds the error reported for src[from:to].
func malformed(src string, from, to int, reason string) error {
	if to > len(src) {
		to = len(src)
	}
	if from > to {
		from = to
	}

	return fmt.Errorf("expr: %q at offset %d: %s: %w", src[from:to], from, reason, ErrMalformedLiteral)
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
