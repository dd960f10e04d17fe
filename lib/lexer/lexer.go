// Package lexer turns Espresso source text into a stream of tokens.
//
// The scanner is a hand-written maximal-munch lexer over a rune slice.
// Identifiers and numbers consume the longest possible run before any
// single-character rule is tried, and keywords are recognized by a table
// lookup after an identifier has been matched, so "lettuce" is a NAME and
// never LET followed by garbage.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// IllegalCharError reports a character the lexer has no rule for. It is
// recoverable: the lexer skips the offending rune and keeps scanning.
type IllegalCharError struct {
	Char rune
	Line int
	Col  int
}

func (e *IllegalCharError) Error() string {
	return fmt.Sprintf("illegal character %q at line %d, column %d", e.Char, e.Line, e.Col)
}

var keywords = map[string]TokenType{
	"let": LET,
}

// Lexer scans a single source string. It is single-use; build a new one per
// input.
type Lexer struct {
	src  []rune
	pos  int
	line int
	col  int
	errs *multierror.Error
}

func New(src string) *Lexer {
	return &Lexer{src: []rune(src), line: 1, col: 1}
}

// Lex tokenizes src in one shot and appends a final EOF token. The returned
// error combines every illegal-character report with the fatal error, if any,
// that stopped the scan early. Use Recoverable to tell the two cases apart.
func Lex(src string) ([]Token, error) {
	l := New(src)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, multierror.Append(l.errs, err).ErrorOrNil()
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, l.Err()
		}
	}
}

// Recoverable reports whether err consists only of illegal-character reports.
// A recoverable error means the token stream is complete apart from the
// skipped runes and is still worth parsing.
func Recoverable(err error) bool {
	if err == nil {
		return true
	}
	merr, ok := err.(*multierror.Error)
	if !ok {
		_, ok := err.(*IllegalCharError)
		return ok
	}
	for _, e := range merr.Errors {
		if _, ok := e.(*IllegalCharError); !ok {
			return false
		}
	}
	return true
}

// Err returns the illegal-character reports collected so far, or nil.
func (l *Lexer) Err() error {
	return l.errs.ErrorOrNil()
}

// Next returns the next token. At end of input it returns an EOF token, and
// keeps returning one on every later call. The error is non-nil only for
// fatal conditions (a NUMBER literal that overflows int64); illegal
// characters are recorded, skipped, and never stop the scan.
func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.src) {
		r := l.src[l.pos]
		switch {
		case r == ' ' || r == '\t' || r == '\r':
			l.advance()
		case r == '\n':
			l.pos++
			l.line++
			l.col = 1
		case isDigit(r):
			return l.scanNumber()
		case isNameStart(r):
			return l.scanName(), nil
		default:
			if tt, ok := singleChar(r); ok {
				tok := Token{Type: tt, Lexeme: string(r), Line: l.line, Col: l.col}
				l.advance()
				return tok, nil
			}
			l.errs = multierror.Append(l.errs, &IllegalCharError{Char: r, Line: l.line, Col: l.col})
			l.advance()
		}
	}
	return Token{Type: EOF, Line: l.line, Col: l.col}, nil
}

func singleChar(r rune) (TokenType, bool) {
	switch r {
	case '+':
		return PLUS, true
	case '-':
		return MINUS, true
	case '*':
		return TIMES, true
	case '/':
		return DIVIDE, true
	case '(':
		return LPAREN, true
	case ')':
		return RPAREN, true
	case '=':
		return EQUALS, true
	case ';':
		return SEMICOLON, true
	}
	return EOF, false
}

func (l *Lexer) scanNumber() (Token, error) {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("line %d, column %d: invalid number literal %q: %w", line, col, lexeme, err)
	}
	return Token{Type: NUMBER, Lexeme: lexeme, Value: value, Line: line, Col: col}, nil
}

func (l *Lexer) scanName() Token {
	line, col := l.line, l.col
	start := l.pos
	for l.pos < len(l.src) && isNamePart(l.src[l.pos]) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := NAME
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line, Col: col}
}

func (l *Lexer) advance() {
	l.pos++
	l.col++
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNamePart(r rune) bool {
	return isNameStart(r) || isDigit(r)
}
