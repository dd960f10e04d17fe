package lexer

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	NAME   // identifier
	NUMBER // decimal integer literal

	// Keywords
	LET // "let"

	// Operators
	PLUS   // +
	MINUS  // -
	TIMES  // *
	DIVIDE // /

	// Punctuation
	LPAREN    // (
	RPAREN    // )
	EQUALS    // =
	SEMICOLON // ;
)

var tokenNames = [...]string{
	EOF:       "EOF",
	NAME:      "NAME",
	NUMBER:    "NUMBER",
	LET:       "LET",
	PLUS:      "PLUS",
	MINUS:     "MINUS",
	TIMES:     "TIMES",
	DIVIDE:    "DIVIDE",
	LPAREN:    "LPAREN",
	RPAREN:    "RPAREN",
	EQUALS:    "EQUALS",
	SEMICOLON: "SEMICOLON",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer. Tokens are values;
// the lexer creates them and nothing downstream mutates them.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Value  int64  // parsed value, set only for NUMBER
	Line   int    // 1-based source line
	Col    int    // 1-based column of the first rune
}

func (t Token) String() string {
	return fmt.Sprintf("%-9s %-10q line %d col %d", t.Type, t.Lexeme, t.Line, t.Col)
}
