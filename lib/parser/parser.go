// Package parser builds an Espresso AST from a token stream by recursive
// descent, one function per production:
//
//	program         := assignment_list expression | expression
//	assignment_list := assignment ';' | assignment ';' assignment_list
//	assignment      := 'let' NAME '=' expression
//	expression      := term (('+'|'-') term)?
//	term            := factor (('*'|'/') factor)?
//	factor          := NUMBER | NAME | ('+'|'-') factor | '(' expression ')'
//
// expression and term allow at most one operator application each, so
// `1+2+3` is a syntax error while `1+(2+3)` parses. That asymmetry is part
// of the language; generalizing the tail into a loop would change which
// programs are accepted, so it stays.
package parser

import (
	"fmt"

	"github.com/vyPal/Espresso/lib/lexer"
)

// SyntaxError is the first point where the token stream stopped matching
// the grammar. There is no recovery and no partial AST.
type SyntaxError struct {
	Token    lexer.Token
	Expected string
}

func (e *SyntaxError) Error() string {
	if e.Token.Type == lexer.EOF {
		return fmt.Sprintf("syntax error at line %d: unexpected end of input, expected %s", e.Token.Line, e.Expected)
	}
	return fmt.Sprintf("syntax error at line %d: unexpected %s %q, expected %s", e.Token.Line, e.Token.Type, e.Token.Lexeme, e.Expected)
}

// Parser consumes a token stream produced by lib/lexer. Like the Lexer it
// is single-use.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse is a convenience wrapper over New(tokens).Parse().
func Parse(tokens []lexer.Token) (*Program, error) {
	return New(tokens).Parse()
}

// Parse matches the program production against the whole stream. Anything
// left over after the result expression, a trailing semicolon included, is
// a syntax error.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	for p.peek().Type == lexer.LET {
		a, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMICOLON, "';' after the assignment"); err != nil {
			return nil, err
		}
		prog.Assignments = append(prog.Assignments, a)
	}
	result, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	prog.Result = result
	if tok := p.peek(); tok.Type != lexer.EOF {
		return nil, &SyntaxError{Token: tok, Expected: "end of input"}
	}
	return prog, nil
}

func (p *Parser) parseAssignment() (*Assignment, error) {
	letTok, err := p.expect(lexer.LET, "'let'")
	if err != nil {
		return nil, err
	}
	name, err := p.expect(lexer.NAME, "a name to bind")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EQUALS, "'=' after the name"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Assignment{Name: name.Lexeme, Value: value, Line: letTok.Line}, nil
}

func (p *Parser) parseExpression() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if op := p.peek(); op.Type == lexer.PLUS || op.Type == lexer.MINUS {
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Op: op.Type, Left: left, Right: right, Line: op.Line}, nil
	}
	return left, nil
}

func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if op := p.peek(); op.Type == lexer.TIMES || op.Type == lexer.DIVIDE {
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &BinaryOp{Op: op.Type, Left: left, Right: right, Line: op.Line}, nil
	}
	return left, nil
}

func (p *Parser) parseFactor() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.NUMBER:
		p.advance()
		return &Number{Value: tok.Value}, nil
	case lexer.NAME:
		p.advance()
		return &NameRef{Name: tok.Lexeme, Line: tok.Line}, nil
	case lexer.PLUS, lexer.MINUS:
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: tok.Type, Operand: operand}, nil
	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "')' to close the group"); err != nil {
			return nil, err
		}
		return &Grouped{Inner: inner}, nil
	default:
		return nil, &SyntaxError{Token: tok, Expected: "a number, a name, a unary '+' or '-', or '('"}
	}
}

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		// A fatally truncated stream has no EOF token; synthesize one so
		// every production fails through expect instead of panicking.
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(tt lexer.TokenType, what string) (lexer.Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return lexer.Token{}, &SyntaxError{Token: tok, Expected: what}
	}
	return p.advance(), nil
}
