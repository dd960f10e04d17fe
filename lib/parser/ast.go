package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vyPal/Espresso/lib/lexer"
)

// Node is implemented by every AST node.
type Node interface {
	fmt.Stringer
	node()
}

// Expr is a Node that produces a value when evaluated.
type Expr interface {
	Node
	expr()
}

// Number is an integer literal.
type Number struct {
	Value int64
}

// NameRef is a reference to a bound name.
type NameRef struct {
	Name string
	Line int
}

// UnaryOp is a prefix '+' or '-' applied to a factor.
type UnaryOp struct {
	Op      lexer.TokenType
	Operand Expr
}

// BinaryOp is a single application of '+', '-', '*' or '/'.
type BinaryOp struct {
	Op    lexer.TokenType
	Left  Expr
	Right Expr
	Line  int
}

// Grouped is a parenthesized expression. The parentheses stay visible in
// the tree so dumps show exactly what was written.
type Grouped struct {
	Inner Expr
}

// Assignment binds the value of an expression to a name.
type Assignment struct {
	Name  string
	Value Expr
	Line  int
}

// Program is an ordered list of assignments followed by the expression
// whose value is the program's result.
type Program struct {
	Assignments []*Assignment
	Result      Expr
}

func (*Number) node()     {}
func (*NameRef) node()    {}
func (*UnaryOp) node()    {}
func (*BinaryOp) node()   {}
func (*Grouped) node()    {}
func (*Assignment) node() {}
func (*Program) node()    {}

func (*Number) expr()   {}
func (*NameRef) expr()  {}
func (*UnaryOp) expr()  {}
func (*BinaryOp) expr() {}
func (*Grouped) expr()  {}

func opString(op lexer.TokenType) string {
	switch op {
	case lexer.PLUS:
		return "+"
	case lexer.MINUS:
		return "-"
	case lexer.TIMES:
		return "*"
	case lexer.DIVIDE:
		return "/"
	}
	return op.String()
}

func (n *Number) String() string  { return fmt.Sprintf("%d", n.Value) }
func (n *NameRef) String() string { return n.Name }

func (n *UnaryOp) String() string {
	return fmt.Sprintf("(%s %s)", opString(n.Op), n.Operand)
}

func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", opString(n.Op), n.Left, n.Right)
}

func (n *Grouped) String() string {
	return fmt.Sprintf("(group %s)", n.Inner)
}

func (n *Assignment) String() string {
	return fmt.Sprintf("(let %s %s)", n.Name, n.Value)
}

func (n *Program) String() string {
	var b strings.Builder
	b.WriteString("(program")
	for _, a := range n.Assignments {
		b.WriteString(" ")
		b.WriteString(a.String())
	}
	b.WriteString(" ")
	b.WriteString(n.Result.String())
	b.WriteString(")")
	return b.String()
}

func (n *Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Value int64  `json:"value"`
	}{"number", n.Value})
}

func (n *NameRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
		Line int    `json:"line"`
	}{"name", n.Name, n.Line})
}

func (n *UnaryOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind    string `json:"kind"`
		Op      string `json:"op"`
		Operand Expr   `json:"operand"`
	}{"unary", opString(n.Op), n.Operand})
}

func (n *BinaryOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Op    string `json:"op"`
		Left  Expr   `json:"left"`
		Right Expr   `json:"right"`
		Line  int    `json:"line"`
	}{"binary", opString(n.Op), n.Left, n.Right, n.Line})
}

func (n *Grouped) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Inner Expr   `json:"inner"`
	}{"group", n.Inner})
}

func (n *Assignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  string `json:"kind"`
		Name  string `json:"name"`
		Value Expr   `json:"value"`
		Line  int    `json:"line"`
	}{"let", n.Name, n.Value, n.Line})
}

func (n *Program) MarshalJSON() ([]byte, error) {
	assignments := n.Assignments
	if assignments == nil {
		assignments = []*Assignment{}
	}
	return json.Marshal(struct {
		Kind        string        `json:"kind"`
		Assignments []*Assignment `json:"assignments"`
		Result      Expr          `json:"result"`
	}{"program", assignments, n.Result})
}
