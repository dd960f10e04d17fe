package interpreter

import (
	"fmt"

	"github.com/vyPal/Espresso/lib/lexer"
	"github.com/vyPal/Espresso/lib/parser"
)

func evalExpression(expr parser.Expr, symbols SymbolTable) (int64, error) {
	switch node := expr.(type) {
	case *parser.Number:
		return node.Value, nil
	case *parser.NameRef:
		value, ok := symbols.Lookup(node.Name)
		if !ok {
			return 0, &UndefinedNameError{Name: node.Name, Line: node.Line}
		}
		return value, nil
	case *parser.UnaryOp:
		return evalUnary(node, symbols)
	case *parser.BinaryOp:
		return evalBinary(node, symbols)
	case *parser.Grouped:
		return evalExpression(node.Inner, symbols)
	}
	return 0, fmt.Errorf("cannot evaluate %T node", expr)
}

func evalUnary(node *parser.UnaryOp, symbols SymbolTable) (int64, error) {
	operand, err := evalExpression(node.Operand, symbols)
	if err != nil {
		return 0, err
	}
	if node.Op == lexer.MINUS {
		return -operand, nil
	}
	// Unary '+' is the identity.
	return operand, nil
}

func evalBinary(node *parser.BinaryOp, symbols SymbolTable) (int64, error) {
	left, err := evalExpression(node.Left, symbols)
	if err != nil {
		return 0, err
	}
	right, err := evalExpression(node.Right, symbols)
	if err != nil {
		return 0, err
	}
	switch node.Op {
	case lexer.PLUS:
		return left + right, nil
	case lexer.MINUS:
		return left - right, nil
	case lexer.TIMES:
		return left * right, nil
	case lexer.DIVIDE:
		if right == 0 {
			return 0, &DivisionByZeroError{Line: node.Line}
		}
		// Go integer division truncates toward zero: 10/3 is 3, -10/3 is -3.
		return left / right, nil
	}
	return 0, fmt.Errorf("cannot evaluate operator %s", node.Op)
}
