// Package analyzer runs a static pass over a parsed program without
// evaluating anything. It walks assignments and the result expression in
// the same order the interpreter would, so every name is judged against
// the bindings that will actually exist when that expression runs.
package analyzer

import (
	"fmt"

	"github.com/vyPal/Espresso/lib/lexer"
	"github.com/vyPal/Espresso/lib/parser"
)

// Analyze reports, in source order:
//
//   - ERROR: a name referenced before any earlier assignment binds it
//   - WARN: a name rebound by a later assignment
//   - WARN: a division whose right operand is a literal zero
//   - WARN: a binding never referenced afterwards (reported last, once the
//     whole program has been walked)
func Analyze(prog *parser.Program) []Diagnostic {
	ctx := NewContext()
	var diags []Diagnostic
	for _, a := range prog.Assignments {
		// The value is checked before the name is bound; an assignment
		// never sees itself.
		diags = checkExpr(a.Value, ctx, diags)
		if prev, rebound := ctx.Bind(a.Name, a.Line); rebound {
			diags = append(diags, Diagnostic{
				Severity: Warning,
				Line:     a.Line,
				Message:  fmt.Sprintf("name %q rebound; the binding from line %d is shadowed", a.Name, prev.Line),
			})
		}
	}
	diags = checkExpr(prog.Result, ctx, diags)
	for _, b := range ctx.Bindings() {
		if !b.Used {
			diags = append(diags, Diagnostic{
				Severity: Warning,
				Line:     b.Line,
				Message:  fmt.Sprintf("name %q is bound but never used", b.Name),
			})
		}
	}
	return diags
}

func checkExpr(expr parser.Expr, ctx *Context, diags []Diagnostic) []Diagnostic {
	switch node := expr.(type) {
	case *parser.Number:
	case *parser.NameRef:
		if _, ok := ctx.Lookup(node.Name); !ok {
			diags = append(diags, Diagnostic{
				Severity: Error,
				Line:     node.Line,
				Message:  fmt.Sprintf("name %q is not bound at this point", node.Name),
			})
		}
	case *parser.UnaryOp:
		diags = checkExpr(node.Operand, ctx, diags)
	case *parser.BinaryOp:
		diags = checkExpr(node.Left, ctx, diags)
		diags = checkExpr(node.Right, ctx, diags)
		if node.Op == lexer.DIVIDE && isLiteralZero(node.Right) {
			diags = append(diags, Diagnostic{
				Severity: Warning,
				Line:     node.Line,
				Message:  "division by literal zero always fails",
			})
		}
	case *parser.Grouped:
		diags = checkExpr(node.Inner, ctx, diags)
	}
	return diags
}

// isLiteralZero unwraps parentheses and reports whether the expression is
// the literal 0. Anything computed, a name included, is left for runtime.
func isLiteralZero(expr parser.Expr) bool {
	for {
		switch node := expr.(type) {
		case *parser.Number:
			return node.Value == 0
		case *parser.Grouped:
			expr = node.Inner
		default:
			return false
		}
	}
}
