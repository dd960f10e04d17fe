// Package interpreter evaluates a parsed Espresso program by walking its
// AST. Evaluation is pure: a fresh symbol table is built for every Run and
// nothing outlives the call, so concurrent runs over independent programs
// need no locking.
package interpreter

import (
	"github.com/vyPal/Espresso/lib/parser"
)

// SymbolTable maps bound names to their values for one evaluation.
type SymbolTable map[string]int64

func (st SymbolTable) Bind(name string, value int64) {
	st[name] = value
}

func (st SymbolTable) Lookup(name string) (int64, bool) {
	value, ok := st[name]
	return value, ok
}

// Run folds the program's assignments into a symbol table in declaration
// order and then evaluates the result expression against it. Each
// assignment's value expression sees only the bindings made before it, and
// rebinding a name overwrites the earlier value once the new one has been
// computed.
func Run(prog *parser.Program) (int64, error) {
	symbols := make(SymbolTable, len(prog.Assignments))
	for _, a := range prog.Assignments {
		value, err := evalExpression(a.Value, symbols)
		if err != nil {
			return 0, err
		}
		symbols.Bind(a.Name, value)
	}
	return evalExpression(prog.Result, symbols)
}
