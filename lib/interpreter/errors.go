package interpreter

import "fmt"

// UndefinedNameError means an expression referenced a name with no earlier
// binding. Forward and self references count as undefined.
type UndefinedNameError struct {
	Name string
	Line int
}

func (e *UndefinedNameError) Error() string {
	return fmt.Sprintf("undefined name %q at line %d", e.Name, e.Line)
}

// DivisionByZeroError means the right side of a '/' evaluated to zero.
type DivisionByZeroError struct {
	Line int
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero at line %d", e.Line)
}
