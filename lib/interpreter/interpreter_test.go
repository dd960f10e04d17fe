package interpreter

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyPal/Espresso/lib/lexer"
	"github.com/vyPal/Espresso/lib/parser"
)

func mustParse(t *testing.T, src string) *parser.Program {
	t.Helper()
	tokens, err := lexer.Lex(src)
	require.NoError(t, err)
	prog, err := parser.Parse(tokens)
	require.NoError(t, err)
	return prog
}

func eval(t *testing.T, src string) int64 {
	t.Helper()
	got, err := Run(mustParse(t, src))
	require.NoError(t, err, "running %q", src)
	return got
}

func evalErr(t *testing.T, src string) error {
	t.Helper()
	_, err := Run(mustParse(t, src))
	require.Error(t, err, "running %q", src)
	return err
}

func TestRun(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{"let x = 13;\nlet y = 2;\nx + y * 100", 213},
		{"let x=2;let y=4+x;(y+3)*x", 18},
		{"3+4*5", 23},
		{"3*4+5", 17},
		{"7", 7},
		{"(2+3)*(4-1)", 15},
		{"-(3+4)", -7},
		{"+5", 5},
		{"--5", 5},
		{"let x=1;let x=x+1;x", 2},
		{"let a=5;let b=a*a;b-a", 20},
		{"let a=0;a*100", 0},
		{"1000000*1000000", 1000000000000},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, eval(t, tc.src), "running %q", tc.src)
	}
}

func TestRunDivisionTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{"10/3", 3},
		{"-10/3", -3},
		{"10/-3", -3},
		{"-10/-3", 3},
		{"9/3", 3},
		{"1/2", 0},
		{"-1/2", 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, eval(t, tc.src), "running %q", tc.src)
	}
}

func TestRunDivisionByZero(t *testing.T) {
	for _, src := range []string{"10/0", "let x=0;10/x", "10/(5-5)"} {
		err := evalErr(t, src)
		var dz *DivisionByZeroError
		assert.True(t, errors.As(err, &dz), "running %q: got %T: %v", src, err, err)
	}
}

func TestRunUndefinedName(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"x+1", "x"},
		{"let a=1;b", "b"},
		// An assignment only sees bindings made before it, itself excluded.
		{"let x=x+1;x", "x"},
		{"let a=b;let b=1;a", "b"},
	}
	for _, tc := range tests {
		err := evalErr(t, tc.src)
		var undef *UndefinedNameError
		require.True(t, errors.As(err, &undef), "running %q: got %T: %v", tc.src, err, err)
		assert.Equal(t, tc.want, undef.Name, "running %q", tc.src)
	}
}

func TestRunIsRepeatable(t *testing.T) {
	prog := mustParse(t, "let x=2;let y=4+x;(y+3)*x")
	first, err := Run(prog)
	require.NoError(t, err)
	second, err := Run(prog)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(18), first)
}

func TestRunBindingsDoNotPersist(t *testing.T) {
	assert.Equal(t, int64(1), eval(t, "let x=1;x"))
	err := evalErr(t, "x")
	var undef *UndefinedNameError
	assert.True(t, errors.As(err, &undef))
}

func TestRunArithmeticWraps(t *testing.T) {
	// Two's-complement wraparound, same as Go itself.
	assert.Equal(t, int64(math.MinInt64), eval(t, "9223372036854775807+1"))
	assert.Equal(t, int64(math.MinInt64), eval(t, "let m=-9223372036854775807-1;m/-1"))
}

func TestSymbolTable(t *testing.T) {
	st := make(SymbolTable)
	_, ok := st.Lookup("x")
	assert.False(t, ok)
	st.Bind("x", 42)
	v, ok := st.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, int64(42), v)
	st.Bind("x", 7)
	v, _ = st.Lookup("x")
	assert.Equal(t, int64(7), v)
}
