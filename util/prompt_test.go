package util

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptString(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("espresso\n"), &out)
	assert.Equal(t, "espresso", p.String("Project name", "NewProject"))
	assert.Equal(t, "Project name (NewProject): ", out.String())
}

func TestPromptStringDefaults(t *testing.T) {
	// Empty line and end of input both fall back to the default.
	p := NewPrompter(strings.NewReader("\n"), io.Discard)
	assert.Equal(t, "NewProject", p.String("Project name", "NewProject"))

	p = NewPrompter(strings.NewReader(""), io.Discard)
	assert.Equal(t, "NewProject", p.String("Project name", "NewProject"))
}

func TestPromptStringTrimsSpace(t *testing.T) {
	p := NewPrompter(strings.NewReader("  hello  \n"), io.Discard)
	assert.Equal(t, "hello", p.String("Anything", "x"))
}

func TestPromptYesNo(t *testing.T) {
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"y\n", false, true},
		{"Y\n", false, true},
		{"n\n", true, false},
		{"N\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"", true, true},
		{"whatever\n", true, false},
	}
	for _, tc := range tests {
		p := NewPrompter(strings.NewReader(tc.in), io.Discard)
		assert.Equal(t, tc.want, p.YesNo("Overwrite?", tc.def), "input %q default %v", tc.in, tc.def)
	}
}

func TestPromptYesNoShowsDefault(t *testing.T) {
	var out bytes.Buffer
	NewPrompter(strings.NewReader("\n"), &out).YesNo("Continue?", true)
	assert.Equal(t, "Continue? (Y/n): ", out.String())

	out.Reset()
	NewPrompter(strings.NewReader("\n"), &out).YesNo("Continue?", false)
	assert.Equal(t, "Continue? (y/N): ", out.String())
}
