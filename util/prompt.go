package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks questions on out and reads answers from in. Commands use
// Default; tests wire their own streams.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Default prompts on the process's stdin and stdout.
var Default = NewPrompter(os.Stdin, os.Stdout)

// String asks for a line of text. Empty input, end of input included,
// falls back to def.
func (p *Prompter) String(prompt string, def string) string {
	fmt.Fprintf(p.out, "%s (%s): ", prompt, def)

	response, _ := p.in.ReadString('\n')
	response = strings.TrimSpace(response)
	if response == "" {
		return def
	}
	return response
}

// YesNo asks a y/n question. Anything other than a leading "y" or "Y" is a
// no; empty input falls back to def.
func (p *Prompter) YesNo(prompt string, def bool) bool {
	if def {
		fmt.Fprintf(p.out, "%s (Y/n): ", prompt)
	} else {
		fmt.Fprintf(p.out, "%s (y/N): ", prompt)
	}

	response, _ := p.in.ReadString('\n')
	response = strings.TrimSpace(response)
	if response == "" {
		return def
	}
	return strings.ToLower(response) == "y"
}
