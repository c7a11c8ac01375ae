package strip

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Confirmer decides whether a found comment should be removed. The scanner
// consults it once per match, in match order.
type Confirmer interface {
	Confirm(comment string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(comment string) bool

func (f ConfirmerFunc) Confirm(comment string) bool {
	return f(comment)
}

// AutoConfirmer removes every comment without interaction.
type AutoConfirmer struct{}

func (AutoConfirmer) Confirm(string) bool {
	return true
}

// TerminalConfirmer prompts for a yes/no answer per comment. Confirm blocks
// until a full line of input is read; there is no timeout.
type TerminalConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminalConfirmer(in io.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *TerminalConfirmer) Confirm(comment string) bool {
	fmt.Fprintln(c.out, "\nFound comment:")
	fmt.Fprintln(c.out, color.YellowString("%s", comment))
	fmt.Fprint(c.out, "Remove this comment? (y/n): ")

	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		// Input exhausted: treat as a decline.
		return false
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y"
}
