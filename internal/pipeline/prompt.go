package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter is the yes/no gate between planning and executing.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// LinePrompter asks on Out and reads a single line from In. The answer is
// trimmed and compared case-insensitively with Token.
type LinePrompter struct {
	In    io.Reader
	Out   io.Writer
	Token string

	r *bufio.Reader
}

// NewLinePrompter returns a prompter reading from in and writing to out.
func NewLinePrompter(in io.Reader, out io.Writer, token string) *LinePrompter {
	return &LinePrompter{In: in, Out: out, Token: token}
}

// Confirm blocks until a line (or EOF) is read. EOF without input counts as
// a refusal.
func (p *LinePrompter) Confirm(question string) (bool, error) {
	if p.r == nil {
		p.r = bufio.NewReader(p.In)
	}
	fmt.Fprintf(p.Out, "\n%s (%s/n): ", question, p.Token)

	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(p.Out)
	}
	return strings.EqualFold(strings.TrimSpace(line), p.Token), nil
}

// AlwaysConfirm approves without asking (--yes).
type AlwaysConfirm struct{}

// Confirm implements Prompter.
func (AlwaysConfirm) Confirm(string) (bool, error) { return true, nil }
