// Package confirm answers the yes/no questions asked before destructive operations.
package confirm

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/devantler-tech/kindlab/pkg/utils/notify"
	"golang.org/x/term"
)

// Decider answers a confirmation prompt.
type Decider interface {
	Confirm(prompt string) bool
}

// Static always gives the same answer without asking.
type Static bool

// Confirm implements Decider.
func (s Static) Confirm(string) bool { return bool(s) }

// Prompt asks on a terminal. Without a terminal it answers no.
type Prompt struct {
	in     io.Reader
	out    io.Writer
	isTTY  func() bool
	reader *bufio.Reader
}

// NewPrompt creates a Prompt reading answers from in. isTTY defaults to
// checking whether in is a terminal.
func NewPrompt(in io.Reader, out io.Writer, isTTY func() bool) *Prompt {
	if isTTY == nil {
		isTTY = func() bool { return IsTerminal(in) }
	}

	return &Prompt{in: in, out: out, isTTY: isTTY, reader: bufio.NewReader(in)}
}

// Confirm implements Decider. Only "y" and "yes" (any case) confirm.
func (p *Prompt) Confirm(prompt string) bool {
	if !p.isTTY() {
		notify.Infof(p.out, "%s no (non-interactive)", prompt)

		return false
	}

	notify.WriteMessage(notify.Message{
		Type:    notify.WarningType,
		Content: "%s [y/N]: ",
		Args:    []any{prompt},
		Writer:  p.out,
	})

	input, err := p.reader.ReadString('\n')
	if err != nil && input == "" {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(input))

	return answer == "y" || answer == "yes"
}

// IsTerminal reports whether reader is a terminal file.
func IsTerminal(reader io.Reader) bool {
	file, ok := reader.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd())) //nolint:gosec // file descriptors fit in int
}

// NewDecider picks the answer policy: yes wins over nonInteractive, and both
// skip the prompt. Otherwise the operator is asked on in.
func NewDecider(yes, nonInteractive bool, in io.Reader, out io.Writer) Decider {
	switch {
	case yes:
		return Static(true)
	case nonInteractive:
		return Static(false)
	default:
		return NewPrompt(in, out, nil)
	}
}
