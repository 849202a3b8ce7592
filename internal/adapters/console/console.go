// Package console prints the user-facing messages of a run and waits for acknowledgment.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/freeze/internal/core/domain"
	"go.trai.ch/freeze/internal/core/ports"
	"go.trai.ch/freeze/internal/ui/output"
	"golang.org/x/term"
)

var _ ports.Console = (*Console)(nil)

// Console implements ports.Console on a pair of streams.
type Console struct {
	mu          sync.Mutex
	out         io.Writer
	in          *bufio.Reader
	interactive bool
	styles      map[domain.MessageLevel]lipgloss.Style
}

// New creates a Console on stdout and stdin.
func New() *Console {
	return NewFromFile(os.Stdout, os.Stdin)
}

// NewFromFile creates a Console reading from in. Pausing is enabled only when in is a terminal.
func NewFromFile(out io.Writer, in *os.File) *Console {
	return NewWithIO(out, in, term.IsTerminal(int(in.Fd()))) //nolint:gosec // file descriptors fit in int
}

// NewWithIO creates a Console on the given streams.
func NewWithIO(out io.Writer, in io.Reader, interactive bool) *Console {
	r := lipgloss.NewRenderer(out)
	if output.NoColor() {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Console{
		out:         out,
		in:          bufio.NewReader(in),
		interactive: interactive,
		styles:      newStyles(r),
	}
}

// Print writes msg on its own line in the style of level.
func (c *Console) Print(level domain.MessageLevel, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.styles[level]
	if !ok {
		st = c.styles[domain.MessageInfo]
	}
	_, _ = fmt.Fprintln(c.out, st.Render(msg))
}

// Pause prompts and blocks until a line is read from the input.
// It does nothing when the input is not interactive.
func (c *Console) Pause() {
	if !c.interactive {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, _ = fmt.Fprint(c.out, domain.MsgPausePrompt)
	_, _ = c.in.ReadString('\n')
}
