//go:build !windows

package console_test

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/freeze/internal/adapters/console"
	"go.trai.ch/freeze/internal/core/domain"
)

func TestNewFromFile_TerminalPauses(t *testing.T) {
	ptmx, tty, err := pty.Open()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})

	var out bytes.Buffer
	c := console.NewFromFile(&out, tty)

	done := make(chan struct{})
	go func() {
		c.Pause()
		close(done)
	}()

	_, err = ptmx.Write([]byte("\n"))
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Pause did not return after Enter")
	}
	assert.Equal(t, domain.MsgPausePrompt, out.String())
}

func TestNewFromFile_PipeDoesNotPause(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = r.Close()
		_ = w.Close()
	})

	var out bytes.Buffer
	c := console.NewFromFile(&out, r)
	c.Pause()
	assert.Empty(t, out.String())
}
