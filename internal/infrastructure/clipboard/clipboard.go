// Package clipboard writes text to the system clipboard, falling back to an
// OSC 52 terminal escape when no system clipboard is reachable.
package clipboard

import (
	"io"
	"os"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/pkg/errors"
)

// Writer copies text to the clipboard.
type Writer struct {
	// System writes to the OS clipboard. Nil or Unsupported skips straight to the fallback.
	System      func(text string) error
	Unsupported bool
	// Fallback receives the OSC 52 sequence.
	Fallback io.Writer
	// Tmux wraps the sequence in a tmux passthrough.
	Tmux bool
}

// New returns a Writer backed by the OS clipboard with an OSC 52 fallback on stderr.
func New() *Writer {
	return &Writer{
		System:      clipboard.WriteAll,
		Unsupported: clipboard.Unsupported,
		Fallback:    os.Stderr,
		Tmux:        os.Getenv("TMUX") != "",
	}
}

// WriteText implements usecase.Clipboard.
func (w *Writer) WriteText(text string) error {
	var systemErr error
	if w.System != nil && !w.Unsupported {
		if systemErr = w.System(text); systemErr == nil {
			return nil
		}
	}
	if w.Fallback == nil {
		if systemErr != nil {
			return errors.Wrap(systemErr, "write system clipboard")
		}
		return errors.New("no clipboard available")
	}

	seq := osc52.New(text)
	if w.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(w.Fallback); err != nil {
		return errors.Wrap(err, "write osc52 sequence")
	}
	return nil
}
