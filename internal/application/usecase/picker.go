// Package usecase contains application-level services.
package usecase

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/tesso57/numpick/internal/domain/selection"
)

const (
	// EmptySummary is shown in place of the summary when nothing is selected.
	EmptySummary = "No selections"
	// ClipboardPrefix starts every copied summary.
	ClipboardPrefix = "Processed: "
	// CopyWarning is shown when a copy is requested with nothing selected.
	CopyWarning = "No selections to copy"
)

// ErrNothingToCopy is returned when copying or exporting an empty selection.
var ErrNothingToCopy = errors.New("no selections to copy")

// Clipboard abstracts writing text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// CardRenderer abstracts rendering a summary card to a file.
type CardRenderer interface {
	RenderCard(summary, path string) (fontSize int, err error)
}

// Export describes a rendered selection card.
type Export struct {
	Path     string
	FontSize int
}

// PickerService turns a selection into the strings and artefacts shown to the user.
type PickerService struct {
	Clipboard Clipboard
	Cards     CardRenderer
	CardDir   string
	NewID     func() string
}

// NewPickerService constructs a PickerService.
func NewPickerService(clipboard Clipboard, cards CardRenderer, cardDir string) PickerService {
	return PickerService{
		Clipboard: clipboard,
		Cards:     cards,
		CardDir:   cardDir,
	}
}

// Summary returns the compressed selection, or EmptySummary when nothing is selected.
func (s PickerService) Summary(set *selection.Set) string {
	if set.Len() == 0 {
		return EmptySummary
	}
	return selection.Compress(set.Sorted())
}

// CountText returns the "Processed: N" counter line.
func (s PickerService) CountText(set *selection.Set) string {
	return fmt.Sprintf("%s%d", ClipboardPrefix, set.Len())
}

// ClipboardText returns the text placed on the clipboard for set.
func (s PickerService) ClipboardText(set *selection.Set) (string, error) {
	if set.Len() == 0 {
		return "", ErrNothingToCopy
	}
	return ClipboardPrefix + selection.Compress(set.Sorted()), nil
}

// Copy writes the clipboard text for set and returns what was written.
func (s PickerService) Copy(set *selection.Set) (string, error) {
	text, err := s.ClipboardText(set)
	if err != nil {
		return "", err
	}
	if s.Clipboard == nil {
		return "", fmt.Errorf("clipboard is not configured")
	}
	if err := s.Clipboard.WriteText(text); err != nil {
		return "", fmt.Errorf("copy selection: %w", err)
	}
	return text, nil
}

// Export renders a card for set. An empty path picks a fresh file name in CardDir.
func (s PickerService) Export(set *selection.Set, path string) (Export, error) {
	if set.Len() == 0 {
		return Export{}, ErrNothingToCopy
	}
	if s.Cards == nil {
		return Export{}, fmt.Errorf("card export is not configured")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		path = s.cardPath()
	}
	size, err := s.Cards.RenderCard(selection.Compress(set.Sorted()), path)
	if err != nil {
		return Export{}, fmt.Errorf("export selection card: %w", err)
	}
	return Export{Path: path, FontSize: size}, nil
}

func (s PickerService) cardPath() string {
	var id string
	if s.NewID != nil {
		id = s.NewID()
	} else {
		id = uuid.NewString()
	}
	dir := s.CardDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, "selection-"+id+".pdf")
}
