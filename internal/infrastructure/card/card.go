// Package card renders a selection summary onto a one-page PDF card, shrinking the
// summary font until it fits the card width on one line.
package card

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/pkg/errors"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tesso57/numpick/internal/application/settings"
	"github.com/tesso57/numpick/internal/domain/fit"
)

// PtToMm converts font points to millimetres.
const PtToMm = 0.352777

const (
	label       = "Processed"
	borderWidth = 0.3
	lineFactor  = 1.2
	// minFontSize is the smallest size the card ever uses, whatever the config says.
	minFontSize = 6
)

// Renderer draws selection cards with github.com/tdewolff/canvas.
type Renderer struct {
	cfg settings.CardConfig

	mu     sync.Mutex
	family *canvas.FontFamily
}

// NewRenderer creates a card renderer for the given card settings.
func NewRenderer(cfg settings.CardConfig) *Renderer {
	return &Renderer{cfg: cfg}
}

// Bounds returns the font size range used for the summary, in pt. The maximum is
// further limited so one summary line and the label fit the card height.
func (r *Renderer) Bounds() fit.Bounds {
	minSize := max(r.cfg.MinSize, minFontSize)
	maxSize := max(r.cfg.MaxSize, minSize)

	usable := float64(r.cfg.HeightMM-2*r.cfg.MarginMM) - float64(minSize)*PtToMm*lineFactor
	byHeight := int(math.Floor(usable / (PtToMm * lineFactor)))
	if byHeight < maxSize {
		maxSize = max(byHeight, minSize)
	}
	return fit.Bounds{Min: minSize, Max: maxSize}
}

// AvailableWidth returns the printable line width in mm.
func (r *Renderer) AvailableWidth() float64 {
	return math.Max(float64(r.cfg.WidthMM-2*r.cfg.MarginMM), 1)
}

// MeasureFunc returns the width of text in mm at a given font size in pt.
func (r *Renderer) MeasureFunc(text string) (fit.MeasureFunc[float64], error) {
	family, err := r.fontFamily()
	if err != nil {
		return nil, err
	}
	return func(size int) float64 {
		return family.Face(float64(size), canvas.Black, canvas.FontRegular, canvas.FontNormal).TextWidth(text)
	}, nil
}

// FitSize returns the font size in pt at which text fills the card width.
func (r *Renderer) FitSize(text string) (int, error) {
	measure, err := r.MeasureFunc(text)
	if err != nil {
		return 0, err
	}
	return fit.Within[float64](r.Bounds(), measure, r.AvailableWidth()), nil
}

// Render draws the card for summary and returns the PDF bytes and the chosen font size.
func (r *Renderer) Render(summary string) ([]byte, int, error) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return nil, 0, errors.New("empty summary")
	}
	family, err := r.fontFamily()
	if err != nil {
		return nil, 0, err
	}
	size, err := r.FitSize(summary)
	if err != nil {
		return nil, 0, err
	}

	width, height := float64(r.cfg.WidthMM), float64(r.cfg.HeightMM)
	margin := float64(r.cfg.MarginMM)

	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(canvas.Hex("#5f5fd7"))
	ctx.SetStrokeWidth(borderWidth)
	ctx.DrawPath(borderWidth, borderWidth, canvas.Rectangle(width-2*borderWidth, height-2*borderWidth))

	labelFace := family.Face(float64(r.Bounds().Min), canvas.Hex("#808080"), canvas.FontRegular, canvas.FontNormal)
	cursorY := margin + labelFace.Metrics().Ascent
	ctx.DrawText(margin, cursorY, canvas.NewTextLine(labelFace, label, canvas.Left))
	cursorY += labelFace.Metrics().Descent

	face := family.Face(float64(size), canvas.Hex("#1e1e1e"), canvas.FontRegular, canvas.FontNormal)
	metrics := face.Metrics()
	lineHeight := metrics.Ascent + metrics.Descent
	top := cursorY + math.Max((height-margin-cursorY-lineHeight)/2, 0)
	ctx.DrawText(margin, top+metrics.Ascent, canvas.NewTextLine(face, summary, canvas.Left))

	var buf bytes.Buffer
	writer := pdf.New(&buf, width, height, nil)
	writer.SetInfo("Selection", label+": "+summary, "numpick", "", "numpick")
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, 0, errors.Wrap(err, "write card pdf")
	}
	return buf.Bytes(), size, nil
}

// RenderCard implements usecase.CardRenderer.
func (r *Renderer) RenderCard(summary, path string) (int, error) {
	data, size, err := r.Render(summary)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, errors.Wrap(err, "create card directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, errors.Wrapf(err, "write card %s", path)
	}
	return size, nil
}

func (r *Renderer) fontFamily() (*canvas.FontFamily, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.family != nil {
		return r.family, nil
	}

	data := lmroman10regular.TTF
	if r.cfg.Font != "" {
		custom, err := os.ReadFile(r.cfg.Font)
		if err != nil {
			return nil, errors.Wrapf(err, "read card font %s", r.cfg.Font)
		}
		data = custom
	}

	family := canvas.NewFontFamily("numpick-card")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, errors.Wrap(err, "load card font")
	}
	r.family = family
	return family, nil
}
