// Command numpick is a terminal number picker that summarises a selection as compact ranges.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/tesso57/numpick/internal/application/settings"
	"github.com/tesso57/numpick/internal/application/usecase"
	"github.com/tesso57/numpick/internal/domain/fit"
	"github.com/tesso57/numpick/internal/domain/selection"
	"github.com/tesso57/numpick/internal/infrastructure/card"
	"github.com/tesso57/numpick/internal/infrastructure/clipboard"
	"github.com/tesso57/numpick/internal/infrastructure/config"
	"github.com/tesso57/numpick/internal/presentation/tui"
)

// CLI is the command line of numpick.
type CLI struct {
	Config  string `help:"Config file (default ~/.config/numpick/config.yaml)." type:"path"`
	Profile string `help:"Write a CPU profile into this directory." type:"path"`
	LogFile string `help:"Write debug logs to this file." type:"path"`

	TUI      TUICmd      `cmd:"" default:"1" help:"Pick numbers interactively."`
	Compress CompressCmd `cmd:"" help:"Print the range summary of numbers."`
	Expand   ExpandCmd   `cmd:"" help:"Print the numbers of a range summary, one per line."`
	Card     CardCmd     `cmd:"" help:"Render a range summary as a PDF card."`
	Fit      FitCmd      `cmd:"" help:"Print the card font size that fits text."`
}

// App carries what every command needs.
type App struct {
	CLI    *CLI
	Stdout io.Writer
}

// Settings loads the configuration named on the command line.
func (a *App) Settings() (settings.Settings, error) {
	store, err := config.Load(a.CLI.Config)
	if err != nil {
		return settings.Settings{}, errors.Wrap(err, "load config")
	}
	return store.Settings, nil
}

// TUICmd runs the interactive picker.
type TUICmd struct{}

// Run starts the bubbletea program.
func (c *TUICmd) Run(app *App) error {
	cfg, err := app.Settings()
	if err != nil {
		return err
	}

	logPath := app.CLI.LogFile
	if logPath == "" {
		logPath = cfg.LogFile
	}
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "numpick")
		if err != nil {
			return errors.Wrapf(err, "open log file %s", logPath)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	picker := usecase.NewPickerService(clipboard.New(), card.NewRenderer(cfg.Card), cfg.Card.Dir)
	model := tui.NewModel(cfg, picker)
	log.Printf("starting picker with %d tiles", cfg.TileCount())

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "run picker")
	}
	return nil
}

// CompressCmd prints the summary of its arguments.
type CompressCmd struct {
	Numbers []int `arg:"" optional:"" help:"Numbers in any order; duplicates are ignored."`
}

// Run prints the compressed summary.
func (c *CompressCmd) Run(app *App) error {
	set := selection.NewSet(c.Numbers...)
	_, err := fmt.Fprintln(app.Stdout, selection.Compress(set.Sorted()))
	return err
}

// ExpandCmd prints the numbers of a summary.
type ExpandCmd struct {
	Expr string `arg:"" help:"Summary such as '1-3, 5'."`
}

// Run prints one number per line.
func (c *ExpandCmd) Run(app *App) error {
	values, err := selection.Parse(c.Expr)
	if err != nil {
		return errors.Wrapf(err, "parse %q", c.Expr)
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(app.Stdout, v); err != nil {
			return err
		}
	}
	return nil
}

// CardCmd renders a selection card.
type CardCmd struct {
	Out  string `short:"o" help:"Output PDF (default selection-<uuid>.pdf in the card directory)." type:"path"`
	Expr string `arg:"" help:"Summary such as '1-3, 5'."`
}

// Run writes the card and prints where it went.
func (c *CardCmd) Run(app *App) error {
	cfg, err := app.Settings()
	if err != nil {
		return err
	}
	values, err := selection.Parse(c.Expr)
	if err != nil {
		return errors.Wrapf(err, "parse %q", c.Expr)
	}

	picker := usecase.NewPickerService(nil, card.NewRenderer(cfg.Card), cfg.Card.Dir)
	export, err := picker.Export(selection.NewSet(values...), c.Out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(app.Stdout, "%s (%dpt)\n", export.Path, export.FontSize)
	return err
}

// FitCmd prints the fitted card font size.
type FitCmd struct {
	Min       int     `help:"Smallest font size in pt (card.min_size when zero)."`
	Max       int     `help:"Largest font size in pt (card.max_size when zero)."`
	Available float64 `help:"Available width in mm (card width less margins when zero)."`
	Text      string  `arg:"" help:"Text to fit."`
}

// Run measures Text with the card font and prints the largest size that fits.
func (c *FitCmd) Run(app *App) error {
	cfg, err := app.Settings()
	if err != nil {
		return err
	}
	r := card.NewRenderer(cfg.Card)
	measure, err := r.MeasureFunc(c.Text)
	if err != nil {
		return err
	}

	bounds := r.Bounds()
	if c.Min > 0 {
		bounds.Min = c.Min
	}
	if c.Max > 0 {
		bounds.Max = c.Max
	}
	available := c.Available
	if available <= 0 {
		available = r.AvailableWidth()
	}

	size := fit.Fit[float64](bounds.Max, bounds.Min, measure, available)
	_, err = fmt.Fprintln(app.Stdout, size)
	return err
}

func run(args []string, stdout io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("numpick"),
		kong.Description("Pick numbers and summarise them as ranges."),
		kong.UsageOnError(),
	)
	if err != nil {
		return errors.Wrap(err, "build command line")
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Profile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cli.Profile), profile.Quiet).Stop()
	}

	return ctx.Run(&App{CLI: &cli, Stdout: stdout})
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "numpick: %v\n", err)
		os.Exit(1)
	}
}
