// Package surface defines output rendering for cervicare assessments.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/cervicare/cervicare/pkg/scoring"
)

// ErrUnknownFormat is returned by ForFormat for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Renderer produces formatted output from an Assessment.
type Renderer interface {
	// Render writes the formatted assessment to the writer.
	Render(w io.Writer, a *scoring.Assessment) error
}

// Options configures the renderer returned by ForFormat.
type Options struct {
	InsightLimit int
	Color        bool
	Language     string
}

// ForFormat returns the renderer for "text" or "json".
func ForFormat(format string, opts Options) (Renderer, error) {
	switch format {
	case "text", "":
		return &TerminalRenderer{
			InsightLimit: opts.InsightLimit,
			Color:        opts.Color,
			Language:     opts.Language,
		}, nil
	case "json":
		return &JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// ColorEnabled resolves a color mode ("auto", "always" or "never") for w.
// In auto mode color is used only when NO_COLOR is unset and w is a terminal.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
