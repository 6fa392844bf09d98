package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cervicare/cervicare/pkg/questionnaire"
	"github.com/cervicare/cervicare/pkg/scoring"
)

// TerminalRenderer renders an Assessment as colored terminal output.
type TerminalRenderer struct {
	InsightLimit int    // 0 shows every insight
	Color        bool   // emit ANSI styling
	Language     string // "en" or "hi"
}

// Tier colors follow the usual traffic-light convention.
var tierColors = map[scoring.RiskLevel]lipgloss.Color{
	scoring.LevelLow:      lipgloss.Color("2"),
	scoring.LevelModerate: lipgloss.Color("3"),
	scoring.LevelHigh:     lipgloss.Color("1"),
}

type styles struct {
	enabled bool
	bold    lipgloss.Style
	dim     lipgloss.Style
	red     lipgloss.Style
	green   lipgloss.Style
	tier    lipgloss.Style
}

func newStyles(w io.Writer, color bool, level scoring.RiskLevel) styles {
	re := lipgloss.NewRenderer(w)
	re.SetColorProfile(termenv.ANSI)
	return styles{
		enabled: color,
		bold:    re.NewStyle().Bold(true),
		dim:     re.NewStyle().Faint(true),
		red:     re.NewStyle().Foreground(tierColors[scoring.LevelHigh]),
		green:   re.NewStyle().Foreground(tierColors[scoring.LevelLow]),
		tier:    re.NewStyle().Bold(true).Foreground(tierColors[level]),
	}
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

func (r *TerminalRenderer) Render(w io.Writer, a *scoring.Assessment) error {
	c := lookup(r.Language)
	st := newStyles(w, r.Color, a.Level)

	// Header
	level := c.levels[a.Level]
	if level == "" {
		level = strings.ToUpper(string(a.Level))
	}
	fmt.Fprintf(w, "%s: %s (score %.1f)\n\n",
		st.render(st.bold, c.heading), st.render(st.tier, level), a.Score)

	for _, line := range wrapText(TierMessage(a.Level, r.Language), 72) {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)

	// Breakdown
	hasFactors := false
	for _, fr := range a.Breakdown {
		if fr.Points == 0 {
			continue
		}
		if !hasFactors {
			fmt.Fprintln(w, c.factors)
			hasFactors = true
		}

		sign := "+"
		pointStyle := st.red
		if fr.Points < 0 {
			sign = ""
			pointStyle = st.green
		}
		fmt.Fprintf(w, "  %s %s", st.render(pointStyle, fmt.Sprintf("(%s%.1f)", sign, fr.Points)), st.render(st.bold, fr.Name))
		if len(fr.Evidence) == 0 && fr.Answer != "" {
			fmt.Fprintf(w, ": %s", questionnaire.Label(questionnaire.Option(fr.Answer)))
		}
		fmt.Fprintln(w)
		for _, ev := range fr.Evidence {
			fmt.Fprintf(w, "         %s\n", st.render(st.dim, ev.Summary))
		}
	}
	if hasFactors {
		fmt.Fprintln(w)
	}

	// Insights
	if len(a.Insights) > 0 {
		shown := a.Insights
		if r.InsightLimit > 0 && len(shown) > r.InsightLimit {
			shown = shown[:r.InsightLimit]
		}
		fmt.Fprintln(w, c.keyFactors)
		for _, in := range shown {
			fmt.Fprintf(w, "  • %s\n", in)
		}
		if hidden := len(a.Insights) - len(shown); hidden > 0 {
			fmt.Fprintf(w, "  %s\n", st.render(st.dim, fmt.Sprintf("... and %d more", hidden)))
		}
		fmt.Fprintln(w)
	}

	for _, line := range wrapText(c.note, 72) {
		fmt.Fprintln(w, st.render(st.dim, line))
	}

	return nil
}

// RenderTips writes the preventive tips screen.
func RenderTips(w io.Writer, lang string, color bool) error {
	st := newStyles(w, color, scoring.LevelLow)

	fmt.Fprintf(w, "%s\n\n", st.render(st.bold, TipsTitle(lang)))
	for i, tip := range Tips(lang) {
		fmt.Fprintf(w, "%d. %s\n", i+1, st.render(st.bold, tip.Title))
		for _, line := range wrapText(tip.Description, 70) {
			fmt.Fprintf(w, "   %s\n", line)
		}
		fmt.Fprintln(w)
	}
	for _, line := range wrapText(Disclaimer(lang), 72) {
		if _, err := fmt.Fprintln(w, st.render(st.dim, line)); err != nil {
			return err
		}
	}
	return nil
}

// wrapText wraps a string at the given display width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if lipgloss.Width(current)+1+lipgloss.Width(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
