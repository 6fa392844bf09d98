package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cervicare/cervicare/pkg/config"
	"github.com/cervicare/cervicare/pkg/questionnaire"
	"github.com/cervicare/cervicare/pkg/scoring"
	"github.com/cervicare/cervicare/pkg/surface"
)

var (
	errNoResponses         = errors.New("nothing to assess: pass --responses or --answer")
	errIncompleteResponses = errors.New("responses failed strict checking")
)

func newAssessCmd(g *globalOpts) *cobra.Command {
	var opts assessOpts

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score a completed questionnaire",
		Long: `Builds a response set from a response file and/or --answer flags, scores it,
and prints the risk tier, score breakdown and insights.

Answers given with --answer override the same question in the response file.
Unanswered questions and unknown options contribute nothing unless --strict
is set.`,
		Example: `  cervicare assess --responses answers.yaml
  cervicare assess -a smoking=yes -a hpvVaccination=notSure -a symptoms=pelvicPain
  cervicare assess -f answers.json --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configPath)
			if err != nil {
				return err
			}
			applyAssessConfig(cmd, &opts, cfg)
			return runAssess(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.responsesPath, "responses", "f", "", "Response file (.yaml, .yml or .json)")
	cmd.Flags().StringArrayVarP(&opts.answers, "answer", "a", nil, "Answer as question=option; repeatable")
	cmd.Flags().StringVar(&opts.outputFmt, "output", "text", "Output format: text or json")
	cmd.Flags().IntVar(&opts.limit, "limit", 3, "Insights to show in text output (0 for all)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on unanswered questions or unknown options")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "Message language: en or hi")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "Color output: auto, always or never")

	return cmd
}

type assessOpts struct {
	responsesPath string
	answers       []string
	outputFmt     string
	limit         int
	strict        bool
	lang          string
	color         string
}

func (o assessOpts) output() config.OutputConfig {
	return config.OutputConfig{
		Format:       o.outputFmt,
		InsightLimit: o.limit,
		Color:        o.color,
		Language:     o.lang,
	}
}

// applyAssessConfig fills every flag the user did not set from cfg.
func applyAssessConfig(cmd *cobra.Command, opts *assessOpts, cfg *config.Config) {
	f := cmd.Flags()
	if !f.Changed("output") {
		opts.outputFmt = cfg.Output.Format
	}
	if !f.Changed("limit") {
		opts.limit = cfg.Output.InsightLimit
	}
	if !f.Changed("strict") {
		opts.strict = cfg.Input.Strict
	}
	if !f.Changed("lang") {
		opts.lang = cfg.Output.Language
	}
	if !f.Changed("color") {
		opts.color = cfg.Output.Color
	}
}

func runAssess(ctx context.Context, stdout, stderr io.Writer, opts assessOpts) error {
	if opts.responsesPath == "" && len(opts.answers) == 0 {
		return errNoResponses
	}
	if opts.limit < 0 {
		return fmt.Errorf("--limit must not be negative, got %d", opts.limit)
	}
	if err := opts.output().Validate(); err != nil {
		return err
	}

	rs, err := collectResponses(opts.responsesPath, opts.answers)
	if err != nil {
		return err
	}

	problems := questionnaire.Check(&rs)
	if opts.strict && len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(stderr, "  %s\n", p)
		}
		return fmt.Errorf("%w: %d problem(s)", errIncompleteResponses, len(problems))
	}
	for _, p := range problems {
		slog.DebugContext(ctx, "response problem", "question", p.Question, "kind", p.Kind, "value", p.Value)
	}

	a := scoring.Assess(&rs)
	slog.DebugContext(ctx, "assessment complete",
		"score", a.Score, "raw_score", a.RawScore, "level", a.Level, "insights", len(a.Insights))

	renderer, err := surface.ForFormat(opts.outputFmt, surface.Options{
		InsightLimit: opts.limit,
		Color:        surface.ColorEnabled(opts.color, stdout),
		Language:     opts.lang,
	})
	if err != nil {
		return err
	}
	if err := renderer.Render(stdout, a); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// collectResponses loads path, if any, then applies each question=option
// answer on top.
func collectResponses(path string, answers []string) (questionnaire.ResponseSet, error) {
	var rs questionnaire.ResponseSet
	if path != "" {
		loaded, err := questionnaire.LoadResponses(path)
		if err != nil {
			return rs, fmt.Errorf("loading responses: %w", err)
		}
		rs = loaded
		slog.Debug("loaded responses", "path", path, "answered", len(rs.ToMap()))
	}

	for _, raw := range answers {
		id, value, err := parseAnswer(raw)
		if err != nil {
			return rs, err
		}
		rs.Set(id, value)
	}
	return rs, nil
}

// parseAnswer splits "question=option" and checks the question id.
func parseAnswer(raw string) (questionnaire.QuestionID, string, error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid answer %q: want question=option", raw)
	}
	id := questionnaire.QuestionID(strings.TrimSpace(key))
	if _, known := questionnaire.Lookup(id); !known {
		return "", "", fmt.Errorf("invalid answer %q: unknown question %q", raw, id)
	}
	return id, strings.TrimSpace(value), nil
}
