package surface

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/cervicare/cervicare/pkg/questionnaire"
)

// RenderQuestions writes the questionnaire schema as "text" or "json".
func RenderQuestions(w io.Writer, qs []questionnaire.Question, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(qs)
	case "text", "":
	default:
		return fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	for i, q := range qs {
		kind := "single choice"
		if q.MultiSelect {
			kind = "multiple choice, comma separated"
		}
		fmt.Fprintf(w, "%2d. %s (%s)\n", i+1, q.ID, kind)
		fmt.Fprintf(w, "    %s\n", q.Prompt)
		for _, o := range q.Options {
			fmt.Fprintf(w, "      %-24s %s\n", o, questionnaire.Label(o))
		}

		parents := make([]string, 0, len(q.SubOptions))
		for p := range q.SubOptions {
			parents = append(parents, string(p))
		}
		sort.Strings(parents)
		for _, p := range parents {
			fmt.Fprintf(w, "      under %s:\n", p)
			for _, o := range q.SubOptions[questionnaire.Option(p)] {
				fmt.Fprintf(w, "        %-22s %s\n", o, questionnaire.Label(o))
			}
		}
		fmt.Fprintln(w)
	}
	_, err := fmt.Fprintf(w, "Any question may also be answered with %q.\n", questionnaire.Skipped)
	return err
}
