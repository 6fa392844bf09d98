package surface

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/cervicare/cervicare/pkg/scoring"
)

// JSONRenderer marshals an Assessment to indented JSON. Insights are never
// truncated in this form.
type JSONRenderer struct {
	// Now overrides the clock used for assessed_at.
	Now func() time.Time
}

type assessmentReport struct {
	ID         string `json:"id"`
	AssessedAt string `json:"assessed_at"`
	*scoring.Assessment
}

func (r *JSONRenderer) Render(w io.Writer, a *scoring.Assessment) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(assessmentReport{
		ID:         uuid.New().String(),
		AssessedAt: now().UTC().Format(time.RFC3339),
		Assessment: a,
	})
}
