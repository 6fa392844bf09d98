package scoring

import "github.com/cervicare/cervicare/pkg/questionnaire"

// TableFactor scores a single-choice question by looking its answer up in a
// point table. Answers absent from the table, including an empty answer,
// contribute nothing and are reported as unrecognized.
type TableFactor struct {
	Question questionnaire.QuestionID
	Label    string
	Points   map[questionnaire.Option]float64
}

func (f *TableFactor) Key() string  { return string(f.Question) }
func (f *TableFactor) Name() string { return f.Label }

func (f *TableFactor) Evaluate(rs *questionnaire.ResponseSet) FactorResult {
	answer := rs.Get(f.Question)
	points, ok := f.Points[answer]
	return FactorResult{
		Key:        f.Key(),
		Name:       f.Name(),
		Answer:     string(answer),
		Points:     points,
		Recognized: ok,
		Severity:   severityFor(points),
	}
}
