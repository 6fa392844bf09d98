package questionnaire

import "fmt"

// ProblemKind classifies a Problem.
type ProblemKind string

const (
	ProblemUnanswered    ProblemKind = "unanswered"
	ProblemUnknownOption ProblemKind = "unknown_option"
)

// Problem is one finding of Check.
type Problem struct {
	Question QuestionID  `json:"question"`
	Kind     ProblemKind `json:"kind"`
	Value    Option      `json:"value,omitempty"`
}

func (p Problem) String() string {
	if p.Kind == ProblemUnanswered {
		return fmt.Sprintf("%s: no answer recorded", p.Question)
	}
	return fmt.Sprintf("%s: %q is not a known option", p.Question, p.Value)
}

// Check lists unanswered questions and answers outside the vocabulary, in
// schema order. Scoring never requires a clean Check: the engine treats every
// reported problem as a zero contribution.
func Check(rs *ResponseSet) []Problem {
	if rs == nil {
		rs = &ResponseSet{}
	}
	var problems []Problem
	for _, q := range Schema() {
		if q.ID == QuestionSymptoms {
			if rs.Symptoms.Empty() {
				problems = append(problems, Problem{Question: q.ID, Kind: ProblemUnanswered})
				continue
			}
			for _, k := range rs.Symptoms.Keys() {
				if !q.Accepts(k) {
					problems = append(problems, Problem{Question: q.ID, Kind: ProblemUnknownOption, Value: k})
				}
			}
			continue
		}

		v := rs.Get(q.ID)
		switch {
		case v == "":
			problems = append(problems, Problem{Question: q.ID, Kind: ProblemUnanswered})
		case !q.Accepts(v):
			problems = append(problems, Problem{Question: q.ID, Kind: ProblemUnknownOption, Value: v})
		}
	}
	return problems
}
