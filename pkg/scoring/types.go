// Package scoring implements the cervical cancer risk engine.
// It maps a completed questionnaire to a risk tier plus an ordered list of
// contributing-factor insights, with a per-factor breakdown of the points.
package scoring

import "fmt"

// RiskLevel is the three-valued outcome of an assessment.
type RiskLevel string

const (
	LevelLow      RiskLevel = "low"
	LevelModerate RiskLevel = "moderate"
	LevelHigh     RiskLevel = "high"
)

// Valid reports whether l is one of the three tiers.
func (l RiskLevel) Valid() bool {
	switch l {
	case LevelLow, LevelModerate, LevelHigh:
		return true
	}
	return false
}

// ParseRiskLevel converts a tier name back into a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, error) {
	l := RiskLevel(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown risk level %q", s)
	}
	return l, nil
}

// Assessment is the complete output of scoring one ResponseSet.
// Immutable once computed.
type Assessment struct {
	Score     float64        `json:"score"`     // aggregate used for the tier, never negative
	RawScore  float64        `json:"raw_score"` // sum of contributions before the floor
	Level     RiskLevel      `json:"level"`
	Breakdown []FactorResult `json:"breakdown"`
	Insights  []string       `json:"insights"`
}

// FactorResult is the output of a single scoring factor.
type FactorResult struct {
	Key        string         `json:"key"`    // machine key: "smoking"
	Name       string         `json:"name"`   // human name: "Smoking"
	Answer     string         `json:"answer"` // raw answer as recorded
	Points     float64        `json:"points"` // positive raises risk, negative is protective
	Recognized bool           `json:"recognized"`
	Severity   Severity       `json:"severity"`
	Evidence   []EvidenceItem `json:"evidence,omitempty"`
}

// Severity indicates how much a factor weighed on the result.
type Severity string

const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
	SeverityLow    Severity = "LOW"
	SeverityInfo   Severity = "INFO"
)

func severityFor(points float64) Severity {
	switch {
	case points >= 3:
		return SeverityHigh
	case points >= 1:
		return SeverityMedium
	case points > 0:
		return SeverityLow
	default:
		return SeverityInfo
	}
}

// EvidenceItem is one concrete observation backing a factor's points.
type EvidenceItem struct {
	Type    EvidenceType `json:"type"`
	Summary string       `json:"summary"`
	Option  string       `json:"option,omitempty"`
	Value   float64      `json:"value"`
}

// EvidenceType classifies what kind of evidence this is.
type EvidenceType string

const (
	EvidenceSymptom             EvidenceType = "SYMPTOM"
	EvidenceConcerningBleeding  EvidenceType = "CONCERNING_BLEEDING"
	EvidenceConcerningDischarge EvidenceType = "CONCERNING_DISCHARGE"
)

// LevelFromScore maps an aggregate score to a tier. Cut points are
// inclusive upper bounds.
func LevelFromScore(score float64) RiskLevel {
	switch {
	case score <= 4:
		return LevelLow
	case score <= 10:
		return LevelModerate
	default:
		return LevelHigh
	}
}
