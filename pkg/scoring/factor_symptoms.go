package scoring

import (
	"fmt"

	"github.com/cervicare/cervicare/pkg/questionnaire"
)

// SymptomFactor scores the multi-select symptoms answer. Each primary
// symptom adds its own points, and each bonus group adds its bonus once when
// any of its sub-symptoms is present. A set with no reportable symptom
// (empty, noSymptoms alone, skipped, or unknown keys only) scores zero.
type SymptomFactor struct {
	Weights SymptomWeights
}

func (f *SymptomFactor) Key() string  { return string(questionnaire.QuestionSymptoms) }
func (f *SymptomFactor) Name() string { return "Symptoms" }

func (f *SymptomFactor) Evaluate(rs *questionnaire.ResponseSet) FactorResult {
	result := FactorResult{
		Key:      f.Key(),
		Name:     f.Name(),
		Severity: SeverityInfo,
	}
	if rs == nil {
		return result
	}

	symptoms := rs.Symptoms
	result.Answer = symptoms.String()
	if !symptoms.Reported() {
		result.Recognized = symptoms.Has(questionnaire.NoSymptoms) || symptoms.Has(questionnaire.Skipped)
		return result
	}
	result.Recognized = true

	for _, key := range symptoms.Keys() {
		pts, ok := f.Weights.Primary[key]
		if !ok {
			continue
		}
		result.Points += pts
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceSymptom,
			Summary: fmt.Sprintf("Reported %s", questionnaire.Label(key)),
			Option:  string(key),
			Value:   pts,
		})
	}

	if key, ok := firstPresent(symptoms, f.Weights.BleedingKeys); ok {
		result.Points += f.Weights.BleedingBonus
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceConcerningBleeding,
			Summary: fmt.Sprintf("Concerning bleeding pattern: %s", questionnaire.Label(key)),
			Option:  string(key),
			Value:   f.Weights.BleedingBonus,
		})
	}
	if key, ok := firstPresent(symptoms, f.Weights.DischargeKeys); ok {
		result.Points += f.Weights.DischargeBonus
		result.Evidence = append(result.Evidence, EvidenceItem{
			Type:    EvidenceConcerningDischarge,
			Summary: fmt.Sprintf("Concerning discharge: %s", questionnaire.Label(key)),
			Option:  string(key),
			Value:   f.Weights.DischargeBonus,
		})
	}

	result.Severity = severityFor(result.Points)
	return result
}

func firstPresent(s questionnaire.SymptomSet, keys []questionnaire.Option) (questionnaire.Option, bool) {
	for _, k := range keys {
		if s.Has(k) {
			return k, true
		}
	}
	return "", false
}
