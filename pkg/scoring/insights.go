package scoring

import "github.com/cervicare/cervicare/pkg/questionnaire"

// InsightRule emits Message when Applies holds for a ResponseSet.
type InsightRule struct {
	Key     string
	Message string
	Applies func(rs *questionnaire.ResponseSet) bool
}

func answered(id questionnaire.QuestionID, opts ...questionnaire.Option) func(*questionnaire.ResponseSet) bool {
	return func(rs *questionnaire.ResponseSet) bool {
		got := rs.Get(id)
		for _, o := range opts {
			if got == o {
				return true
			}
		}
		return false
	}
}

// DefaultInsightRules returns the insight rules in the order their messages
// are listed. The order is fixed and is not a severity ranking.
func DefaultInsightRules() []InsightRule {
	return []InsightRule{
		{
			Key:     "smoking",
			Message: "Smoking significantly increases cervical cancer risk.",
			Applies: answered(questionnaire.QuestionSmoking, questionnaire.SmokingYes),
		},
		{
			Key:     "hpv_vaccination",
			Message: "HPV vaccination can significantly reduce cervical cancer risk.",
			Applies: answered(questionnaire.QuestionHPVVaccination, questionnaire.HPVNotVaccinated, questionnaire.HPVNotSure),
		},
		{
			Key:     "early_intercourse",
			Message: "Early sexual activity increases exposure to HPV infections.",
			Applies: answered(questionnaire.QuestionFirstIntercourse, questionnaire.FirstIntercourseBelow18),
		},
		{
			Key:     "multiple_partners",
			Message: "Multiple sexual partners may increase HPV exposure risk.",
			Applies: answered(questionnaire.QuestionSexualPartners, questionnaire.Partners4To5, questionnaire.PartnersMoreThan5),
		},
		{
			Key:     "family_history",
			Message: "Family history of cervical cancer may indicate genetic predisposition.",
			Applies: answered(questionnaire.QuestionFamilyHistory, questionnaire.FamilyHistoryYes),
		},
		{
			Key:     "contraception",
			Message: "Long-term hormonal contraceptive use may slightly increase risk.",
			Applies: answered(questionnaire.QuestionContraception, questionnaire.ContraceptionYes),
		},
		{
			Key:     "high_parity",
			Message: "High parity (many pregnancies) may increase cervical cancer risk.",
			Applies: answered(questionnaire.QuestionPregnancy, questionnaire.Pregnancies5OrMore),
		},
		{
			Key:     "std_history",
			Message: "History of sexually transmitted diseases increases cervical cancer risk.",
			Applies: answered(questionnaire.QuestionSTDs, questionnaire.STDsYes),
		},
		{
			Key:     "symptoms",
			Message: "Any unusual symptoms should be evaluated by a healthcare provider.",
			Applies: func(rs *questionnaire.ResponseSet) bool {
				// A skipped answer is not a "no symptoms" answer.
				return rs != nil && (rs.Symptoms.Reported() || rs.Symptoms.Has(questionnaire.Skipped))
			},
		},
	}
}
