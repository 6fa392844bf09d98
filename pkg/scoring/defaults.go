package scoring

import "github.com/cervicare/cervicare/pkg/questionnaire"

// DefaultFactors returns the standard set of scoring factors with default
// weights, in questionnaire order. The vaccination strategy question only
// drives follow-up questions and has no factor.
func DefaultFactors() []Factor {
	w := Defaults()
	return []Factor{
		&TableFactor{Question: questionnaire.QuestionAge, Label: "Age bracket", Points: w.Age},
		&TableFactor{Question: questionnaire.QuestionSmoking, Label: "Smoking", Points: w.Smoking},
		&TableFactor{Question: questionnaire.QuestionFirstIntercourse, Label: "Age at first intercourse", Points: w.FirstIntercourse},
		&TableFactor{Question: questionnaire.QuestionPregnancy, Label: "Pregnancies", Points: w.Pregnancy},
		&TableFactor{Question: questionnaire.QuestionSexualPartners, Label: "Sexual partners", Points: w.SexualPartners},
		&TableFactor{Question: questionnaire.QuestionContraception, Label: "Contraception use", Points: w.Contraception},
		&TableFactor{Question: questionnaire.QuestionIUD, Label: "IUD use", Points: w.IUD},
		&TableFactor{Question: questionnaire.QuestionSTDs, Label: "STD history", Points: w.STDs},
		&SymptomFactor{Weights: w.Symptoms},
		&TableFactor{Question: questionnaire.QuestionFamilyHistory, Label: "Family history", Points: w.FamilyHistory},
		&TableFactor{Question: questionnaire.QuestionHPVVaccination, Label: "HPV vaccination", Points: w.HPVVaccination},
	}
}
