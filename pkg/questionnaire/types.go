// Package questionnaire defines the cervical health questionnaire: the fixed
// question schema, the option vocabulary of every question, and the typed
// ResponseSet handed to the scoring engine once the questionnaire is complete.
package questionnaire

// QuestionID identifies one of the twelve fixed questions.
type QuestionID string

const (
	QuestionAge                 QuestionID = "age"
	QuestionSmoking             QuestionID = "smoking"
	QuestionFirstIntercourse    QuestionID = "firstIntercourse"
	QuestionPregnancy           QuestionID = "pregnancy"
	QuestionSexualPartners      QuestionID = "sexualPartners"
	QuestionContraception       QuestionID = "contraception"
	QuestionIUD                 QuestionID = "iud"
	QuestionSTDs                QuestionID = "stds"
	QuestionSymptoms            QuestionID = "symptoms"
	QuestionFamilyHistory       QuestionID = "familyHistory"
	QuestionHPVVaccination      QuestionID = "hpvVaccination"
	QuestionVaccinationStrategy QuestionID = "vaccinationStrategy"
)

// Option is a controlled-vocabulary answer key, e.g. "below20" or "yesSTDs".
// The empty Option means the question was never answered.
type Option string

// Skipped is recorded when the user bypasses a question.
const Skipped Option = "skipped"

// ResponseSet is a completed questionnaire. Every field holds the raw option
// key the user chose; values outside a question's vocabulary are kept as-is
// and simply contribute nothing when scored.
type ResponseSet struct {
	Age                 Option
	Smoking             Option
	FirstIntercourse    Option
	Pregnancy           Option
	SexualPartners      Option
	Contraception       Option
	IUD                 Option
	STDs                Option
	Symptoms            SymptomSet
	FamilyHistory       Option
	HPVVaccination      Option
	VaccinationStrategy Option
}

// Get returns the answer recorded for id. The symptoms answer is returned in
// its comma-joined form.
func (rs *ResponseSet) Get(id QuestionID) Option {
	if rs == nil {
		return ""
	}
	switch id {
	case QuestionAge:
		return rs.Age
	case QuestionSmoking:
		return rs.Smoking
	case QuestionFirstIntercourse:
		return rs.FirstIntercourse
	case QuestionPregnancy:
		return rs.Pregnancy
	case QuestionSexualPartners:
		return rs.SexualPartners
	case QuestionContraception:
		return rs.Contraception
	case QuestionIUD:
		return rs.IUD
	case QuestionSTDs:
		return rs.STDs
	case QuestionSymptoms:
		return Option(rs.Symptoms.String())
	case QuestionFamilyHistory:
		return rs.FamilyHistory
	case QuestionHPVVaccination:
		return rs.HPVVaccination
	case QuestionVaccinationStrategy:
		return rs.VaccinationStrategy
	}
	return ""
}

// Set records value as the answer to id. Symptoms values are decoded with
// ParseSymptoms. Unknown ids are ignored.
func (rs *ResponseSet) Set(id QuestionID, value string) {
	v := Option(value)
	switch id {
	case QuestionAge:
		rs.Age = v
	case QuestionSmoking:
		rs.Smoking = v
	case QuestionFirstIntercourse:
		rs.FirstIntercourse = v
	case QuestionPregnancy:
		rs.Pregnancy = v
	case QuestionSexualPartners:
		rs.SexualPartners = v
	case QuestionContraception:
		rs.Contraception = v
	case QuestionIUD:
		rs.IUD = v
	case QuestionSTDs:
		rs.STDs = v
	case QuestionSymptoms:
		rs.Symptoms = ParseSymptoms(value)
	case QuestionFamilyHistory:
		rs.FamilyHistory = v
	case QuestionHPVVaccination:
		rs.HPVVaccination = v
	case QuestionVaccinationStrategy:
		rs.VaccinationStrategy = v
	}
}

// FromMap builds a ResponseSet from the question-id -> value mapping a front
// end accumulates while the user answers. Keys that are not question ids are
// ignored; values are not checked against the vocabulary.
func FromMap(m map[string]string) ResponseSet {
	var rs ResponseSet
	for k, v := range m {
		rs.Set(QuestionID(k), v)
	}
	return rs
}

// ToMap is the inverse of FromMap. Unanswered questions are omitted.
func (rs *ResponseSet) ToMap() map[string]string {
	m := make(map[string]string)
	for _, id := range QuestionIDs() {
		if v := rs.Get(id); v != "" {
			m[string(id)] = string(v)
		}
	}
	return m
}
