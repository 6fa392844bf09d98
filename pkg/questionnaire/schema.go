package questionnaire

// Option keys, grouped by question.
const (
	AgeBelow20 Option = "below20"
	Age20To30  Option = "20-30"
	Age31To40  Option = "31-40"
	AgeAbove40 Option = "above40"
	SmokingYes Option = "yes"
	SmokingNo  Option = "no"

	FirstIntercourseNever   Option = "never"
	FirstIntercourseBelow18 Option = "below18"
	FirstIntercourse18To25  Option = "18-25"
	FirstIntercourse26To35  Option = "26-35"
	FirstIntercourseAbove35 Option = "above35"

	Pregnancies0         Option = "0"
	Pregnancies1To2      Option = "1-2"
	Pregnancies3To4      Option = "3-4"
	Pregnancies5OrMore   Option = "5orMore"
	Partners1            Option = "1"
	Partners2To3         Option = "2-3"
	Partners4To5         Option = "4-5"
	PartnersMoreThan5    Option = "moreThan5"
	ContraceptionYes     Option = "yesContraception"
	ContraceptionNo      Option = "noContraception"
	IUDYes               Option = "yesIUD"
	IUDNo                Option = "noIUD"
	STDsYes              Option = "yesSTDs"
	STDsNo               Option = "noSTDs"
	FamilyHistoryYes     Option = "yesFamilyHistory"
	FamilyHistoryNo      Option = "noFamilyHistory"
	HPVVaccinated        Option = "yesVaccinated"
	HPVNotVaccinated     Option = "noVaccinated"
	HPVNotSure           Option = "notSure"
	StrategyInterested   Option = "yesStrategy"
	StrategyUninterested Option = "noStrategy"
)

// Symptom keys. The first five are the top-level choices of the multi-select
// symptoms question; the rest are sub-symptoms offered under a parent.
const (
	SymptomAbnormalBleeding      Option = "abnormalBleeding"
	SymptomUnusualDischarge      Option = "unusualDischarge"
	SymptomPelvicPain            Option = "pelvicPain"
	SymptomPainDuringIntercourse Option = "painDuringIntercourse"
	NoSymptoms                   Option = "noSymptoms"

	SymptomHeavyPeriods             Option = "heavyPeriods"
	SymptomBleedingAfterIntercourse Option = "bleedingAfterIntercourse"
	SymptomBleedingAfterMenopause   Option = "bleedingAfterMenopause"
	SymptomWateryPale               Option = "wateryPale"
	SymptomBloody                   Option = "bloody"
	SymptomOdor                     Option = "odor"
	SymptomPersistentDischarge      Option = "persistentDischarge"
	SymptomPink                     Option = "pink"
	SymptomBrown                    Option = "brown"
	SymptomCrimson                  Option = "crimson"
	SymptomFoul                     Option = "foul"
	SymptomFishy                    Option = "fishy"
)

// Question describes one step of the questionnaire.
type Question struct {
	ID          QuestionID          `json:"id" yaml:"id"`
	Prompt      string              `json:"prompt" yaml:"prompt"`
	Options     []Option            `json:"options" yaml:"options"`
	MultiSelect bool                `json:"multi_select,omitempty" yaml:"multi_select,omitempty"`
	SubOptions  map[Option][]Option `json:"sub_options,omitempty" yaml:"sub_options,omitempty"`
}

// Accepts reports whether o is part of the question's vocabulary. Skipped is
// accepted by every question.
func (q Question) Accepts(o Option) bool {
	if o == Skipped {
		return true
	}
	for _, opt := range q.Options {
		if opt == o {
			return true
		}
	}
	for _, subs := range q.SubOptions {
		for _, sub := range subs {
			if sub == o {
				return true
			}
		}
	}
	return false
}

var symptomSubOptions = map[Option][]Option{
	SymptomAbnormalBleeding: {SymptomHeavyPeriods, SymptomBleedingAfterIntercourse, SymptomBleedingAfterMenopause},
	SymptomUnusualDischarge: {SymptomWateryPale, SymptomBloody, SymptomOdor, SymptomPersistentDischarge},
	SymptomBloody:           {SymptomPink, SymptomBrown, SymptomCrimson},
	SymptomOdor:             {SymptomFoul, SymptomFishy},
}

// Schema returns the questions in presentation order. The returned slice is
// freshly allocated and may be modified by the caller.
func Schema() []Question {
	subs := make(map[Option][]Option, len(symptomSubOptions))
	for k, v := range symptomSubOptions {
		subs[k] = append([]Option(nil), v...)
	}
	return []Question{
		{ID: QuestionAge, Prompt: "What is your age?",
			Options: []Option{AgeBelow20, Age20To30, Age31To40, AgeAbove40}},
		{ID: QuestionSmoking, Prompt: "Do you smoke?",
			Options: []Option{SmokingYes, SmokingNo}},
		{ID: QuestionFirstIntercourse, Prompt: "At what age did you first have intercourse?",
			Options: []Option{FirstIntercourseNever, FirstIntercourseBelow18, FirstIntercourse18To25, FirstIntercourse26To35, FirstIntercourseAbove35}},
		{ID: QuestionPregnancy, Prompt: "How many times have you been pregnant?",
			Options: []Option{Pregnancies0, Pregnancies1To2, Pregnancies3To4, Pregnancies5OrMore}},
		{ID: QuestionSexualPartners, Prompt: "How many sexual partners have you had in your lifetime?",
			Options: []Option{Partners1, Partners2To3, Partners4To5, PartnersMoreThan5}},
		{ID: QuestionContraception, Prompt: "Have you ever used contraception?",
			Options: []Option{ContraceptionYes, ContraceptionNo}},
		{ID: QuestionIUD, Prompt: "Have you ever used an IUD (Copper-T or intrauterine device)?",
			Options: []Option{IUDYes, IUDNo}},
		{ID: QuestionSTDs, Prompt: "Have you ever been diagnosed with STDs?",
			Options: []Option{STDsYes, STDsNo}},
		{ID: QuestionSymptoms, Prompt: "Are you experiencing any of these symptoms? (Multiple select allowed)",
			Options:     []Option{SymptomAbnormalBleeding, SymptomUnusualDischarge, SymptomPelvicPain, SymptomPainDuringIntercourse, NoSymptoms},
			MultiSelect: true,
			SubOptions:  subs},
		{ID: QuestionFamilyHistory, Prompt: "Do you have a family history of cervical cancer?",
			Options: []Option{FamilyHistoryYes, FamilyHistoryNo}},
		{ID: QuestionHPVVaccination, Prompt: "Have you ever received the HPV vaccination?",
			Options: []Option{HPVVaccinated, HPVNotVaccinated, HPVNotSure}},
		{ID: QuestionVaccinationStrategy, Prompt: "Would you like to know about the vaccination strategy for cervical cancer?",
			Options: []Option{StrategyInterested, StrategyUninterested}},
	}
}

// QuestionIDs returns the question ids in presentation order.
func QuestionIDs() []QuestionID {
	return []QuestionID{
		QuestionAge, QuestionSmoking, QuestionFirstIntercourse, QuestionPregnancy,
		QuestionSexualPartners, QuestionContraception, QuestionIUD, QuestionSTDs,
		QuestionSymptoms, QuestionFamilyHistory, QuestionHPVVaccination, QuestionVaccinationStrategy,
	}
}

// Lookup returns the schema entry for id.
func Lookup(id QuestionID) (Question, bool) {
	for _, q := range Schema() {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// IsSymptom reports whether o names an actual symptom: a top-level symptom
// choice or any sub-symptom. NoSymptoms and Skipped are not symptoms.
func IsSymptom(o Option) bool {
	switch o {
	case SymptomAbnormalBleeding, SymptomUnusualDischarge, SymptomPelvicPain, SymptomPainDuringIntercourse:
		return true
	}
	for _, subs := range symptomSubOptions {
		for _, sub := range subs {
			if sub == o {
				return true
			}
		}
	}
	return false
}

var labels = map[Option]string{
	AgeBelow20: "Below 20 years",
	Age20To30:  "20–30 years",
	Age31To40:  "31–40 years",
	AgeAbove40: "Above 40 years",
	SmokingYes: "Yes",
	SmokingNo:  "No",

	FirstIntercourseNever:   "Never",
	FirstIntercourseBelow18: "Below 18 years",
	FirstIntercourse18To25:  "18–25 years",
	FirstIntercourse26To35:  "26–35 years",
	FirstIntercourseAbove35: "Above 35 years",

	Pregnancies0:       "0",
	Pregnancies1To2:    "1–2",
	Pregnancies3To4:    "3–4",
	Pregnancies5OrMore: "5 or more",
	Partners2To3:       "2–3",
	Partners4To5:       "4–5",
	PartnersMoreThan5:  "More than 5",

	ContraceptionYes:     "Yes",
	ContraceptionNo:      "No",
	IUDYes:               "Yes",
	IUDNo:                "No",
	STDsYes:              "Yes",
	STDsNo:               "No",
	FamilyHistoryYes:     "Yes",
	FamilyHistoryNo:      "No",
	HPVVaccinated:        "Yes",
	HPVNotVaccinated:     "No",
	HPVNotSure:           "Not sure",
	StrategyInterested:   "Yes",
	StrategyUninterested: "No",

	SymptomAbnormalBleeding:      "Abnormal vaginal bleeding",
	SymptomUnusualDischarge:      "Unusual vaginal discharge",
	SymptomPelvicPain:            "Pelvic or back pain",
	SymptomPainDuringIntercourse: "Pain during intercourse",
	NoSymptoms:                   "No symptoms",

	SymptomHeavyPeriods:             "Heavy and long-lasting periods",
	SymptomBleedingAfterIntercourse: "Bleeding after intercourse",
	SymptomBleedingAfterMenopause:   "Bleeding after menopause",
	SymptomWateryPale:               "Watery and pale",
	SymptomBloody:                   "Bloody",
	SymptomOdor:                     "Odor",
	SymptomPersistentDischarge:      "Persistent discharge",
	SymptomPink:                     "Pink",
	SymptomBrown:                    "Brown",
	SymptomCrimson:                  "Crimson",
	SymptomFoul:                     "Foul",
	SymptomFishy:                    "Fishy",

	Skipped: "Skipped",
}

// Label returns the English display label for o, or o itself when it has
// none.
func Label(o Option) string {
	if l, ok := labels[o]; ok {
		return l
	}
	return string(o)
}
