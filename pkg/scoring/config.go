package scoring

import q "github.com/cervicare/cervicare/pkg/questionnaire"

// Weights holds the point tables for every scored question. An option
// missing from a table contributes nothing.
type Weights struct {
	Age              map[q.Option]float64
	Smoking          map[q.Option]float64
	FirstIntercourse map[q.Option]float64
	Pregnancy        map[q.Option]float64
	SexualPartners   map[q.Option]float64
	Contraception    map[q.Option]float64
	IUD              map[q.Option]float64
	STDs             map[q.Option]float64
	FamilyHistory    map[q.Option]float64
	HPVVaccination   map[q.Option]float64
	Symptoms         SymptomWeights
}

// SymptomWeights scores the multi-select symptoms answer.
type SymptomWeights struct {
	// Primary symptoms, each counted once when present.
	Primary map[q.Option]float64

	// Bonus added once when any of the concerning bleeding sub-symptoms is present.
	BleedingBonus float64
	BleedingKeys  []q.Option

	// Bonus added once when any of the concerning discharge sub-symptoms is present.
	DischargeBonus float64
	DischargeKeys  []q.Option
}

// Defaults returns the fixed point tables. Skipped answers carry a neutral
// estimate between the directional extremes of each question.
func Defaults() Weights {
	return Weights{
		Age: map[q.Option]float64{
			q.AgeBelow20: 1,
			q.Age20To30:  1,
			q.Age31To40:  2,
			q.AgeAbove40: 2,
			q.Skipped:    1,
		},
		Smoking: map[q.Option]float64{
			q.SmokingYes: 4,
			q.SmokingNo:  0,
			q.Skipped:    1,
		},
		FirstIntercourse: map[q.Option]float64{
			q.FirstIntercourseNever:   0,
			q.FirstIntercourseBelow18: 3,
			q.FirstIntercourse18To25:  2,
			q.FirstIntercourse26To35:  1,
			q.FirstIntercourseAbove35: 0,
			q.Skipped:                 1,
		},
		Pregnancy: map[q.Option]float64{
			q.Pregnancies0:       0,
			q.Pregnancies1To2:    1,
			q.Pregnancies3To4:    2,
			q.Pregnancies5OrMore: 3,
			q.Skipped:            1,
		},
		SexualPartners: map[q.Option]float64{
			q.Partners1:         0,
			q.Partners2To3:      1,
			q.Partners4To5:      2,
			q.PartnersMoreThan5: 3,
			q.Skipped:           1,
		},
		Contraception: map[q.Option]float64{
			q.ContraceptionYes: 1,
			q.ContraceptionNo:  0,
			q.Skipped:          0.5,
		},
		IUD: map[q.Option]float64{
			q.IUDYes:  0.5,
			q.IUDNo:   0,
			q.Skipped: 0,
		},
		STDs: map[q.Option]float64{
			q.STDsYes: 3,
			q.STDsNo:  0,
			q.Skipped: 1,
		},
		FamilyHistory: map[q.Option]float64{
			q.FamilyHistoryYes: 3,
			q.FamilyHistoryNo:  0,
			q.Skipped:          1,
		},
		HPVVaccination: map[q.Option]float64{
			q.HPVVaccinated:    -2,
			q.HPVNotVaccinated: 2,
			q.HPVNotSure:       1,
			q.Skipped:          1,
		},
		Symptoms: SymptomWeights{
			Primary: map[q.Option]float64{
				q.SymptomAbnormalBleeding:      3,
				q.SymptomUnusualDischarge:      2,
				q.SymptomPelvicPain:            2,
				q.SymptomPainDuringIntercourse: 2,
			},
			BleedingBonus:  2,
			BleedingKeys:   []q.Option{q.SymptomBleedingAfterIntercourse, q.SymptomBleedingAfterMenopause},
			DischargeBonus: 1,
			DischargeKeys:  []q.Option{q.SymptomBloody, q.SymptomFoul},
		},
	}
}
