package questionnaire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cervicare/cervicare/pkg/questionnaire"
)

func TestFromMap(t *testing.T) {
	rs := questionnaire.FromMap(map[string]string{
		"age":              "31-40",
		"smoking":          "yes",
		"symptoms":         "abnormalBleeding,foul",
		"hpvVaccination":   "skipped",
		"notAQuestion":     "whatever",
		"firstIntercourse": "someday",
	})

	assert.Equal(t, questionnaire.Age31To40, rs.Age)
	assert.Equal(t, questionnaire.SmokingYes, rs.Smoking)
	assert.Equal(t, questionnaire.Skipped, rs.HPVVaccination)
	// Values are kept verbatim; vocabulary is not enforced here.
	assert.Equal(t, questionnaire.Option("someday"), rs.FirstIntercourse)
	assert.True(t, rs.Symptoms.Has(questionnaire.SymptomAbnormalBleeding))
	assert.True(t, rs.Symptoms.Has(questionnaire.SymptomFoul))
	assert.Equal(t, questionnaire.Option(""), rs.Pregnancy)
}

func TestToMapRoundTrip(t *testing.T) {
	in := map[string]string{
		"age":                 "below20",
		"smoking":             "no",
		"firstIntercourse":    "never",
		"pregnancy":           "0",
		"sexualPartners":      "1",
		"contraception":       "noContraception",
		"iud":                 "noIUD",
		"stds":                "noSTDs",
		"symptoms":            "noSymptoms",
		"familyHistory":       "noFamilyHistory",
		"hpvVaccination":      "yesVaccinated",
		"vaccinationStrategy": "noStrategy",
	}
	rs := questionnaire.FromMap(in)
	assert.Equal(t, in, rs.ToMap())
}

func TestToMapOmitsUnanswered(t *testing.T) {
	rs := questionnaire.ResponseSet{Smoking: questionnaire.SmokingYes}
	assert.Equal(t, map[string]string{"smoking": "yes"}, rs.ToMap())
}

func TestGetNilResponseSet(t *testing.T) {
	var rs *questionnaire.ResponseSet
	assert.Equal(t, questionnaire.Option(""), rs.Get(questionnaire.QuestionAge))
}

func TestSchemaOrderMatchesQuestionIDs(t *testing.T) {
	schema := questionnaire.Schema()
	ids := questionnaire.QuestionIDs()
	require.Len(t, schema, 12)
	require.Len(t, ids, 12)
	for i, q := range schema {
		assert.Equal(t, ids[i], q.ID, "position %d", i)
		assert.NotEmpty(t, q.Prompt, "question %s", q.ID)
		assert.NotEmpty(t, q.Options, "question %s", q.ID)
	}
}

func TestSchemaIsACopy(t *testing.T) {
	s := questionnaire.Schema()
	s[0].Options[0] = "tampered"
	s[8].SubOptions[questionnaire.SymptomAbnormalBleeding][0] = "tampered"

	q, ok := questionnaire.Lookup(questionnaire.QuestionAge)
	require.True(t, ok)
	assert.Equal(t, questionnaire.AgeBelow20, q.Options[0])

	sym, ok := questionnaire.Lookup(questionnaire.QuestionSymptoms)
	require.True(t, ok)
	assert.Equal(t, questionnaire.SymptomHeavyPeriods, sym.SubOptions[questionnaire.SymptomAbnormalBleeding][0])
}

func TestQuestionAccepts(t *testing.T) {
	sym, ok := questionnaire.Lookup(questionnaire.QuestionSymptoms)
	require.True(t, ok)
	assert.True(t, sym.Accepts(questionnaire.SymptomPelvicPain))
	assert.True(t, sym.Accepts(questionnaire.SymptomCrimson))
	assert.True(t, sym.Accepts(questionnaire.Skipped))
	assert.False(t, sym.Accepts("sneezing"))

	age, ok := questionnaire.Lookup(questionnaire.QuestionAge)
	require.True(t, ok)
	assert.False(t, age.Accepts(questionnaire.SmokingYes))

	_, ok = questionnaire.Lookup("height")
	assert.False(t, ok)
}

func TestIsSymptom(t *testing.T) {
	assert.True(t, questionnaire.IsSymptom(questionnaire.SymptomAbnormalBleeding))
	assert.True(t, questionnaire.IsSymptom(questionnaire.SymptomBleedingAfterMenopause))
	assert.True(t, questionnaire.IsSymptom(questionnaire.SymptomFishy))
	assert.False(t, questionnaire.IsSymptom(questionnaire.NoSymptoms))
	assert.False(t, questionnaire.IsSymptom(questionnaire.Skipped))
	assert.False(t, questionnaire.IsSymptom("sneezing"))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Pelvic or back pain", questionnaire.Label(questionnaire.SymptomPelvicPain))
	assert.Equal(t, "5 or more", questionnaire.Label(questionnaire.Pregnancies5OrMore))
	assert.Equal(t, "mystery", questionnaire.Label("mystery"))
}
