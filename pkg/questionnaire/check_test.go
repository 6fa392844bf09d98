package questionnaire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cervicare/cervicare/pkg/questionnaire"
)

func completeResponses() questionnaire.ResponseSet {
	return questionnaire.FromMap(map[string]string{
		"age":                 "20-30",
		"smoking":             "no",
		"firstIntercourse":    "18-25",
		"pregnancy":           "1-2",
		"sexualPartners":      "2-3",
		"contraception":       "yesContraception",
		"iud":                 "noIUD",
		"stds":                "noSTDs",
		"symptoms":            "unusualDischarge,odor,fishy",
		"familyHistory":       "noFamilyHistory",
		"hpvVaccination":      "notSure",
		"vaccinationStrategy": "yesStrategy",
	})
}

func TestCheckComplete(t *testing.T) {
	rs := completeResponses()
	assert.Empty(t, questionnaire.Check(&rs))
}

func TestCheckAllSkipped(t *testing.T) {
	var rs questionnaire.ResponseSet
	for _, id := range questionnaire.QuestionIDs() {
		rs.Set(id, "skipped")
	}
	assert.Empty(t, questionnaire.Check(&rs))
}

func TestCheckReportsProblemsInSchemaOrder(t *testing.T) {
	rs := completeResponses()
	rs.Age = ""
	rs.STDs = "maybe"
	rs.Symptoms = questionnaire.ParseSymptoms("pelvicPain,sneezing")

	problems := questionnaire.Check(&rs)
	require.Len(t, problems, 3)

	assert.Equal(t, questionnaire.Problem{Question: questionnaire.QuestionAge, Kind: questionnaire.ProblemUnanswered}, problems[0])
	assert.Equal(t, questionnaire.Problem{Question: questionnaire.QuestionSTDs, Kind: questionnaire.ProblemUnknownOption, Value: "maybe"}, problems[1])
	assert.Equal(t, questionnaire.Problem{Question: questionnaire.QuestionSymptoms, Kind: questionnaire.ProblemUnknownOption, Value: "sneezing"}, problems[2])

	assert.Equal(t, "age: no answer recorded", problems[0].String())
	assert.Equal(t, `stds: "maybe" is not a known option`, problems[1].String())
}

func TestCheckNil(t *testing.T) {
	problems := questionnaire.Check(nil)
	assert.Len(t, problems, len(questionnaire.QuestionIDs()))
	for _, p := range problems {
		assert.Equal(t, questionnaire.ProblemUnanswered, p.Kind)
	}
}
