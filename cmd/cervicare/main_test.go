package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cervicare/cervicare/pkg/questionnaire"
)

const fixtures = "../../testdata/responses/"

// execute runs the root command with args and no config file in scope.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAssessCmdFlags(t *testing.T) {
	cmd := newAssessCmd(&globalOpts{})
	f := cmd.Flags()

	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}
	limit, _ := f.GetInt("limit")
	if limit != 3 {
		t.Errorf("default limit = %d, want 3", limit)
	}

	for _, flag := range []string{"responses", "answer", "output", "limit", "strict", "lang", "color"} {
		if f.Lookup(flag) == nil {
			t.Errorf("missing flag: %s", flag)
		}
	}
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, flag := range []string{"config", "verbose"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag: %s", flag)
		}
	}
	for _, name := range []string{"assess", "questions", "template", "tips"} {
		if c, _, err := cmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("missing command %s", name)
		}
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		raw     string
		id      questionnaire.QuestionID
		value   string
		wantErr bool
	}{
		{raw: "smoking=yes", id: questionnaire.QuestionSmoking, value: "yes"},
		{raw: " symptoms = pelvicPain,foul ", id: questionnaire.QuestionSymptoms, value: "pelvicPain,foul"},
		{raw: "age=", id: questionnaire.QuestionAge, value: ""},
		{raw: "hpvVaccination=not=sure", id: questionnaire.QuestionHPVVaccination, value: "not=sure"},
		{raw: "smoking", wantErr: true},
		{raw: "height=tall", wantErr: true},
	}

	for _, tt := range tests {
		id, value, err := parseAnswer(tt.raw)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseAnswer(%q): expected error", tt.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseAnswer(%q): unexpected error %v", tt.raw, err)
			continue
		}
		if id != tt.id || value != tt.value {
			t.Errorf("parseAnswer(%q) = %q, %q; want %q, %q", tt.raw, id, value, tt.id, tt.value)
		}
	}
}

func TestAssessFromFileJSON(t *testing.T) {
	out, _, err := execute(t, "assess", "--responses", fixtures+"smoker_unvaccinated.json", "--output", "json")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}

	var got struct {
		Level    string   `json:"level"`
		Score    float64  `json:"score"`
		Insights []string `json:"insights"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}
	if got.Level != "high" || got.Score != 11 {
		t.Errorf("got %s/%v, want high/11", got.Level, got.Score)
	}
	if len(got.Insights) != 3 {
		t.Errorf("expected 3 insights, got %q", got.Insights)
	}
}

func TestAssessAnswersOverrideFile(t *testing.T) {
	out, _, err := execute(t, "assess",
		"-f", fixtures+"smoker_unvaccinated.json",
		"-a", "smoking=no", "-a", "stds=noSTDs", "-a", "hpvVaccination=yesVaccinated",
		"--color", "never")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	// 2 (age 31-40) - 2 (vaccinated)
	if !strings.Contains(out, "Risk Assessment: LOW (score 0.0)") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.Contains(out, "Key factors noted:") {
		t.Errorf("expected no insights:\n%s", out)
	}
}

func TestAssessTextLimit(t *testing.T) {
	out, _, err := execute(t, "assess",
		"-a", "smoking=yes", "-a", "hpvVaccination=notSure", "-a", "firstIntercourse=below18",
		"-a", "sexualPartners=4-5", "-a", "symptoms=pelvicPain",
		"--limit", "2", "--color", "never")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if !strings.Contains(out, "... and 3 more") {
		t.Errorf("expected truncated insights:\n%s", out)
	}
}

func TestAssessStrict(t *testing.T) {
	_, stderr, err := execute(t, "assess", "--strict", "-a", "smoking=sometimes")
	if !errors.Is(err, errIncompleteResponses) {
		t.Fatalf("expected errIncompleteResponses, got %v", err)
	}
	if !strings.Contains(stderr, `smoking: "sometimes" is not a known option`) {
		t.Errorf("expected problem report on stderr, got:\n%s", stderr)
	}
	if !strings.Contains(stderr, "age: no answer recorded") {
		t.Errorf("expected unanswered report on stderr, got:\n%s", stderr)
	}

	// Every question skipped passes strict checking.
	_, _, err = execute(t, "assess", "--strict", "-f", fixtures+"all_skipped.yaml", "--color", "never")
	if err != nil {
		t.Errorf("strict assess of a skipped questionnaire: %v", err)
	}
}

func TestAssessErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"assess"}},
		{"bad answer", []string{"assess", "-a", "smoking"}},
		{"missing file", []string{"assess", "-f", "does-not-exist.yaml"}},
		{"bad output", []string{"assess", "-a", "smoking=yes", "--output", "xml"}},
		{"negative limit", []string{"assess", "-a", "smoking=yes", "--limit", "-1"}},
		{"unknown language", []string{"assess", "-a", "smoking=yes", "--lang", "fr"}},
		{"unknown color mode", []string{"assess", "-a", "smoking=yes", "--color", "rainbow"}},
		{"tips unknown language", []string{"tips", "--lang", "fr"}},
		{"tips unknown color mode", []string{"tips", "--color", "rainbow"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigFileApplies(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("output:\n  format: json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "assess", "-a", "smoking=yes"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("assess: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(stdout.String()), "{") {
		t.Errorf("expected JSON output from config, got:\n%s", stdout.String())
	}
}

func TestTemplateCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if _, _, err := execute(t, "template", path); err != nil {
		t.Fatalf("template: %v", err)
	}

	rs, err := questionnaire.LoadResponses(path)
	if err != nil {
		t.Fatalf("loading template: %v", err)
	}
	if len(rs.ToMap()) != len(questionnaire.QuestionIDs()) {
		t.Errorf("expected every question in template, got %v", rs.ToMap())
	}

	if _, _, err := execute(t, "template", path); err == nil {
		t.Error("expected error when file exists")
	}
	if _, _, err := execute(t, "template", "--force", path); err != nil {
		t.Errorf("template --force: %v", err)
	}
}

func TestQuestionsAndTips(t *testing.T) {
	out, _, err := execute(t, "questions")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if !strings.Contains(out, "vaccinationStrategy") {
		t.Errorf("expected every question listed:\n%s", out)
	}

	out, _, err = execute(t, "tips", "--lang", "hi", "--color", "never")
	if err != nil {
		t.Fatalf("tips: %v", err)
	}
	if !strings.Contains(out, "HPV वैक्सीनेशन") {
		t.Errorf("expected Hindi tips:\n%s", out)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", "c"}, "c"},
		{[]string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		got := firstNonEmpty(tt.args...)
		if got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}
