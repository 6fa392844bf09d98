package scoring

import "github.com/cervicare/cervicare/pkg/questionnaire"

// Factor is the interface that all scoring factors implement.
type Factor interface {
	// Key returns the machine-readable factor identifier.
	Key() string
	// Name returns the human-readable factor name.
	Name() string
	// Evaluate computes the factor's contribution for a ResponseSet.
	Evaluate(rs *questionnaire.ResponseSet) FactorResult
}

// Engine runs all configured factors and insight rules against a
// ResponseSet. An Engine holds no mutable state and is safe for concurrent
// use.
type Engine struct {
	factors []Factor
	rules   []InsightRule
}

// NewEngine creates a scoring engine with the given factors and the default
// insight rules.
func NewEngine(factors ...Factor) *Engine {
	return &Engine{factors: factors, rules: DefaultInsightRules()}
}

// WithInsightRules returns a copy of e that uses rules instead.
func (e *Engine) WithInsightRules(rules ...InsightRule) *Engine {
	return &Engine{factors: e.factors, rules: rules}
}

// Assess evaluates all factors and insight rules. A nil rs is treated as a
// questionnaire with nothing answered.
func (e *Engine) Assess(rs *questionnaire.ResponseSet) *Assessment {
	if rs == nil {
		rs = &questionnaire.ResponseSet{}
	}

	result := &Assessment{}
	for _, f := range e.factors {
		fr := f.Evaluate(rs)
		result.Breakdown = append(result.Breakdown, fr)
		result.RawScore += fr.Points
	}

	// Floor the total, not the individual contributions.
	result.Score = result.RawScore
	if result.Score < 0 {
		result.Score = 0
	}

	result.Level = LevelFromScore(result.Score)
	result.Insights = e.Insights(rs)

	return result
}

// Insights returns the message of every rule that applies, in rule order.
// The list is never truncated.
func (e *Engine) Insights(rs *questionnaire.ResponseSet) []string {
	if rs == nil {
		rs = &questionnaire.ResponseSet{}
	}
	insights := []string{}
	for _, r := range e.rules {
		if r.Applies(rs) {
			insights = append(insights, r.Message)
		}
	}
	return insights
}

var defaultEngine = NewEngine(DefaultFactors()...)

// PredictRisk returns the risk tier for rs using the default factors.
func PredictRisk(rs *questionnaire.ResponseSet) RiskLevel {
	return defaultEngine.Assess(rs).Level
}

// RiskInsights returns the insights for rs using the default rules.
func RiskInsights(rs *questionnaire.ResponseSet) []string {
	return defaultEngine.Insights(rs)
}

// Assess scores rs with the default engine.
func Assess(rs *questionnaire.ResponseSet) *Assessment {
	return defaultEngine.Assess(rs)
}
