package guardrails

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Disclaimer is prepended to responses that fail a safety check.
const Disclaimer = "Note: Some requested content was modified to adhere to safety guidelines."

// SafetyIssue is a single safety rule violation.
type SafetyIssue struct {
	Category string   `json:"category"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Quality check identifiers.
const (
	CheckMinLength = "min_length"
	CheckMaxLength = "max_length"
)

// QualityIssue is a single quality rule violation.
type QualityIssue struct {
	Check    string   `json:"check"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Report is the outcome of evaluating a text against every rule.
// It is derived purely from the text and the rule configuration.
type Report struct {
	SafetyPassed  bool           `json:"safety_passed"`
	SafetyIssues  []SafetyIssue  `json:"safety_issues"`
	QualityPassed bool           `json:"quality_passed"`
	QualityIssues []QualityIssue `json:"quality_issues"`
}

// Engine evaluates generated text against the configured rule set.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	cfg *Config
	// categories is the sorted rule-category order, fixed at construction
	// so issue ordering is deterministic.
	categories []string
}

// NewEngine creates a new Engine. A nil cfg uses the default rule set.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	categories := make([]string, 0, len(cfg.SafetyRules))
	for category := range cfg.SafetyRules {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return &Engine{cfg: cfg, categories: categories}
}

// EvaluateSafety checks the text against every safety rule.
// Matching is intentionally crude case-insensitive substring search; this is
// an illustrative stand-in for real content moderation.
func (e *Engine) EvaluateSafety(text string) (bool, []SafetyIssue) {
	lower := strings.ToLower(text)

	var issues []SafetyIssue
	for _, category := range e.categories {
		for _, keyword := range e.cfg.SafetyRules[category] {
			if strings.Contains(lower, keyword) {
				issues = append(issues, SafetyIssue{
					Category: category,
					Message:  fmt.Sprintf("Contains potentially problematic term: %s", keyword),
					Severity: SeverityHigh,
				})
			}
		}
	}

	return len(issues) == 0, issues
}

// EvaluateQuality checks the text length against the configured bounds.
// Bounds are in characters, not bytes. The coherence threshold is reserved
// and deliberately not evaluated.
func (e *Engine) EvaluateQuality(text string) (bool, []QualityIssue) {
	var issues []QualityIssue

	length := utf8.RuneCountInString(text)
	if length < e.cfg.Quality.MinLength {
		issues = append(issues, QualityIssue{
			Check:    CheckMinLength,
			Message:  "Response is too short",
			Severity: SeverityMedium,
		})
	}
	if length > e.cfg.Quality.MaxLength {
		issues = append(issues, QualityIssue{
			Check:    CheckMaxLength,
			Message:  "Response is too long",
			Severity: SeverityLow,
		})
	}

	return len(issues) == 0, issues
}

// Evaluate runs both rule stages and returns the full report.
func (e *Engine) Evaluate(text string) Report {
	safetyPassed, safetyIssues := e.EvaluateSafety(text)
	qualityPassed, qualityIssues := e.EvaluateQuality(text)

	return Report{
		SafetyPassed:  safetyPassed,
		SafetyIssues:  safetyIssues,
		QualityPassed: qualityPassed,
		QualityIssues: qualityIssues,
	}
}

// Validate evaluates the text and applies the remediation policy:
//
//  1. everything passes: the text is returned unchanged;
//  2. a safety rule failed: a disclaimer line is prepended, the text itself
//     is not rewritten;
//  3. only quality failed: the text is returned unchanged; quality issues
//     are computed but informational only.
//
// Content issues never surface as errors.
func (e *Engine) Validate(text string) string {
	report := e.Evaluate(text)

	if report.SafetyPassed && report.QualityPassed {
		return text
	}

	if !report.SafetyPassed {
		return Disclaimer + "\n\n" + text
	}

	return text
}
