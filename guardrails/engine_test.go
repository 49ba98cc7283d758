package guardrails

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanTextUnchanged(t *testing.T) {
	e := NewEngine(nil)
	text := "A perfectly harmless answer of reasonable length."

	assert.Equal(t, text, e.Validate(text))
}

func TestValidateSafetyFailurePrependsDisclaimer(t *testing.T) {
	e := NewEngine(nil)
	text := "This answer discusses violence in detail and more."

	got := e.Validate(text)

	assert.True(t, strings.HasPrefix(got, Disclaimer+"\n\n"))
	assert.True(t, strings.HasSuffix(got, text), "original text must be a verbatim suffix")
}

func TestValidateQualityFailureDoesNotAlterOutput(t *testing.T) {
	e := NewEngine(nil)

	t.Run("too short", func(t *testing.T) {
		text := "too short"
		assert.Equal(t, text, e.Validate(text))

		report := e.Evaluate(text)
		assert.False(t, report.QualityPassed)
		require.Len(t, report.QualityIssues, 1)
		assert.Equal(t, CheckMinLength, report.QualityIssues[0].Check)
		assert.Equal(t, SeverityMedium, report.QualityIssues[0].Severity)
	})

	t.Run("too long", func(t *testing.T) {
		text := strings.Repeat("long answer. ", 100)
		assert.Equal(t, text, e.Validate(text))

		report := e.Evaluate(text)
		assert.False(t, report.QualityPassed)
		require.Len(t, report.QualityIssues, 1)
		assert.Equal(t, CheckMaxLength, report.QualityIssues[0].Check)
		assert.Equal(t, SeverityLow, report.QualityIssues[0].Severity)
	})
}

func TestValidateDisclaimerNotIdempotent(t *testing.T) {
	// Re-validating a remediated text adds a second disclaimer. That is the
	// intended behavior of the remediation policy, pinned here on purpose.
	e := NewEngine(nil)
	text := "An answer that mentions violence somewhere in it."

	once := e.Validate(text)
	twice := e.Validate(once)

	assert.NotEqual(t, once, twice)
	assert.True(t, strings.HasPrefix(twice, Disclaimer+"\n\n"+Disclaimer+"\n\n"))
}

func TestEvaluateSafetyCaseInsensitive(t *testing.T) {
	e := NewEngine(nil)

	passed, issues := e.EvaluateSafety("Do not discuss VIOLENCE here, a long enough sentence.")

	assert.False(t, passed)
	require.Len(t, issues, 1)
	assert.Equal(t, "harmful_content", issues[0].Category)
	assert.Equal(t, "Contains potentially problematic term: violence", issues[0].Message)
	assert.Equal(t, SeverityHigh, issues[0].Severity)
}

func TestEvaluateSafetyMultipleCategories(t *testing.T) {
	e := NewEngine(nil)

	passed, issues := e.EvaluateSafety("A text about politics, violence and passwords.")

	assert.False(t, passed)
	require.Len(t, issues, 3)
	// Issue order follows sorted category order.
	assert.Equal(t, "harmful_content", issues[0].Category)
	assert.Equal(t, "personal_data", issues[1].Category)
	assert.Equal(t, "sensitive_topics", issues[2].Category)
}

func TestEvaluateSafetySubstringMatch(t *testing.T) {
	// Substring matching is deliberately crude: "nonviolence" still trips
	// the "violence" keyword.
	e := NewEngine(nil)

	passed, _ := e.EvaluateSafety("Gandhi championed nonviolence throughout his life.")
	assert.False(t, passed)
}

func TestEvaluateQualityBoundary(t *testing.T) {
	e := NewEngine(&Config{
		SafetyRules: map[string][]string{},
		Quality:     QualityThresholds{MinLength: 5, MaxLength: 10},
	})

	tests := []struct {
		name   string
		text   string
		passed bool
	}{
		{"at min length", "12345", true},
		{"below min length", "1234", false},
		{"at max length", "1234567890", true},
		{"above max length", "12345678901", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, _ := e.EvaluateQuality(tt.text)
			assert.Equal(t, tt.passed, passed)
		})
	}
}

func TestEvaluateQualityCountsCharactersNotBytes(t *testing.T) {
	e := NewEngine(nil)

	t.Run("multi-byte text below min length", func(t *testing.T) {
		// 10 characters, 30 bytes. Byte counting would pass it.
		text := strings.Repeat("界", 10)

		passed, issues := e.EvaluateQuality(text)

		assert.False(t, passed)
		require.Len(t, issues, 1)
		assert.Equal(t, CheckMinLength, issues[0].Check)
	})

	t.Run("multi-byte text within bounds", func(t *testing.T) {
		// 25 characters, 75 bytes.
		text := strings.Repeat("界", 25)

		passed, issues := e.EvaluateQuality(text)

		assert.True(t, passed)
		assert.Empty(t, issues)
	})
}

func TestEvaluateReportShape(t *testing.T) {
	e := NewEngine(nil)

	report := e.Evaluate("A harmless answer that is long enough to pass quality.")

	assert.True(t, report.SafetyPassed)
	assert.Empty(t, report.SafetyIssues)
	assert.True(t, report.QualityPassed)
	assert.Empty(t, report.QualityIssues)
}
