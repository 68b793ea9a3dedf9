package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

type fakeCompletion struct {
	content string
	err     error
	calls   int
}

func (f *fakeCompletion) Complete(_ context.Context, _ []models.Message, _ float64) (string, error) {
	f.calls++
	return f.content, f.err
}

func TestClassifyLoanApplyByPattern(t *testing.T) {
	ai := &fakeCompletion{}
	c := NewClassifier(ai, logger.NewTestLogger(t))

	result := c.Classify(context.Background(), "mujhe home loan chahiye", nil)

	assert.Equal(t, "loan_apply", result.Primary)
	assert.Equal(t, models.DomainBanking, result.Domain)
	assert.InDelta(t, 0.85, result.Confidence, 1e-9)
	assert.Equal(t, 0, ai.calls, "pattern hit above 0.7 skips the AI")
}

func TestClassifyGSTVerifyFromLiteralGSTIN(t *testing.T) {
	c := NewClassifier(nil, logger.NewTestLogger(t))

	result := c.Classify(context.Background(), "27AABCU9603R1ZM verify karo", nil)

	assert.Equal(t, "gst_verify", result.Primary)
	assert.Equal(t, models.DomainCompliance, result.Domain)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
}

func TestClassifyByKeywordOverlap(t *testing.T) {
	ai := &fakeCompletion{}
	c := NewClassifier(ai, logger.NewTestLogger(t))

	result := c.Classify(context.Background(), "gst tax amount calculate", nil)

	assert.Equal(t, "gst_calculate", result.Primary)
	assert.InDelta(t, 0.7, result.Confidence, 1e-9)
	assert.Equal(t, 0, ai.calls, "keyword hit above 0.6 skips the AI")
}

func TestClassifyFallsBackToAI(t *testing.T) {
	ai := &fakeCompletion{content: `{"intent": "weather_check", "domain": "general", "confidence": 0.85}`}
	c := NewClassifier(ai, logger.NewTestLogger(t))

	result := c.Classify(context.Background(), "xyzzy quux", nil)

	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, "weather_check", result.Primary)
	assert.Equal(t, models.DomainGeneral, result.Domain)
	assert.InDelta(t, 0.85, result.Confidence, 1e-9)
}

func TestClassifyDegradesToUnknownWhenAIFails(t *testing.T) {
	ai := &fakeCompletion{err: errors.New("proxy down")}
	c := NewClassifier(ai, logger.NewTestLogger(t))

	result := c.Classify(context.Background(), "xyzzy quux", nil)

	assert.Equal(t, "unknown", result.Primary)
	assert.Equal(t, models.DomainGeneral, result.Domain)
	assert.InDelta(t, 0.3, result.Confidence, 1e-9)
}

func TestClassifySanitizesAIResponse(t *testing.T) {
	ai := &fakeCompletion{content: `{"intent": "weather_check", "domain": "bogus", "confidence": 1.5}`}
	c := NewClassifier(ai, logger.NewTestLogger(t))

	result := c.Classify(context.Background(), "xyzzy quux", nil)

	assert.Equal(t, models.DomainGeneral, result.Domain, "unrecognized domain falls back to general")
	assert.LessOrEqual(t, result.Confidence, 1.0)
}

func TestClassifyConfidenceAlwaysInBounds(t *testing.T) {
	ai := &fakeCompletion{content: `not json at all`}
	c := NewClassifier(ai, logger.NewTestLogger(t))

	texts := []string{
		"mujhe home loan chahiye",
		"gst calculate karo",
		"hello",
		"xyzzy quux",
		"",
	}
	for _, text := range texts {
		result := c.Classify(context.Background(), text, nil)
		assert.GreaterOrEqual(t, result.Confidence, 0.0, "for %q", text)
		assert.LessOrEqual(t, result.Confidence, 1.0, "for %q", text)
		assert.NotEmpty(t, result.Primary, "for %q", text)
	}
}

func TestPatternScoreFollowsPriority(t *testing.T) {
	c := NewClassifier(nil, logger.NewTestLogger(t))

	loan, ok := c.matchPatterns(context.Background(), "mujhe home loan chahiye", nil)
	require.True(t, ok)

	greeting, ok := c.matchPatterns(context.Background(), "hello", nil)
	require.True(t, ok)

	assert.Greater(t, loan.Confidence, greeting.Confidence,
		"priority 1 intents outscore priority 5 intents")
}

func TestArbitrateBoostsAgreement(t *testing.T) {
	agreed := arbitrate([]models.Intent{
		{Primary: "gst_verify", Domain: models.DomainCompliance, Confidence: 0.8},
		{Primary: "gst_verify", Domain: models.DomainCompliance, Confidence: 0.7},
		{Primary: "gst_verify", Domain: models.DomainCompliance, Confidence: 0.75},
	})
	assert.InDelta(t, 0.9, agreed.Confidence, 1e-9)

	capped := arbitrate([]models.Intent{
		{Primary: "gst_verify", Confidence: 0.95},
		{Primary: "gst_verify", Confidence: 0.95},
		{Primary: "gst_verify", Confidence: 0.95},
	})
	assert.InDelta(t, 1.0, capped.Confidence, 1e-9)
}

func TestArbitratePicksHighestOnDisagreement(t *testing.T) {
	result := arbitrate([]models.Intent{
		{Primary: "gst_verify", Confidence: 0.5},
		{Primary: "loan_apply", Confidence: 0.65},
		{Primary: "unknown", Confidence: 0.3},
	})
	assert.Equal(t, "loan_apply", result.Primary)
	assert.InDelta(t, 0.65, result.Confidence, 1e-9)
}

func TestToolsAndRequiredEntitiesLookup(t *testing.T) {
	c := NewClassifier(nil, logger.NewTestLogger(t))

	assert.Equal(t, []string{"gst_verify"}, c.ToolsForIntent("gst_verify"))
	assert.Equal(t, []string{"loan_type", "amount"}, c.RequiredEntitiesForIntent("loan_apply"))
	assert.Nil(t, c.ToolsForIntent("no_such_intent"))
}
