package entity

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

func firstEntity(t *testing.T, entities models.ExtractedEntities, typ models.EntityType) models.Entity {
	t.Helper()
	e, ok := entities.First(typ)
	require.True(t, ok, "no %s entity extracted", typ)
	return e
}

func TestExtractGSTIN(t *testing.T) {
	e := NewExtractor(nil, logger.NewTestLogger(t))

	entities := e.Extract(context.Background(), "27AABCU9603R1ZM verify karo", nil)

	gstin := firstEntity(t, entities, models.EntityGSTIN)
	assert.Equal(t, "27AABCU9603R1ZM", gstin.NormalizedValue)
	assert.Equal(t, 0.9, gstin.Confidence)
	assert.Equal(t, models.Span{Start: 0, End: 15}, gstin.Position)
}

func TestExtractRejectsMalformedGSTIN(t *testing.T) {
	e := NewExtractor(nil, logger.NewTestLogger(t))

	entities := e.Extract(context.Background(), "gstin: 27AABCU9603R1AM check karo", nil)

	assert.False(t, entities.Has(models.EntityGSTIN))
}

func TestExtractAmountWithUnits(t *testing.T) {
	e := NewExtractor(nil, logger.NewTestLogger(t))

	tests := []struct {
		text string
		want string
	}{
		{"mujhe 5 lakh ka loan chahiye", "500000"},
		{"₹2,500 ka bill", "2500"},
		{"2 crore invest karna hai", "20000000"},
	}

	for _, tt := range tests {
		entities := e.Extract(context.Background(), tt.text, nil)
		amount := firstEntity(t, entities, models.EntityAmount)
		assert.Equal(t, tt.want, amount.NormalizedValue, "for %q", tt.text)
	}
}

func TestExtractDeduplicatesOnNormalizedValue(t *testing.T) {
	e := NewExtractor(nil, logger.NewTestLogger(t))

	entities := e.Extract(context.Background(), "pan AABCU9603R aur PAN: aabcu9603r dono same hain", nil)

	require.Len(t, entities[models.EntityPAN], 1)
	assert.Equal(t, "AABCU9603R", firstEntity(t, entities, models.EntityPAN).NormalizedValue)
}

func TestExtractPhoneUsesLastCaptureGroup(t *testing.T) {
	e := NewExtractor(nil, logger.NewTestLogger(t))

	entities := e.Extract(context.Background(), "mera number +91 9876543210 hai", nil)

	phone := firstEntity(t, entities, models.EntityPhone)
	assert.Equal(t, "9876543210", phone.Value, "country code prefix stays out of the raw value")
	assert.Equal(t, "+919876543210", phone.NormalizedValue)
}

func TestExtractLocationsFromGazetteer(t *testing.T) {
	e := NewExtractor(nil, logger.NewTestLogger(t))

	entities := e.Extract(context.Background(), "Mumbai se Jaipur shipment bhejna hai", nil)

	locations := entities[models.EntityLocation]
	require.Len(t, locations, 2)

	byValue := map[string]models.Entity{}
	for _, loc := range locations {
		byValue[loc.NormalizedValue] = loc
	}

	mumbai, ok := byValue["Mumbai"]
	require.True(t, ok)
	assert.Equal(t, "maharashtra", mumbai.Metadata["state"])
	assert.Equal(t, "city", mumbai.Metadata["type"])
	assert.Equal(t, 0.85, mumbai.Confidence)

	jaipur, ok := byValue["Jaipur"]
	require.True(t, ok)
	assert.Equal(t, "rajasthan", jaipur.Metadata["state"])
}

func TestExtractLoanTypeAndTenure(t *testing.T) {
	e := NewExtractor(nil, logger.NewTestLogger(t))

	entities := e.Extract(context.Background(), "home loan 20 years ke liye", nil)

	assert.Equal(t, "HOME_LOAN", firstEntity(t, entities, models.EntityLoanType).NormalizedValue)
	assert.Equal(t, "20_YEARS", firstEntity(t, entities, models.EntityTenure).NormalizedValue)
}

func TestExtractFallsBackToAIWhenNothingMatches(t *testing.T) {
	ai := &fakeCompletion{content: `{"company": "Sharma Traders"}`}
	e := NewExtractor(ai, logger.NewTestLogger(t))

	entities := e.Extract(context.Background(), "naya customer add karo", nil)

	assert.Equal(t, 1, ai.calls)
	company := firstEntity(t, entities, models.EntityCompany)
	assert.Equal(t, "Sharma Traders", company.Value)
	assert.Equal(t, 0.7, company.Confidence)
}

func TestExtractAINeverOverwritesPatternHits(t *testing.T) {
	ai := &fakeCompletion{content: `{"gstin": "99ZZZZZ9999Z9Z9", "person": "Rajesh Kumar"}`}
	e := NewExtractor(ai, logger.NewTestLogger(t))

	entities := e.Extract(context.Background(), "company name is Sharma Traders, gstin 27AABCU9603R1ZM", nil)

	assert.Equal(t, 1, ai.calls, "company-name hint triggers the fallback")
	gstin := firstEntity(t, entities, models.EntityGSTIN)
	assert.Equal(t, "27AABCU9603R1ZM", gstin.NormalizedValue)
	assert.Equal(t, 0.9, gstin.Confidence)

	person := firstEntity(t, entities, models.EntityPerson)
	assert.Equal(t, "Rajesh Kumar", person.Value)
	assert.Equal(t, 0.7, person.Confidence)
}

func TestExtractSkipsAIWhenPatternsCoverText(t *testing.T) {
	ai := &fakeCompletion{content: `{"amount": "999"}`}
	e := NewExtractor(ai, logger.NewTestLogger(t))

	entities := e.Extract(context.Background(), "gst calculate karo ₹5000 pe", nil)

	assert.Equal(t, 0, ai.calls)
	assert.Equal(t, "5000", firstEntity(t, entities, models.EntityAmount).NormalizedValue)
}

func TestExtractSurvivesAIFailure(t *testing.T) {
	ai := &fakeCompletion{err: errors.New("proxy down")}
	e := NewExtractor(ai, logger.NewTestLogger(t))

	entities := e.Extract(context.Background(), "kuch bhi random text", nil)

	assert.Empty(t, entities)
}

func TestNeedsAIExtractionHints(t *testing.T) {
	assert.True(t, needsAIExtraction("company name is Acme"))
	assert.True(t, needsAIExtraction("mera naam hai Rajesh"))
	assert.True(t, needsAIExtraction("item add karo"))
	assert.False(t, needsAIExtraction("gst calculate karo"))
}
