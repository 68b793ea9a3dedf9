// Package entity pulls structured values (identifiers, amounts, dates,
// locations, product categories) out of Hindi/English code-mixed text using
// a regex rule table, a location gazetteer and an AI fallback.
package entity

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"swayam-intelligence/internal/aiproxy"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/common/metrics"
	"swayam-intelligence/internal/models"
)

const aiExtractionPrompt = `You are an entity extractor for SWAYAM, an Indian voice AI assistant.
Extract named entities from the user's message. Recognized entity types:
gstin, pan, aadhaar, vehicle, phone, email, amount, date, location, company,
person, product, document, loan_type, insurance_type, employment_type,
goal_type, tenure, age, annual_income, credit_score, investment_type, bank_name.

Return JSON mapping entity type to value, for example:
{ "company": "Sharma Traders", "person": "Rajesh Kumar" }
Only include entities actually present in the message.`

// aiHintPatterns mark utterances that name free-form entities (companies,
// people, products) the regex table cannot capture.
var aiHintPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)company\s*(?:name|called|named)`),
	regexp.MustCompile(`कंपनी\s*(?:का\s*नाम|नाम)`),
	regexp.MustCompile(`(?i)(?:mr|mrs|ms|shri)\.?\s+[a-z]`),
	regexp.MustCompile(`(?:श्री|श्रीमती)\s+\S`),
	regexp.MustCompile(`(?i)(?:naam|name)\s*(?:hai|है|is)`),
	regexp.MustCompile(`(?i)product\s*(?:name|called|named)`),
	regexp.MustCompile(`(?i)item\s*(?:name|add)`),
}

// Extractor resolves an utterance to a set of typed entities. Extract never
// returns an error: the AI fallback failing just means fewer entities.
type Extractor struct {
	rules  []rule
	ai     aiproxy.CompletionClient
	logger logger.Logger
}

func NewExtractor(ai aiproxy.CompletionClient, log logger.Logger) *Extractor {
	return &Extractor{
		rules: entityRules,
		ai:    ai,
		logger: log.With(map[string]interface{}{
			"component": "entity-extractor",
		}),
	}
}

// Extract runs the pattern pass and the gazetteer, then the AI fallback when
// nothing matched or the text hints at free-form entities. AI results never
// overwrite pattern hits.
func (e *Extractor) Extract(ctx context.Context, text string, history []models.Message) models.ExtractedEntities {
	result := e.extractByPattern(text)

	for _, loc := range extractLocations(text) {
		if !containsNormalized(result[models.EntityLocation], loc.NormalizedValue) {
			result[models.EntityLocation] = append(result[models.EntityLocation], loc)
			metrics.EntitiesExtracted.WithLabelValues(string(models.EntityLocation), "gazetteer").Inc()
		}
	}

	if len(result) == 0 || needsAIExtraction(text) {
		e.mergeAIEntities(ctx, text, history, result)
	}

	return result
}

// extractByPattern applies every rule's regexes. The candidate value is the
// last non-empty capture group of each match, so prefix groups like "+91" in
// phone patterns do not leak into the value. Duplicates collapse on the
// normalized form.
func (e *Extractor) extractByPattern(text string) models.ExtractedEntities {
	result := make(models.ExtractedEntities)

	for i := range e.rules {
		r := &e.rules[i]
		seen := make(map[string]bool)

		for _, re := range r.patterns {
			for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
				start, end := loc[0], loc[1]
				for g := len(loc)/2 - 1; g >= 1; g-- {
					if loc[2*g] >= 0 && loc[2*g] != loc[2*g+1] {
						start, end = loc[2*g], loc[2*g+1]
						break
					}
				}
				value := text[start:end]
				span := models.Span{Start: start, End: end}

				if r.validator != nil && !r.validator(value) {
					continue
				}

				normalized := value
				if r.normalizer != nil {
					normalized = r.normalizer(value)
				}
				if seen[normalized] {
					continue
				}
				seen[normalized] = true

				result[r.entityType] = append(result[r.entityType], models.Entity{
					Type:            r.entityType,
					Value:           value,
					NormalizedValue: normalized,
					Confidence:      0.9,
					Position:        span,
				})
				metrics.EntitiesExtracted.WithLabelValues(string(r.entityType), "pattern").Inc()
			}
		}
	}

	return result
}

// mergeAIEntities asks the proxy for entities the rule table missed and adds
// only the types not already present.
func (e *Extractor) mergeAIEntities(ctx context.Context, text string, history []models.Message, result models.ExtractedEntities) {
	if e.ai == nil {
		return
	}

	messages := make([]models.Message, 0, 4)
	messages = append(messages, models.Message{Role: "system", Content: aiExtractionPrompt})
	if n := len(history); n > 0 {
		start := n - 2
		if start < 0 {
			start = 0
		}
		messages = append(messages, history[start:]...)
	}
	messages = append(messages, models.Message{Role: "user", Content: text})

	started := time.Now()
	content, err := e.ai.Complete(ctx, messages, 0.1)
	metrics.AIFallbackDuration.WithLabelValues("entity").Observe(time.Since(started).Seconds())
	if err != nil {
		e.logger.Warn("ai entity extraction failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	payload, err := aiproxy.ExtractJSON(content)
	if err != nil {
		e.logger.Warn("ai entity extraction returned no json", nil)
		return
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		e.logger.Warn("ai entity extraction json invalid", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	for key, raw := range parsed {
		entityType := models.EntityType(strings.ToLower(strings.TrimSpace(key)))
		if result.Has(entityType) {
			continue
		}
		for _, value := range decodeAIValues(raw) {
			result[entityType] = append(result[entityType], models.Entity{
				Type:            entityType,
				Value:           value,
				NormalizedValue: Normalize(entityType, value),
				Confidence:      0.7,
			})
			metrics.EntitiesExtracted.WithLabelValues(string(entityType), "ai").Inc()
		}
	}
}

// decodeAIValues accepts the shapes models actually return: a bare string, a
// {"value": ...} object, or an array of either.
func decodeAIValues(raw json.RawMessage) []string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s = strings.TrimSpace(s); s != "" {
			return []string{s}
		}
		return nil
	}

	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && strings.TrimSpace(obj.Value) != "" {
		return []string{strings.TrimSpace(obj.Value)}
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		var values []string
		for _, item := range list {
			values = append(values, decodeAIValues(item)...)
		}
		return values
	}

	return nil
}

func needsAIExtraction(text string) bool {
	for _, re := range aiHintPatterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func containsNormalized(values models.EntityValues, normalized string) bool {
	for _, v := range values {
		if v.NormalizedValue == normalized {
			return true
		}
	}
	return false
}

// Validate reports whether a raw value passes the rule table's check for the
// given type. Types without a validator accept anything.
func Validate(entityType models.EntityType, value string) bool {
	for i := range entityRules {
		if entityRules[i].entityType == entityType {
			if entityRules[i].validator == nil {
				return true
			}
			return entityRules[i].validator(value)
		}
	}
	return true
}

// Normalize returns the canonical form for a value of the given type, or the
// value unchanged when no normalizer is registered. Normalization is
// idempotent: normalizing an already-normalized value is a no-op.
func Normalize(entityType models.EntityType, value string) string {
	for i := range entityRules {
		if entityRules[i].entityType == entityType {
			if entityRules[i].normalizer == nil {
				return value
			}
			return entityRules[i].normalizer(value)
		}
	}
	return value
}
