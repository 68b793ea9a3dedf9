// Package intent classifies Hindi/English code-mixed utterances into
// business intents using layered strategies: regex patterns, keyword
// overlap, and an AI completion fallback.
package intent

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"swayam-intelligence/internal/aiproxy"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/common/metrics"
	"swayam-intelligence/internal/models"
)

const aiSystemPrompt = `You are an intent classifier for SWAYAM, an Indian voice AI assistant.
Classify the user's intent into one of these categories:
- compliance: GST, TDS, ITR, MCA, tax-related
- erp: Invoicing, accounting, inventory, purchase, sales
- crm: Leads, contacts, opportunities, sales activities
- banking: UPI, bill payments, loans, calculators, credit eligibility, insurance quotes, investment advice, financial goals, offers/rewards, spending analysis, account linking
- government: Aadhaar, PAN, DigiLocker, government schemes
- logistics: Vehicle tracking, shipping, toll, distance
- general: Weather, search, calculator
- meta: Help, greetings, settings

Return JSON: { "intent": "specific_intent_name", "domain": "category", "confidence": 0.0-1.0 }`

var knownDomains = map[models.IntentDomain]bool{
	models.DomainCompliance: true,
	models.DomainERP:        true,
	models.DomainCRM:        true,
	models.DomainBanking:    true,
	models.DomainGovernment: true,
	models.DomainLogistics:  true,
	models.DomainGeneral:    true,
	models.DomainMeta:       true,
}

// strategy attempts a classification; the second return value reports whether
// it produced a usable result at all.
type strategy func(ctx context.Context, text string, history []models.Message) (models.Intent, bool)

// Classifier resolves an utterance to an Intent. Classify never returns an
// error: every failure path degrades to the unknown intent.
type Classifier struct {
	patterns []pattern
	ai       aiproxy.CompletionClient
	logger   logger.Logger
}

func NewClassifier(ai aiproxy.CompletionClient, log logger.Logger) *Classifier {
	return &Classifier{
		patterns: intentPatterns,
		ai:       ai,
		logger: log.With(map[string]interface{}{
			"component": "intent-classifier",
		}),
	}
}

// Classify runs the strategies in order. Pattern hits above 0.7 and keyword
// hits above 0.6 short-circuit; otherwise the AI fallback runs and the
// results are arbitrated.
func (c *Classifier) Classify(ctx context.Context, text string, history []models.Message) models.Intent {
	patternMatch, patternOK := c.matchPatterns(ctx, text, history)
	if patternOK && patternMatch.Confidence > 0.7 {
		metrics.IntentClassifications.WithLabelValues("pattern", string(patternMatch.Domain)).Inc()
		return patternMatch
	}

	keywordMatch, keywordOK := c.matchKeywords(ctx, text, history)
	if keywordOK && keywordMatch.Confidence > 0.6 {
		metrics.IntentClassifications.WithLabelValues("keyword", string(keywordMatch.Domain)).Inc()
		return keywordMatch
	}

	aiMatch, _ := c.classifyWithAI(ctx, text, history)

	candidates := make([]models.Intent, 0, 3)
	if patternOK {
		candidates = append(candidates, patternMatch)
	}
	if keywordOK {
		candidates = append(candidates, keywordMatch)
	}
	candidates = append(candidates, aiMatch)

	result := arbitrate(candidates)
	metrics.IntentClassifications.WithLabelValues("arbitrated", string(result.Domain)).Inc()
	return result
}

// arbitrate picks the final intent from the strategies' candidates. When all
// three strategies ran and agree, confidence gets a +0.1 boost capped at 1.0;
// otherwise the highest-confidence candidate wins.
func arbitrate(candidates []models.Intent) models.Intent {
	if len(candidates) == 0 {
		return models.UnknownIntent()
	}

	if len(candidates) == 3 &&
		candidates[0].Primary == candidates[1].Primary &&
		candidates[0].Primary == candidates[2].Primary {
		boosted := candidates[0]
		boosted.Confidence = min(boosted.Confidence+0.1, 1.0)
		return boosted
	}

	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.Confidence > best.Confidence {
			best = cand
		}
	}
	return best
}

// matchPatterns scores regex hits as 0.9 minus 0.05 per priority step, so
// priority-1 intents beat priority-3 intents that match the same text.
func (c *Classifier) matchPatterns(_ context.Context, text string, _ []models.Message) (models.Intent, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	var best *pattern
	bestScore := 0.0

	for i := range c.patterns {
		p := &c.patterns[i]
		for _, re := range p.expressions {
			if re.MatchString(normalized) {
				score := 0.9 - float64(p.priority)*0.05
				if best == nil || score > bestScore {
					best = p
					bestScore = score
				}
				break
			}
		}
	}

	if best == nil {
		return models.Intent{}, false
	}

	return models.Intent{
		Primary:    best.intent,
		Domain:     best.domain,
		Confidence: bestScore,
	}, true
}

// matchKeywords counts token overlap against the combined English + Hindi
// vocabulary. Raw scores are small, so usable ones get a +0.3 boost capped
// at 0.8; anything at or below 0.2 raw is discarded as noise.
func (c *Classifier) matchKeywords(_ context.Context, text string, _ []models.Message) (models.Intent, bool) {
	normalized := strings.ToLower(strings.TrimSpace(text))
	words := strings.Fields(normalized)

	var best *pattern
	bestScore := 0.0

	for i := range c.patterns {
		p := &c.patterns[i]
		all := make([]string, 0, len(p.keywords)+len(p.keywordsHi))
		all = append(all, p.keywords...)
		all = append(all, p.keywordsHi...)

		matchCount := 0
		for _, word := range words {
			for _, kw := range all {
				lkw := strings.ToLower(kw)
				if strings.Contains(word, lkw) || strings.Contains(lkw, word) {
					matchCount++
					break
				}
			}
		}

		if matchCount == 0 {
			continue
		}

		score := (float64(matchCount) / float64(len(all))) * (1 - float64(p.priority)*0.1)
		if best == nil || score > bestScore {
			best = p
			bestScore = score
		}
	}

	if best == nil || bestScore <= 0.2 {
		return models.Intent{}, false
	}

	return models.Intent{
		Primary:    best.intent,
		Domain:     best.domain,
		Confidence: min(bestScore+0.3, 0.8),
	}, true
}

// classifyWithAI asks the proxy, with up to three trailing history turns for
// context. Transport errors, missing JSON and bad payloads all degrade to
// the unknown intent; the bool reports whether the AI produced a real answer.
func (c *Classifier) classifyWithAI(ctx context.Context, text string, history []models.Message) (models.Intent, bool) {
	if c.ai == nil {
		return models.UnknownIntent(), false
	}

	messages := make([]models.Message, 0, 5)
	messages = append(messages, models.Message{Role: "system", Content: aiSystemPrompt})
	if n := len(history); n > 0 {
		start := n - 3
		if start < 0 {
			start = 0
		}
		messages = append(messages, history[start:]...)
	}
	messages = append(messages, models.Message{Role: "user", Content: text})

	started := time.Now()
	content, err := c.ai.Complete(ctx, messages, 0.1)
	metrics.AIFallbackDuration.WithLabelValues("intent").Observe(time.Since(started).Seconds())
	if err != nil {
		c.logger.Warn("ai classification failed", map[string]interface{}{
			"error": err.Error(),
		})
		return models.UnknownIntent(), false
	}

	payload, err := aiproxy.ExtractJSON(content)
	if err != nil {
		c.logger.Warn("ai classification returned no json", nil)
		return models.UnknownIntent(), false
	}

	var parsed struct {
		Intent     string  `json:"intent"`
		Domain     string  `json:"domain"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		c.logger.Warn("ai classification json invalid", map[string]interface{}{
			"error": err.Error(),
		})
		return models.UnknownIntent(), false
	}

	result := models.Intent{
		Primary:    parsed.Intent,
		Domain:     models.IntentDomain(parsed.Domain),
		Confidence: parsed.Confidence,
	}
	if result.Primary == "" {
		result.Primary = "unknown"
	}
	if !knownDomains[result.Domain] {
		result.Domain = models.DomainGeneral
	}
	if result.Confidence <= 0 {
		result.Confidence = 0.5
	}
	if result.Confidence > 1 {
		result.Confidence = 1
	}

	return result, true
}

// ToolsForIntent returns the tools registered for an intent name.
func (c *Classifier) ToolsForIntent(name string) []string {
	for i := range c.patterns {
		if c.patterns[i].intent == name {
			return c.patterns[i].tools
		}
	}
	return nil
}

// RequiredEntitiesForIntent returns the entity types an intent needs before
// its plan can execute.
func (c *Classifier) RequiredEntitiesForIntent(name string) []string {
	for i := range c.patterns {
		if c.patterns[i].intent == name {
			return c.patterns[i].requiredEntities
		}
	}
	return nil
}
