// internal/models/intent.go
package models

// IntentDomain groups intents by business area
type IntentDomain string

const (
	DomainCompliance IntentDomain = "compliance"
	DomainERP        IntentDomain = "erp"
	DomainCRM        IntentDomain = "crm"
	DomainBanking    IntentDomain = "banking"
	DomainGovernment IntentDomain = "government"
	DomainLogistics  IntentDomain = "logistics"
	DomainGeneral    IntentDomain = "general"
	DomainMeta       IntentDomain = "meta"
)

// Intent is the classified purpose of an utterance
type Intent struct {
	Primary    string                 `json:"primary"`
	Domain     IntentDomain           `json:"domain"`
	Confidence float64                `json:"confidence"`
	SubIntents []string               `json:"subIntents,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// UnknownIntent is the conservative fallback when no strategy produced a usable result
func UnknownIntent() Intent {
	return Intent{
		Primary:    "unknown",
		Domain:     DomainGeneral,
		Confidence: 0.3,
	}
}

// Message is a single conversation turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
