// internal/models/conversation.go
package models

import "time"

// ConversationAnalysis is the full result of analyzing one utterance
type ConversationAnalysis struct {
	SessionID            string            `json:"sessionId"`
	Text                 string            `json:"text"`
	Language             string            `json:"language,omitempty"`
	Intent               Intent            `json:"intent"`
	Entities             ExtractedEntities `json:"entities"`
	ToolsNeeded          []string          `json:"toolsNeeded"`
	ToolsMissing         []string          `json:"toolsMissing,omitempty"`
	SuggestedPlan        *TodoPlan         `json:"suggestedPlan,omitempty"`
	RequiresConfirmation bool              `json:"requiresConfirmation"`
	FollowUpQuestions    []string          `json:"followUpQuestions,omitempty"`
	AnalyzedAt           time.Time         `json:"analyzedAt"`
}

// DefaultLanguage is the language a fresh session starts in.
const DefaultLanguage = "hi"

// ConversationContext is the per-session state carried between turns
type ConversationContext struct {
	SessionID   string            `json:"sessionId"`
	Language    string            `json:"language"`
	History     []Message         `json:"history"`
	Entities    ExtractedEntities `json:"entities"`
	LastIntent  *Intent           `json:"lastIntent,omitempty"`
	CurrentPlan *TodoPlan         `json:"currentPlan,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// NewConversationContext creates empty session state
func NewConversationContext(sessionID string) *ConversationContext {
	now := time.Now().UTC()
	return &ConversationContext{
		SessionID: sessionID,
		Language:  DefaultLanguage,
		History:   []Message{},
		Entities:  ExtractedEntities{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
