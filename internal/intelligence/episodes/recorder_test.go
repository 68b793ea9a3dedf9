package episodes

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

type fakeIndexer struct {
	mu   sync.Mutex
	docs [][]byte
	err  error
}

func (f *fakeIndexer) IndexDocument(_ context.Context, _ string, doc []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	cp := make([]byte, len(doc))
	copy(cp, doc)
	f.docs = append(f.docs, cp)
	return nil
}

func (f *fakeIndexer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

func loanParams(success bool) RecordParams {
	return RecordParams{
		UserID:    "u1",
		SessionID: "s1",
		Intent:    models.Intent{Primary: "loan_apply", Domain: models.DomainBanking, Confidence: 0.85},
		Entities: models.ExtractedEntities{
			models.EntityLoanType: {{Type: models.EntityLoanType, Value: "home loan", NormalizedValue: "HOME_LOAN"}},
			models.EntityAmount:   {{Type: models.EntityAmount, Value: "5 lakh", NormalizedValue: "500000"}},
			models.EntityAge:      {{Type: models.EntityAge, Value: "32 साल", NormalizedValue: "32"}},
		},
		Language: "hi",
		Success:  success,
	}
}

func TestRecordBuildsEpisodeFromEntities(t *testing.T) {
	r := NewRecorder(&fakeIndexer{}, Config{FlushInterval: time.Hour}, logger.NewNoOpLogger())
	defer r.Close(context.Background())

	ep, ok := r.Record(context.Background(), loanParams(true))
	require.True(t, ok)

	assert.Equal(t, ModuleCredit, ep.Module)
	assert.Equal(t, ActionApplication, ep.Action.Type)
	assert.Equal(t, "loan_apply", ep.Action.Intent)
	assert.Equal(t, "HOME_LOAN", ep.Action.Details["loan_type"])
	assert.Equal(t, "500000", ep.Action.Details["amount"])
	assert.Equal(t, "Applied for loan (home loan) amount ₹5.00 L", ep.Action.Description)

	require.NotNil(t, ep.State.Demographics)
	assert.Equal(t, 32, ep.State.Demographics.Age)
	assert.Equal(t, "32 years old", ep.State.Context)

	assert.True(t, ep.Outcome.Success)
	assert.Equal(t, "positive", ep.Outcome.Sentiment)
	assert.Equal(t, "hi", ep.Language)
	assert.Equal(t, 1, r.Pending(), "episode buffered until flush")
}

func TestRecordSkipsNonFinancialIntents(t *testing.T) {
	r := NewRecorder(&fakeIndexer{}, Config{FlushInterval: time.Hour}, logger.NewNoOpLogger())
	defer r.Close(context.Background())

	ep, ok := r.Record(context.Background(), RecordParams{
		UserID:    "u1",
		SessionID: "s1",
		Intent:    models.Intent{Primary: "gst_calculate", Domain: models.DomainCompliance, Confidence: 0.9},
	})

	assert.False(t, ok)
	assert.Nil(t, ep)
	assert.Equal(t, 0, r.Pending())
}

func TestRecordFlushesWhenBufferFills(t *testing.T) {
	idx := &fakeIndexer{}
	r := NewRecorder(idx, Config{FlushSize: 3, FlushInterval: time.Hour}, logger.NewNoOpLogger())
	defer r.Close(context.Background())

	for i := 0; i < 3; i++ {
		_, ok := r.Record(context.Background(), loanParams(true))
		require.True(t, ok)
	}

	assert.Equal(t, 3, idx.count())
	assert.Equal(t, 0, r.Pending())

	var doc Episode
	require.NoError(t, json.Unmarshal(idx.docs[0], &doc))
	assert.Equal(t, ModuleCredit, doc.Module)
	assert.NotEmpty(t, doc.ID)
}

func TestFlushRequeuesOnIndexerFailure(t *testing.T) {
	idx := &fakeIndexer{err: errors.New("cluster red")}
	r := NewRecorder(idx, Config{FlushInterval: time.Hour}, logger.NewNoOpLogger())
	defer r.Close(context.Background())

	_, ok := r.Record(context.Background(), loanParams(false))
	require.True(t, ok)

	r.Flush(context.Background())
	assert.Equal(t, 1, r.Pending(), "failed episodes go back on the queue")

	idx.mu.Lock()
	idx.err = nil
	idx.mu.Unlock()

	r.Flush(context.Background())
	assert.Equal(t, 0, r.Pending())
	assert.Equal(t, 1, idx.count())
}

func TestCloseDrainsBuffer(t *testing.T) {
	idx := &fakeIndexer{}
	r := NewRecorder(idx, Config{FlushInterval: time.Hour}, logger.NewNoOpLogger())

	_, ok := r.Record(context.Background(), loanParams(true))
	require.True(t, ok)

	r.Close(context.Background())
	assert.Equal(t, 1, idx.count())
}

func TestModuleForIntent(t *testing.T) {
	m, ok := ModuleForIntent("financial_goal_set")
	require.True(t, ok)
	assert.Equal(t, ModuleSavings, m)

	_, ok = ModuleForIntent("vehicle_track")
	assert.False(t, ok)

	assert.Equal(t, ActionRedemption, ActionTypeForIntent("rewards_redeem"))
	assert.Equal(t, ActionInquiry, ActionTypeForIntent("financial_advice"))
}

func TestDescribeActionFallback(t *testing.T) {
	desc := describeAction("credit_score_check", nil)
	assert.Equal(t, "Performed credit score check", desc)
}
