package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "swayam-intelligence/internal/common/errors"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

type fakeSNS struct {
	mu     sync.Mutex
	inputs []*sns.PublishInput
	err    error
}

func (f *fakeSNS) Publish(_ context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, input)
	return &sns.PublishOutput{}, nil
}

func TestPublishEvent(t *testing.T) {
	client := &fakeSNS{}
	n := NewNotifier(client, "arn:aws:sns:ap-south-1:123:plan-events", logger.NewNoOpLogger())

	event := models.ProgressEvent{
		Type:      models.EventPlanCompleted,
		PlanID:    "plan_abc",
		SessionID: "s1",
		Progress:  100,
	}
	require.NoError(t, n.PublishEvent(context.Background(), event))

	require.Len(t, client.inputs, 1)
	input := client.inputs[0]
	assert.Equal(t, "arn:aws:sns:ap-south-1:123:plan-events", *input.TopicArn)
	assert.Equal(t, "plan_completed", *input.MessageAttributes["eventType"].StringValue)
	assert.Equal(t, "s1", *input.MessageAttributes["sessionId"].StringValue)

	var decoded models.ProgressEvent
	require.NoError(t, json.Unmarshal([]byte(*input.Message), &decoded))
	assert.Equal(t, "plan_abc", decoded.PlanID)
	assert.Equal(t, 100, decoded.Progress)
}

func TestPublishEventWrapsFailure(t *testing.T) {
	client := &fakeSNS{err: errors.New("throttled")}
	n := NewNotifier(client, "arn:topic", logger.NewNoOpLogger())

	err := n.PublishEvent(context.Background(), models.ProgressEvent{Type: models.EventPlanCompleted})
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeNotificationSendFailed, stdErr.Code)
	assert.Contains(t, stdErr.Details, "sns")
}

func TestHandleProgressFiltersEvents(t *testing.T) {
	client := &fakeSNS{}
	n := NewNotifier(client, "arn:topic", logger.NewNoOpLogger())

	n.HandleProgress(models.ProgressEvent{Type: models.EventTaskStarted})
	n.HandleProgress(models.ProgressEvent{Type: models.EventToolExecuted})
	assert.Empty(t, client.inputs, "mid-plan events stay off the topic")

	n.HandleProgress(models.ProgressEvent{Type: models.EventTaskFailed, PlanID: "plan_x"})
	n.HandleProgress(models.ProgressEvent{Type: models.EventPlanCompleted, PlanID: "plan_x"})
	assert.Len(t, client.inputs, 2)
}

func TestHandleProgressSwallowsSendErrors(t *testing.T) {
	client := &fakeSNS{err: errors.New("topic gone")}
	n := NewNotifier(client, "arn:topic", logger.NewNoOpLogger())

	assert.NotPanics(t, func() {
		n.HandleProgress(models.ProgressEvent{Type: models.EventPlanCompleted})
	})
}

func TestNilNotifierIsSafe(t *testing.T) {
	var n *Notifier
	assert.NoError(t, n.PublishEvent(context.Background(), models.ProgressEvent{}))
	assert.NotPanics(t, func() { n.HandleProgress(models.ProgressEvent{Type: models.EventPlanCompleted}) })
}
