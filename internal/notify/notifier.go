// internal/notify/notifier.go

// Package notify pushes plan lifecycle notifications to an SNS topic so
// downstream channels (app push, SMS gateways) can alert the user when a
// long-running plan finishes.
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	stderrors "swayam-intelligence/internal/common/errors"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

const publishTimeout = 5 * time.Second

// SNSPublisher is the slice of the SNS client the notifier needs.
type SNSPublisher interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// Notifier publishes progress events for finished plans. A nil Notifier
// is safe to call and does nothing, so wiring stays unconditional even
// when notifications are disabled.
type Notifier struct {
	sns      SNSPublisher
	topicARN string
	logger   logger.Logger
}

func NewNotifier(client SNSPublisher, topicARN string, log logger.Logger) *Notifier {
	return &Notifier{sns: client, topicARN: topicARN, logger: log}
}

// PublishEvent sends one progress event to the topic.
func (n *Notifier) PublishEvent(ctx context.Context, event models.ProgressEvent) error {
	if n == nil {
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return stderrors.NewNotificationSendFailedError("sns", err)
	}

	_, err = n.sns.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(n.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"eventType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(event.Type)),
			},
			"sessionId": {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.SessionID),
			},
		},
	})
	if err != nil {
		return stderrors.NewNotificationSendFailedError("sns", err)
	}

	n.logger.Debug("notification published", map[string]interface{}{
		"eventType": event.Type,
		"planId":    event.PlanID,
	})
	return nil
}

// HandleProgress filters the execution progress stream down to finished
// plans. Send failures are logged, never propagated: a dropped push must
// not fail the plan that triggered it.
func (n *Notifier) HandleProgress(event models.ProgressEvent) {
	if n == nil {
		return
	}
	if event.Type != models.EventPlanCompleted && event.Type != models.EventTaskFailed {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := n.PublishEvent(ctx, event); err != nil {
		n.logger.Error("notification send failed", map[string]interface{}{
			"eventType": event.Type,
			"planId":    event.PlanID,
			"error":     err.Error(),
		})
	}
}
