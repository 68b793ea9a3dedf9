package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

func TestBroadcasterDeliversToAllListeners(t *testing.T) {
	b := NewBroadcaster(logger.NewNoOpLogger())

	var first, second []models.ProgressEventType
	b.Subscribe(func(e models.ProgressEvent) { first = append(first, e.Type) })
	unsubscribe := b.Subscribe(func(e models.ProgressEvent) { second = append(second, e.Type) })

	b.Publish(models.ProgressEvent{Type: models.EventTaskStarted})
	unsubscribe()
	b.Publish(models.ProgressEvent{Type: models.EventTaskCompleted})

	assert.Equal(t, []models.ProgressEventType{models.EventTaskStarted, models.EventTaskCompleted}, first)
	assert.Equal(t, []models.ProgressEventType{models.EventTaskStarted}, second,
		"unsubscribed listener stops receiving")
}

func TestBroadcasterSurvivesPanickingListener(t *testing.T) {
	b := NewBroadcaster(logger.NewNoOpLogger())

	b.Subscribe(func(models.ProgressEvent) { panic("boom") })

	delivered := 0
	b.Subscribe(func(models.ProgressEvent) { delivered++ })

	assert.NotPanics(t, func() {
		b.Publish(models.ProgressEvent{Type: models.EventPlanCreated})
	})
	assert.Equal(t, 1, delivered, "other listeners still receive the event")
}
