// internal/intelligence/episodes/recorder.go
package episodes

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	stderrors "swayam-intelligence/internal/common/errors"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

const (
	defaultIndex         = "swayam-episodes"
	defaultFlushSize     = 10
	defaultFlushInterval = 30 * time.Second
)

// Indexer is the slice of the Elasticsearch client the recorder needs.
type Indexer interface {
	IndexDocument(ctx context.Context, index string, doc []byte) error
}

// RecordParams carries everything needed to build one episode.
type RecordParams struct {
	UserID    string
	SessionID string
	Intent    models.Intent
	Entities  models.ExtractedEntities
	Language  string
	Success   bool
	Result    string
}

// Config tunes recorder buffering. Zero values take defaults.
type Config struct {
	Index         string
	FlushSize     int
	FlushInterval time.Duration
}

// Recorder buffers financial episodes and flushes them to Elasticsearch
// in the background. Flush failures are logged and the episodes re-queued;
// recording never fails the conversation that produced it.
type Recorder struct {
	indexer  Indexer
	index    string
	size     int
	interval time.Duration
	logger   logger.Logger

	mu     sync.Mutex
	buffer []Episode

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewRecorder(indexer Indexer, cfg Config, log logger.Logger) *Recorder {
	if cfg.Index == "" {
		cfg.Index = defaultIndex
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = defaultFlushSize
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	r := &Recorder{
		indexer:  indexer,
		index:    cfg.Index,
		size:     cfg.FlushSize,
		interval: cfg.FlushInterval,
		logger:   log,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go r.loop()
	return r
}

// Record builds an episode for the interaction and queues it for indexing.
// Intents without a financial module are skipped and return false.
func (r *Recorder) Record(ctx context.Context, params RecordParams) (*Episode, bool) {
	module, ok := ModuleForIntent(params.Intent.Primary)
	if !ok {
		return nil, false
	}

	language := params.Language
	if language == "" {
		language = "en"
	}

	sentiment := "positive"
	if !params.Success {
		sentiment = "negative"
	}

	ep := Episode{
		ID:        "ep_" + uuid.NewString(),
		UserID:    params.UserID,
		SessionID: params.SessionID,
		Timestamp: time.Now().UTC(),
		State:     buildState(params.Entities),
		Action:    buildAction(params.Intent, params.Entities),
		Outcome: Outcome{
			Success:   params.Success,
			Result:    params.Result,
			Sentiment: sentiment,
		},
		Module:     module,
		Language:   language,
		Confidence: params.Intent.Confidence,
	}

	r.mu.Lock()
	r.buffer = append(r.buffer, ep)
	full := len(r.buffer) >= r.size
	r.mu.Unlock()

	if full {
		r.Flush(ctx)
	}
	return &ep, true
}

// Pending reports how many episodes await flushing.
func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.buffer)
}

// Flush drains the buffer into Elasticsearch. Episodes that fail to index
// go back on the queue for the next attempt.
func (r *Recorder) Flush(ctx context.Context) {
	r.mu.Lock()
	batch := r.buffer
	r.buffer = nil
	r.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	var failed []Episode
	var lastErr error
	for _, ep := range batch {
		doc, err := json.Marshal(ep)
		if err != nil {
			r.logger.Error("episode marshal failed", map[string]interface{}{
				"episodeId": ep.ID,
				"error":     err.Error(),
			})
			continue
		}
		if err := r.indexer.IndexDocument(ctx, r.index, doc); err != nil {
			failed = append(failed, ep)
			lastErr = err
		}
	}

	if len(failed) > 0 {
		flushErr := stderrors.NewEpisodeFlushFailedError(lastErr)
		r.logger.Error("episode flush failed, re-queueing", map[string]interface{}{
			"code":      flushErr.Code,
			"details":   flushErr.Details,
			"failed":    len(failed),
			"attempted": len(batch),
		})
		r.mu.Lock()
		r.buffer = append(failed, r.buffer...)
		r.mu.Unlock()
		return
	}

	r.logger.Debug("episodes flushed", map[string]interface{}{
		"count": len(batch),
		"index": r.index,
	})
}

// Close stops the periodic flush and drains what remains.
func (r *Recorder) Close(ctx context.Context) {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done
	r.Flush(ctx)
}

func (r *Recorder) loop() {
	defer close(r.done)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Flush(context.Background())
		case <-r.stop:
			return
		}
	}
}
