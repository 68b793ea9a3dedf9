// internal/history/store.go

// Package history persists executed plans to PostgreSQL so sessions can
// be replayed and audited after the conversation ends.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"swayam-intelligence/internal/common/database"
	stderrors "swayam-intelligence/internal/common/errors"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS plan_history (
	id         TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	intent     TEXT NOT NULL,
	status     TEXT NOT NULL,
	progress   INT  NOT NULL DEFAULT 0,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_plan_history_session ON plan_history (session_id, created_at DESC);
`

const upsertSQL = `
INSERT INTO plan_history (id, session_id, intent, status, progress, payload, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
ON CONFLICT (id) DO UPDATE
SET status = EXCLUDED.status,
    progress = EXCLUDED.progress,
    payload = EXCLUDED.payload,
    updated_at = now()`

const selectByIDSQL = `
SELECT payload FROM plan_history WHERE id = $1`

const selectRecentSQL = `
SELECT payload FROM plan_history WHERE session_id = $1 ORDER BY created_at DESC LIMIT $2`

// Store reads and writes plan records.
type Store struct {
	db     *database.PostgresClient
	logger logger.Logger
}

func NewStore(db *database.PostgresClient, log logger.Logger) *Store {
	return &Store{db: db, logger: log}
}

// EnsureSchema creates the plan_history table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return stderrors.NewQueryExecutionFailedError("create plan_history", err)
	}
	return nil
}

// SavePlan upserts the plan keyed by its ID. Re-saving after execution
// overwrites status, progress and the full payload.
func (s *Store) SavePlan(ctx context.Context, plan models.TodoPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return stderrors.NewDatabaseInsertFailedError(err)
	}

	_, err = s.db.Exec(ctx, upsertSQL,
		plan.ID,
		plan.SessionID,
		plan.Intent.Primary,
		string(plan.Status),
		plan.Progress,
		payload,
	)
	if err != nil {
		return stderrors.NewDatabaseInsertFailedError(err)
	}

	s.logger.Debug("plan saved", map[string]interface{}{
		"planId":    plan.ID,
		"sessionId": plan.SessionID,
		"status":    plan.Status,
	})
	return nil
}

// GetPlan loads one plan by ID.
func (s *Store) GetPlan(ctx context.Context, planID string) (models.TodoPlan, error) {
	var payload []byte
	err := s.db.QueryRow(ctx, selectByIDSQL, planID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TodoPlan{}, stderrors.NewPlanNotFoundError(planID)
	}
	if err != nil {
		return models.TodoPlan{}, stderrors.NewQueryExecutionFailedError("select plan", err)
	}

	var plan models.TodoPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return models.TodoPlan{}, stderrors.NewQueryExecutionFailedError("decode plan payload", err)
	}
	return plan, nil
}

// RecentPlans returns the newest plans for a session, newest first.
func (s *Store) RecentPlans(ctx context.Context, sessionID string, limit int) ([]models.TodoPlan, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(ctx, selectRecentSQL, sessionID, limit)
	if err != nil {
		return nil, stderrors.NewQueryExecutionFailedError("select recent plans", err)
	}
	defer rows.Close()

	var plans []models.TodoPlan
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, stderrors.NewQueryExecutionFailedError("scan plan payload", err)
		}
		var plan models.TodoPlan
		if err := json.Unmarshal(payload, &plan); err != nil {
			return nil, stderrors.NewQueryExecutionFailedError("decode plan payload", err)
		}
		plans = append(plans, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewQueryExecutionFailedError("iterate recent plans", err)
	}
	return plans, nil
}
