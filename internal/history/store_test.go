package history

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swayam-intelligence/internal/common/database"
	stderrors "swayam-intelligence/internal/common/errors"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(&database.PostgresClient{DB: db}, logger.NewNoOpLogger()), mock
}

func samplePlan() models.TodoPlan {
	now := time.Now().UTC()
	return models.TodoPlan{
		ID:        "plan_abc",
		SessionID: "s1",
		Intent:    models.Intent{Primary: "invoice_create", Domain: models.DomainERP, Confidence: 0.85},
		Items: []models.TodoItem{
			{ID: "task_1", Title: "Verify customer GSTIN", Status: models.TodoCompleted, Tools: []string{"gst_verify"}},
			{ID: "task_2", Title: "Generate e-invoice", Status: models.TodoCompleted, Tools: []string{"einvoice_generate"}},
		},
		Status:    models.PlanCompleted,
		Progress:  100,
		Source:    "template",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestSavePlanUpserts(t *testing.T) {
	store, mock := newMockStore(t)
	plan := samplePlan()

	mock.ExpectExec(`INSERT INTO plan_history`).
		WithArgs(
			"plan_abc",
			"s1",
			"invoice_create",
			"completed",
			100,
			sqlmock.AnyArg(), // JSON payload
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.SavePlan(context.Background(), plan))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavePlanWrapsInsertError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`INSERT INTO plan_history`).
		WillReturnError(errors.New("connection reset"))

	err := store.SavePlan(context.Background(), samplePlan())
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodeDatabaseInsertFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlanRoundTrip(t *testing.T) {
	store, mock := newMockStore(t)
	plan := samplePlan()
	payload, err := json.Marshal(plan)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT payload FROM plan_history WHERE id`).
		WithArgs("plan_abc").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

	got, err := store.GetPlan(context.Background(), "plan_abc")
	require.NoError(t, err)

	assert.Equal(t, plan.ID, got.ID)
	assert.Equal(t, "invoice_create", got.Intent.Primary)
	assert.Equal(t, models.PlanCompleted, got.Status)
	assert.Len(t, got.Items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPlanNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT payload FROM plan_history WHERE id`).
		WithArgs("plan_missing").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	_, err := store.GetPlan(context.Background(), "plan_missing")
	require.Error(t, err)

	var stdErr *stderrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, stderrors.ErrCodePlanNotFound, stdErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentPlansOrdersAndLimits(t *testing.T) {
	store, mock := newMockStore(t)

	newer := samplePlan()
	older := samplePlan()
	older.ID = "plan_old"
	older.Status = models.PlanFailed

	newerPayload, _ := json.Marshal(newer)
	olderPayload, _ := json.Marshal(older)

	mock.ExpectQuery(`SELECT payload FROM plan_history WHERE session_id`).
		WithArgs("s1", 2).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).
			AddRow(newerPayload).
			AddRow(olderPayload))

	plans, err := store.RecentPlans(context.Background(), "s1", 2)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "plan_abc", plans[0].ID)
	assert.Equal(t, "plan_old", plans[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecentPlansDefaultLimit(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT payload FROM plan_history WHERE session_id`).
		WithArgs("s1", 10).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	plans, err := store.RecentPlans(context.Background(), "s1", 0)
	require.NoError(t, err)
	assert.Empty(t, plans)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS plan_history`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
