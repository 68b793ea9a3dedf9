// internal/models/plan.go
package models

import "time"

// TodoStatus is the lifecycle state of a single task
type TodoStatus string

const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in_progress"
	TodoCompleted  TodoStatus = "completed"
	TodoBlocked    TodoStatus = "blocked"
	TodoSkipped    TodoStatus = "skipped"
)

// PlanStatus is the lifecycle state of a whole plan
type PlanStatus string

const (
	PlanPlanning  PlanStatus = "planning"
	PlanReady     PlanStatus = "ready"
	PlanExecuting PlanStatus = "executing"
	PlanCompleted PlanStatus = "completed"
	PlanFailed    PlanStatus = "failed"
)

// AgentType says which execution surface a task targets
type AgentType string

const (
	AgentBrowser AgentType = "browser"
	AgentAPI     AgentType = "api"
	AgentHybrid  AgentType = "hybrid"
)

// TodoItem is one schedulable unit of work inside a plan
type TodoItem struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	TitleHi      string      `json:"titleHi,omitempty"`
	Description  string      `json:"description,omitempty"`
	Status       TodoStatus  `json:"status"`
	Priority     int         `json:"priority"`
	Tools        []string    `json:"tools"`
	Dependencies []string    `json:"dependencies,omitempty"`
	Agent        AgentType   `json:"agent,omitempty"`
	Result       interface{} `json:"result,omitempty"`
	Error        string      `json:"error,omitempty"`
	StartedAt    *time.Time  `json:"startedAt,omitempty"`
	CompletedAt  *time.Time  `json:"completedAt,omitempty"`
}

// TodoPlan is an ordered set of tasks produced for one intent.
// Plans are value types: status updates return a fresh copy.
type TodoPlan struct {
	ID        string            `json:"id"`
	SessionID string            `json:"sessionId,omitempty"`
	Title     string            `json:"title"`
	TitleHi   string            `json:"titleHi,omitempty"`
	Intent    Intent            `json:"intent"`
	Entities  ExtractedEntities `json:"entities,omitempty"`
	Items     []TodoItem        `json:"items"`
	Status    PlanStatus        `json:"status"`
	Progress  int               `json:"progress"`
	Source    string            `json:"source,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// CountByStatus tallies tasks in the given state
func (p TodoPlan) CountByStatus(s TodoStatus) int {
	n := 0
	for _, it := range p.Items {
		if it.Status == s {
			n++
		}
	}
	return n
}

// ProgressEventType labels plan-execution lifecycle events
type ProgressEventType string

const (
	EventPlanCreated   ProgressEventType = "plan_created"
	EventTaskStarted   ProgressEventType = "task_started"
	EventToolExecuted  ProgressEventType = "tool_executed"
	EventTaskCompleted ProgressEventType = "task_completed"
	EventTaskFailed    ProgressEventType = "task_failed"
	EventPlanCompleted ProgressEventType = "plan_completed"
)

// ProgressEvent is emitted to subscribers as a plan executes
type ProgressEvent struct {
	Type      ProgressEventType `json:"type"`
	PlanID    string            `json:"planId"`
	SessionID string            `json:"sessionId,omitempty"`
	TaskID    string            `json:"taskId,omitempty"`
	Tool      string            `json:"tool,omitempty"`
	Message   string            `json:"message,omitempty"`
	Progress  int               `json:"progress"`
	Timestamp time.Time         `json:"timestamp"`
}
