// Package conversation ties the classifier, extractor and planner together
// into per-session understanding and plan execution.
package conversation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/common/metrics"
	"swayam-intelligence/internal/common/observability"
	"swayam-intelligence/internal/intelligence/catalog"
	"swayam-intelligence/internal/models"
)

// Plans attach to the analysis only above this intent confidence.
const planConfidenceThreshold = 0.6

// Confirmation is required below this confidence even with all entities present.
const confirmationThreshold = 0.8

// IntentClassifier is the classifier surface the orchestrator needs.
type IntentClassifier interface {
	Classify(ctx context.Context, text string, history []models.Message) models.Intent
	ToolsForIntent(name string) []string
	RequiredEntitiesForIntent(name string) []string
}

// EntityExtractor is the extractor surface the orchestrator needs.
type EntityExtractor interface {
	Extract(ctx context.Context, text string, history []models.Message) models.ExtractedEntities
}

// PlanBuilder is the planner surface the orchestrator needs.
type PlanBuilder interface {
	CreatePlan(ctx context.Context, intent models.Intent, entities models.ExtractedEntities, history []models.Message) (models.TodoPlan, error)
	ExecutableTasks(plan models.TodoPlan) []models.TodoItem
	UpdateTaskStatus(plan models.TodoPlan, taskID string, status models.TodoStatus, result interface{}) models.TodoPlan
}

// ToolCatalog resolves tool names to providing packages.
type ToolCatalog interface {
	PackagesForTools(tools []string) ([]catalog.PackageInfo, []string)
}

// ToolExecutor runs a single tool invocation for a task.
type ToolExecutor interface {
	ExecuteTool(ctx context.Context, tool string, params map[string]string) (interface{}, error)
}

// AnalyzeOptions carries per-call knobs for Analyze.
type AnalyzeOptions struct {
	// Language overrides the session language for this and later turns.
	// A fresh session starts in Hindi; "en" switches follow-up questions
	// to English.
	Language string
}

// Orchestrator drives per-utterance analysis and plan execution. Same-session
// Analyze calls are serialized through a per-session mutex so concurrent
// turns cannot interleave context updates.
type Orchestrator struct {
	classifier IntentClassifier
	extractor  EntityExtractor
	planner    PlanBuilder
	catalog    ToolCatalog
	store      SessionStore
	progress   *Broadcaster
	obs        *observability.Observability
	logger     logger.Logger

	sessionLocks sync.Map // sessionID -> *sync.Mutex
}

func NewOrchestrator(
	classifier IntentClassifier,
	extractor EntityExtractor,
	plan PlanBuilder,
	cat ToolCatalog,
	store SessionStore,
	progress *Broadcaster,
	obs *observability.Observability,
	log logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		classifier: classifier,
		extractor:  extractor,
		planner:    plan,
		catalog:    cat,
		store:      store,
		progress:   progress,
		obs:        obs,
		logger: log.With(map[string]interface{}{
			"component": "conversation-orchestrator",
		}),
	}
}

// Progress exposes the broadcaster for subscribers (gamification, notifier).
func (o *Orchestrator) Progress() *Broadcaster {
	return o.progress
}

// Session returns the stored conversation state, nil when the session is
// unknown or expired.
func (o *Orchestrator) Session(ctx context.Context, sessionID string) (*models.ConversationContext, error) {
	return o.store.Get(ctx, sessionID)
}

func (o *Orchestrator) lockSession(sessionID string) func() {
	actual, _ := o.sessionLocks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := actual.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Analyze classifies and extracts concurrently, merges the findings into the
// session context, and attaches a suggested plan when the intent is confident
// enough. It never fails the caller: store and AI errors degrade to a thinner
// analysis.
func (o *Orchestrator) Analyze(ctx context.Context, text, sessionID string, opts AnalyzeOptions) *models.ConversationAnalysis {
	unlock := o.lockSession(sessionID)
	defer unlock()

	cctx, err := o.store.Get(ctx, sessionID)
	if err != nil {
		o.logger.Warn("session load failed, starting fresh", map[string]interface{}{
			"session": sessionID,
			"error":   err.Error(),
		})
	}
	if cctx == nil {
		cctx = models.NewConversationContext(sessionID)
	}
	if opts.Language != "" {
		cctx.Language = opts.Language
	}
	if cctx.Language == "" {
		cctx.Language = models.DefaultLanguage
	}

	var (
		wg       sync.WaitGroup
		intent   models.Intent
		entities models.ExtractedEntities
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		intent = o.classifier.Classify(ctx, text, cctx.History)
	}()
	go func() {
		defer wg.Done()
		entities = o.extractor.Extract(ctx, text, cctx.History)
	}()
	wg.Wait()

	// Entities accumulate across turns; a new value for a type replaces the
	// previous one for that type only.
	for entityType, values := range entities {
		cctx.Entities[entityType] = values
	}

	toolsNeeded := o.classifier.ToolsForIntent(intent.Primary)
	var toolsMissing []string
	if o.catalog != nil && len(toolsNeeded) > 0 {
		_, toolsMissing = o.catalog.PackagesForTools(toolsNeeded)
	}

	analysis := &models.ConversationAnalysis{
		SessionID:    sessionID,
		Text:         text,
		Language:     cctx.Language,
		Intent:       intent,
		Entities:     cctx.Entities.Clone(),
		ToolsNeeded:  toolsNeeded,
		ToolsMissing: toolsMissing,
		AnalyzedAt:   time.Now(),
	}

	missingEntities := o.missingRequiredEntities(intent, cctx.Entities)
	analysis.RequiresConfirmation = intent.Confidence < confirmationThreshold || len(missingEntities) > 0
	analysis.FollowUpQuestions = followUpQuestions(missingEntities, cctx.Language)

	if intent.Confidence > planConfidenceThreshold {
		plan, err := o.planner.CreatePlan(ctx, intent, cctx.Entities.Clone(), cctx.History)
		if err != nil {
			o.logger.Warn("plan creation failed", map[string]interface{}{
				"session": sessionID,
				"intent":  intent.Primary,
				"error":   err.Error(),
			})
		} else {
			plan.SessionID = sessionID
			analysis.SuggestedPlan = &plan
			cctx.CurrentPlan = &plan
		}
	}

	cctx.History = append(cctx.History, models.Message{Role: "user", Content: text})
	cctx.LastIntent = &intent
	cctx.UpdatedAt = time.Now().UTC()

	if err := o.store.Put(ctx, cctx); err != nil {
		o.logger.Warn("session save failed", map[string]interface{}{
			"session": sessionID,
			"error":   err.Error(),
		})
	}

	if o.obs != nil {
		o.obs.RecordAnalysis(ctx, string(intent.Domain))
	}

	return analysis
}

func (o *Orchestrator) missingRequiredEntities(intent models.Intent, entities models.ExtractedEntities) []string {
	var missing []string
	for _, required := range o.classifier.RequiredEntitiesForIntent(intent.Primary) {
		if !entities.Has(models.EntityType(required)) {
			missing = append(missing, required)
		}
	}
	return missing
}

// followUpPhrases maps entity types to the question asked when that entity is
// required but absent.
var followUpPhrases = map[string][2]string{
	"gstin":          {"Please share the GSTIN.", "कृपया GSTIN बताएं।"},
	"amount":         {"What amount should I use?", "कितनी राशि के लिए?"},
	"loan_type":      {"Which type of loan do you need?", "कौन सा लोन चाहिए?"},
	"insurance_type": {"Which type of insurance?", "कौन सा बीमा चाहिए?"},
	"goal_type":      {"What are you saving for?", "किस लक्ष्य के लिए बचत करनी है?"},
	"offer_id":       {"Which offer would you like to apply?", "कौन सा ऑफर अप्लाई करना है?"},
	"aadhaar":        {"Please share the Aadhaar number.", "कृपया आधार नंबर बताएं।"},
	"pan":            {"Please share the PAN.", "कृपया पैन बताएं।"},
	"vehicle":        {"Which vehicle number?", "कौन सी गाड़ी का नंबर?"},
	"container":      {"Which container number?", "कौन सा कंटेनर नंबर?"},
}

func followUpQuestions(missingEntities []string, language string) []string {
	if len(missingEntities) == 0 {
		return nil
	}
	questions := make([]string, 0, len(missingEntities))
	for _, entityType := range missingEntities {
		phrases, ok := followUpPhrases[entityType]
		if !ok {
			if language == "hi" {
				questions = append(questions, fmt.Sprintf("कृपया %s बताएं।", entityType))
			} else {
				questions = append(questions, fmt.Sprintf("Please provide the %s.", entityType))
			}
			continue
		}
		if language == "hi" {
			questions = append(questions, phrases[1])
		} else {
			questions = append(questions, phrases[0])
		}
	}
	return questions
}

// ExecutePlan runs the plan's frontier loop: repeatedly execute every task
// whose dependencies are complete, emitting progress events along the way.
// A failing tool blocks its task (and transitively its dependents) but the
// rest of the frontier keeps going. The final plan state is returned and
// persisted to the session.
func (o *Orchestrator) ExecutePlan(ctx context.Context, plan models.TodoPlan, executor ToolExecutor) (models.TodoPlan, error) {
	o.emit(models.ProgressEvent{
		Type:      models.EventPlanCreated,
		PlanID:    plan.ID,
		SessionID: plan.SessionID,
		Message:   "plan execution started",
		Progress:  plan.Progress,
	})

	params := flattenParams(plan.Entities)

	for {
		if err := ctx.Err(); err != nil {
			return plan, err
		}

		frontier := o.planner.ExecutableTasks(plan)
		if len(frontier) == 0 {
			break
		}

		for _, task := range frontier {
			plan = o.executeTask(ctx, plan, task, params, executor)
		}
	}

	// The terminal event is emitted even for failed plans.
	message := "all tasks completed"
	if plan.Status != models.PlanCompleted {
		message = "plan completed with some errors"
	}
	o.emit(models.ProgressEvent{
		Type:      models.EventPlanCompleted,
		PlanID:    plan.ID,
		SessionID: plan.SessionID,
		Message:   message,
		Progress:  100,
	})

	o.persistPlan(ctx, plan)
	return plan, nil
}

func (o *Orchestrator) executeTask(ctx context.Context, plan models.TodoPlan, task models.TodoItem, params map[string]string, executor ToolExecutor) models.TodoPlan {
	started := time.Now()

	plan = o.planner.UpdateTaskStatus(plan, task.ID, models.TodoInProgress, nil)
	o.emit(models.ProgressEvent{
		Type:      models.EventTaskStarted,
		PlanID:    plan.ID,
		SessionID: plan.SessionID,
		TaskID:    task.ID,
		Message:   task.Title,
		Progress:  plan.Progress,
	})

	results := make(map[string]interface{}, len(task.Tools))
	for _, tool := range task.Tools {
		result, err := executor.ExecuteTool(ctx, tool, params)
		if err != nil {
			plan = o.planner.UpdateTaskStatus(plan, task.ID, models.TodoBlocked,
				fmt.Sprintf("%s: %v", tool, err))
			o.emit(models.ProgressEvent{
				Type:      models.EventTaskFailed,
				PlanID:    plan.ID,
				SessionID: plan.SessionID,
				TaskID:    task.ID,
				Tool:      tool,
				Message:   err.Error(),
				Progress:  plan.Progress,
			})
			metrics.TasksExecuted.WithLabelValues("failed").Inc()
			if o.obs != nil {
				o.obs.RecordTaskDuration(ctx, time.Since(started), "failed")
			}
			return plan
		}
		results[tool] = result
		o.emit(models.ProgressEvent{
			Type:      models.EventToolExecuted,
			PlanID:    plan.ID,
			SessionID: plan.SessionID,
			TaskID:    task.ID,
			Tool:      tool,
			Progress:  plan.Progress,
		})
	}

	var taskResult interface{}
	if len(results) > 0 {
		taskResult = results
	}
	plan = o.planner.UpdateTaskStatus(plan, task.ID, models.TodoCompleted, taskResult)
	o.emit(models.ProgressEvent{
		Type:      models.EventTaskCompleted,
		PlanID:    plan.ID,
		SessionID: plan.SessionID,
		TaskID:    task.ID,
		Message:   task.Title,
		Progress:  plan.Progress,
	})
	metrics.TasksExecuted.WithLabelValues("completed").Inc()
	if o.obs != nil {
		o.obs.RecordTaskDuration(ctx, time.Since(started), "completed")
	}
	return plan
}

func (o *Orchestrator) emit(event models.ProgressEvent) {
	if o.progress == nil {
		return
	}
	event.Timestamp = time.Now()
	o.progress.Publish(event)
}

func (o *Orchestrator) persistPlan(ctx context.Context, plan models.TodoPlan) {
	if plan.SessionID == "" {
		return
	}
	unlock := o.lockSession(plan.SessionID)
	defer unlock()

	cctx, err := o.store.Get(ctx, plan.SessionID)
	if err != nil || cctx == nil {
		return
	}
	final := plan
	cctx.CurrentPlan = &final
	cctx.UpdatedAt = time.Now().UTC()
	if err := o.store.Put(ctx, cctx); err != nil {
		o.logger.Warn("plan state save failed", map[string]interface{}{
			"session": plan.SessionID,
			"plan":    plan.ID,
			"error":   err.Error(),
		})
	}
}

// flattenParams turns extracted entities into the flat string params handed
// to tools, preferring normalized values. A billing period param defaults to
// the current month when the utterance did not carry a date.
func flattenParams(entities models.ExtractedEntities) map[string]string {
	params := make(map[string]string, len(entities)+1)
	for entityType := range entities {
		if first, ok := entities.First(entityType); ok {
			params[string(entityType)] = first.BestValue()
		}
	}
	if _, ok := params["period"]; !ok {
		params["period"] = time.Now().Format("012006")
	}
	return params
}
