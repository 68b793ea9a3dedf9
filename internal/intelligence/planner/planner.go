// Package planner turns a classified intent plus its entities into an
// executable todo plan, either from a built-in template or from an
// AI-generated task list.
package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"swayam-intelligence/internal/aiproxy"
	stderrors "swayam-intelligence/internal/common/errors"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/common/metrics"
	"swayam-intelligence/internal/models"
)

const aiPlannerPrompt = `You are a task planner for SWAYAM, an Indian business AI assistant.
Generate a detailed TODO list for the given intent.

Available tools (use these in tasks):
- Compliance: gst_verify, gst_calc, hsn_lookup, tds_calc, income_tax_calc, pan_verify, eway_generate, einvoice_generate
- ERP: invoice_create, stock_check, po_create, so_create, balance_sheet
- CRM: lead_create, lead_assign, contact_create, opportunity_create, activity_task
- Banking: upi_send, emi_calc, bank_balance, bbps_electricity
- Government: aadhaar_verify, epf_balance, pm_kisan, ulip_vahan_rc
- Logistics: vehicle_position, container_track, toll_estimate, distance_calc

Return JSON:
{
  "title": "Plan title in English",
  "titleHi": "Plan title in Hindi",
  "tasks": [
    {
      "title": "Task in English",
      "titleHi": "Task in Hindi",
      "description": "optional detail",
      "priority": 1,
      "agent": "browser|api|hybrid",
      "tools": ["tool_name"],
      "dependencies": ["task_1"]
    }
  ]
}
Priority runs 1 (do first) to 5 (do last).`

// aiPlanSchema rejects malformed AI plans before they become executable.
const aiPlanSchema = `{
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "title": {"type": "string"},
    "titleHi": {"type": "string"},
    "tasks": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "titleHi": {"type": "string"},
          "description": {"type": "string"},
          "priority": {"type": "integer", "minimum": 1, "maximum": 5},
          "agent": {"type": "string", "enum": ["browser", "api", "hybrid"]},
          "tools": {"type": "array", "items": {"type": "string"}},
          "dependencies": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

// Plan sources recorded on created plans.
const (
	SourceTemplate = "template"
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// Planner builds and updates todo plans. CreatePlan only errors when a
// built-in template is broken; AI failures degrade to a single-task fallback.
type Planner struct {
	templates map[string]planTemplate
	ai        aiproxy.CompletionClient
	logger    logger.Logger
	schema    *gojsonschema.Schema
}

func NewPlanner(ai aiproxy.CompletionClient, log logger.Logger) *Planner {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(aiPlanSchema))
	if err != nil {
		panic(fmt.Sprintf("planner: invalid plan schema: %v", err))
	}

	byIntent := make(map[string]planTemplate, len(planTemplates))
	for _, t := range planTemplates {
		byIntent[t.intent] = t
	}

	return &Planner{
		templates: byIntent,
		ai:        ai,
		logger: log.With(map[string]interface{}{
			"component": "todo-planner",
		}),
		schema: schema,
	}
}

// CreatePlan instantiates the template registered for the intent, or asks the
// AI for a task list when there is none. Dependencies referencing unknown
// tasks are pruned; a dependency cycle in a template is a construction error,
// a cycle in an AI plan falls back to a single catch-all task.
func (p *Planner) CreatePlan(ctx context.Context, intent models.Intent, entities models.ExtractedEntities, history []models.Message) (models.TodoPlan, error) {
	now := time.Now()
	plan := models.TodoPlan{
		ID:        "plan_" + uuid.NewString(),
		Intent:    intent,
		Entities:  entities,
		Status:    models.PlanReady,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if tmpl, ok := p.templates[intent.Primary]; ok {
		items := p.instantiate(tmpl, entities)
		items = p.pruneDependencies(plan.ID, items)
		if hasCycle(items) {
			return models.TodoPlan{}, stderrors.NewPlanCycleDetectedError(plan.ID)
		}
		plan.Title = tmpl.title
		plan.TitleHi = tmpl.titleHi
		plan.Items = items
		plan.Source = SourceTemplate
		metrics.PlansCreated.WithLabelValues(SourceTemplate, intent.Primary).Inc()
		return plan, nil
	}

	generated, ok := p.generateWithAI(ctx, intent, entities, history)
	if ok {
		generated.items = p.pruneDependencies(plan.ID, generated.items)
	}
	if !ok || hasCycle(generated.items) {
		plan.Title = "Execute " + intent.Primary
		plan.TitleHi = intent.Primary + " करें"
		plan.Items = fallbackItems(intent)
		plan.Source = SourceFallback
	} else {
		plan.Title = generated.title
		plan.TitleHi = generated.titleHi
		plan.Items = generated.items
		plan.Source = SourceAI
	}
	metrics.PlansCreated.WithLabelValues(plan.Source, intent.Primary).Inc()
	return plan, nil
}

// instantiate stamps positional task IDs and substitutes {entityKey}
// placeholders with each entity's canonical value.
func (p *Planner) instantiate(tmpl planTemplate, entities models.ExtractedEntities) []models.TodoItem {
	items := make([]models.TodoItem, 0, len(tmpl.tasks))
	for i, task := range tmpl.tasks {
		item := models.TodoItem{
			ID:           fmt.Sprintf("task_%d", i+1),
			Title:        substituteEntities(task.title, entities),
			TitleHi:      substituteEntities(task.titleHi, entities),
			Description:  substituteEntities(task.description, entities),
			Status:       models.TodoPending,
			Priority:     task.priority,
			Tools:        append([]string(nil), task.tools...),
			Dependencies: append([]string(nil), task.dependencies...),
			Agent:        task.agent,
		}
		items = append(items, item)
	}
	return items
}

func substituteEntities(text string, entities models.ExtractedEntities) string {
	if text == "" || !strings.Contains(text, "{") {
		return text
	}
	for entityType := range entities {
		first, ok := entities.First(entityType)
		if !ok {
			continue
		}
		text = strings.ReplaceAll(text, "{"+string(entityType)+"}", first.BestValue())
	}
	return text
}

// generatedPlan is what a successful AI round yields: bilingual plan titles
// plus the task list.
type generatedPlan struct {
	title   string
	titleHi string
	items   []models.TodoItem
}

// generateWithAI asks the proxy for a plan and validates it against the
// schema. The bool reports whether a usable task list came back.
func (p *Planner) generateWithAI(ctx context.Context, intent models.Intent, entities models.ExtractedEntities, history []models.Message) (generatedPlan, bool) {
	if p.ai == nil {
		return generatedPlan{}, false
	}

	entitiesJSON, _ := json.Marshal(entities)
	messages := make([]models.Message, 0, 5)
	messages = append(messages, models.Message{Role: "system", Content: aiPlannerPrompt})
	if n := len(history); n > 0 {
		start := n - 3
		if start < 0 {
			start = 0
		}
		messages = append(messages, history[start:]...)
	}
	messages = append(messages, models.Message{
		Role: "user",
		Content: fmt.Sprintf("Create a TODO plan for:\nIntent: %s (%s)\nEntities: %s\nConfidence: %.2f",
			intent.Primary, intent.Domain, entitiesJSON, intent.Confidence),
	})

	content, err := p.ai.Complete(ctx, messages, 0.2)
	if err != nil {
		p.logger.Warn("ai plan generation failed", map[string]interface{}{
			"intent": intent.Primary,
			"error":  err.Error(),
		})
		return generatedPlan{}, false
	}

	payload, err := aiproxy.ExtractJSON(content)
	if err != nil {
		p.logger.Warn("ai plan returned no json", map[string]interface{}{
			"intent": intent.Primary,
		})
		return generatedPlan{}, false
	}

	validation, err := p.schema.Validate(gojsonschema.NewStringLoader(payload))
	if err != nil || !validation.Valid() {
		details := "unparseable payload"
		if err == nil {
			parts := make([]string, 0, len(validation.Errors()))
			for _, desc := range validation.Errors() {
				parts = append(parts, desc.String())
			}
			details = strings.Join(parts, "; ")
		}
		p.logger.Warn("ai plan failed schema validation", map[string]interface{}{
			"intent":  intent.Primary,
			"details": details,
		})
		return generatedPlan{}, false
	}

	var parsed struct {
		Title   string `json:"title"`
		TitleHi string `json:"titleHi"`
		Tasks   []struct {
			Title        string   `json:"title"`
			TitleHi      string   `json:"titleHi"`
			Description  string   `json:"description"`
			Priority     int      `json:"priority"`
			Agent        string   `json:"agent"`
			Tools        []string `json:"tools"`
			Dependencies []string `json:"dependencies"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return generatedPlan{}, false
	}

	generated := generatedPlan{
		title:   parsed.Title,
		titleHi: parsed.TitleHi,
		items:   make([]models.TodoItem, 0, len(parsed.Tasks)),
	}
	if generated.title == "" {
		generated.title = "Plan for " + intent.Primary
	}
	if generated.titleHi == "" {
		generated.titleHi = intent.Primary + " के लिए Plan"
	}
	for i, task := range parsed.Tasks {
		agent := models.AgentType(task.Agent)
		if agent == "" {
			agent = models.AgentAPI
		}
		priority := task.Priority
		if priority == 0 {
			priority = 3
		}
		generated.items = append(generated.items, models.TodoItem{
			ID:           fmt.Sprintf("task_%d", i+1),
			Title:        task.Title,
			TitleHi:      task.TitleHi,
			Description:  task.Description,
			Status:       models.TodoPending,
			Priority:     priority,
			Tools:        task.Tools,
			Dependencies: task.Dependencies,
			Agent:        agent,
		})
	}
	return generated, true
}

func fallbackItems(intent models.Intent) []models.TodoItem {
	return []models.TodoItem{
		{
			ID:       "task_1",
			Title:    "Complete " + intent.Primary,
			TitleHi:  intent.Primary + " पूरा करें",
			Status:   models.TodoPending,
			Priority: 1,
			Tools:    []string{},
			Agent:    models.AgentAPI,
		},
	}
}

// pruneDependencies drops references to task IDs that do not exist in the
// plan, logging each removal.
func (p *Planner) pruneDependencies(planID string, items []models.TodoItem) []models.TodoItem {
	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.ID] = true
	}

	for i := range items {
		kept := items[i].Dependencies[:0]
		for _, dep := range items[i].Dependencies {
			if known[dep] {
				kept = append(kept, dep)
				continue
			}
			p.logger.Warn("pruned unknown dependency", map[string]interface{}{
				"plan":       planID,
				"task":       items[i].ID,
				"dependency": dep,
			})
		}
		items[i].Dependencies = kept
	}
	return items
}

// hasCycle runs Kahn's algorithm over the dependency edges.
func hasCycle(items []models.TodoItem) bool {
	indegree := make(map[string]int, len(items))
	dependents := make(map[string][]string, len(items))

	for _, item := range items {
		indegree[item.ID] += 0
		for _, dep := range item.Dependencies {
			indegree[item.ID]++
			dependents[dep] = append(dependents[dep], item.ID)
		}
	}

	queue := make([]string, 0, len(items))
	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range dependents[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	return visited != len(items)
}

// ExecutableTasks returns the pending tasks whose dependencies have all
// completed, i.e. the current execution frontier.
func (p *Planner) ExecutableTasks(plan models.TodoPlan) []models.TodoItem {
	completed := make(map[string]bool, len(plan.Items))
	for _, item := range plan.Items {
		if item.Status == models.TodoCompleted {
			completed[item.ID] = true
		}
	}

	var frontier []models.TodoItem
	for _, item := range plan.Items {
		if item.Status != models.TodoPending {
			continue
		}
		ready := true
		for _, dep := range item.Dependencies {
			if !completed[dep] {
				ready = false
				break
			}
		}
		if ready {
			frontier = append(frontier, item)
		}
	}
	return frontier
}

// UpdateTaskStatus returns a fresh plan with the task's status, timestamps
// and result applied and plan-level progress and status recomputed. A blocked
// task records the result as its error; any other status records it as the
// task result.
func (p *Planner) UpdateTaskStatus(plan models.TodoPlan, taskID string, status models.TodoStatus, result interface{}) models.TodoPlan {
	updated := plan
	updated.Items = make([]models.TodoItem, len(plan.Items))
	copy(updated.Items, plan.Items)

	now := time.Now()
	for i := range updated.Items {
		if updated.Items[i].ID != taskID {
			continue
		}
		updated.Items[i].Status = status
		switch status {
		case models.TodoInProgress:
			started := now
			updated.Items[i].StartedAt = &started
		case models.TodoCompleted:
			completed := now
			updated.Items[i].CompletedAt = &completed
		}
		if status == models.TodoBlocked {
			if result != nil {
				updated.Items[i].Error = fmt.Sprint(result)
			}
		} else if result != nil {
			updated.Items[i].Result = result
		}
	}

	total := len(updated.Items)
	completed := updated.CountByStatus(models.TodoCompleted)
	if total > 0 {
		updated.Progress = int(math.Round(float64(completed) / float64(total) * 100))
	}

	switch {
	case total > 0 && completed == total:
		updated.Status = models.PlanCompleted
	case updated.CountByStatus(models.TodoBlocked) > 0:
		updated.Status = models.PlanFailed
	default:
		updated.Status = models.PlanExecuting
	}
	updated.UpdatedAt = time.Now()

	return updated
}
