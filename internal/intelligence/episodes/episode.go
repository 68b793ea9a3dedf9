// internal/intelligence/episodes/episode.go
package episodes

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"swayam-intelligence/internal/models"
)

// Module buckets an episode into the financial product area it touched
type Module string

const (
	ModuleCredit     Module = "credit"
	ModuleInsurance  Module = "insurance"
	ModuleInvestment Module = "investment"
	ModuleSavings    Module = "savings"
	ModulePayments   Module = "payments"
	ModuleRewards    Module = "rewards"
	ModuleAccount    Module = "account"
	ModuleAdvice     Module = "advice"
)

// ActionType classifies what kind of move the user made
type ActionType string

const (
	ActionInquiry      ActionType = "inquiry"
	ActionApplication  ActionType = "application"
	ActionCheck        ActionType = "check"
	ActionComparison   ActionType = "comparison"
	ActionRedemption   ActionType = "redemption"
	ActionSetup        ActionType = "setup"
	ActionModification ActionType = "modification"
	ActionCancellation ActionType = "cancellation"
)

var intentModules = map[string]Module{
	"credit_eligibility_check": ModuleCredit,
	"loan_apply":               ModuleCredit,
	"loan_status_check":        ModuleCredit,
	"credit_score_check":       ModuleCredit,
	"emi_calculate":            ModuleCredit,

	"insurance_quote_request": ModuleInsurance,
	"insurance_claim":         ModuleInsurance,

	"investment_portfolio_view": ModuleInvestment,
	"investment_recommend":      ModuleInvestment,

	"financial_goal_set":      ModuleSavings,
	"financial_goal_progress": ModuleSavings,
	"spending_analysis":       ModuleSavings,
	"budget_set":              ModuleSavings,

	"upi_send": ModulePayments,
	"bill_pay": ModulePayments,

	"offers_view":    ModuleRewards,
	"offer_apply":    ModuleRewards,
	"rewards_check":  ModuleRewards,
	"rewards_redeem": ModuleRewards,

	"account_link":    ModuleAccount,
	"account_summary": ModuleAccount,

	"financial_advice": ModuleAdvice,
}

var intentActionTypes = map[string]ActionType{
	"credit_eligibility_check":  ActionInquiry,
	"loan_apply":                ActionApplication,
	"loan_status_check":         ActionCheck,
	"credit_score_check":        ActionCheck,
	"insurance_quote_request":   ActionInquiry,
	"insurance_claim":           ActionApplication,
	"investment_portfolio_view": ActionCheck,
	"investment_recommend":      ActionInquiry,
	"financial_goal_set":        ActionSetup,
	"financial_goal_progress":   ActionCheck,
	"spending_analysis":         ActionCheck,
	"budget_set":                ActionSetup,
	"offers_view":               ActionInquiry,
	"offer_apply":               ActionApplication,
	"rewards_check":             ActionCheck,
	"rewards_redeem":            ActionRedemption,
	"account_link":              ActionSetup,
	"account_summary":           ActionCheck,
	"financial_advice":          ActionInquiry,
}

// ModuleForIntent reports which financial module an intent belongs to.
// Intents outside the financial surface (compliance, logistics, CRM)
// carry no module and are not recorded as episodes.
func ModuleForIntent(name string) (Module, bool) {
	m, ok := intentModules[name]
	return m, ok
}

// ActionTypeForIntent defaults to inquiry for mapped intents without
// a more specific classification.
func ActionTypeForIntent(name string) ActionType {
	if t, ok := intentActionTypes[name]; ok {
		return t
	}
	return ActionInquiry
}

// Demographics is what we know about the user at episode time
type Demographics struct {
	Age            int    `json:"age,omitempty"`
	EmploymentType string `json:"employmentType,omitempty"`
	AnnualIncome   int64  `json:"annualIncome,omitempty"`
	Location       string `json:"location,omitempty"`
}

// FinancialProfile captures creditworthiness signals present in the turn
type FinancialProfile struct {
	CreditScore int `json:"creditScore,omitempty"`
}

// State describes the user context when the action happened
type State struct {
	Demographics *Demographics     `json:"demographics,omitempty"`
	Financial    *FinancialProfile `json:"financial,omitempty"`
	Context      string            `json:"context"`
}

// Action is what the user wanted, with the entity values that shaped it
type Action struct {
	Type        ActionType        `json:"type"`
	Intent      string            `json:"intent"`
	Details     map[string]string `json:"details,omitempty"`
	Description string            `json:"description"`
}

// Outcome is how the interaction ended
type Outcome struct {
	Success   bool   `json:"success"`
	Result    string `json:"result,omitempty"`
	Sentiment string `json:"sentiment"`
}

// Episode is one state, action, outcome record of a financial interaction
type Episode struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	SessionID  string    `json:"sessionId"`
	Timestamp  time.Time `json:"timestamp"`
	State      State     `json:"state"`
	Action     Action    `json:"action"`
	Outcome    Outcome   `json:"outcome"`
	Module     Module    `json:"module"`
	Language   string    `json:"language"`
	Confidence float64   `json:"confidence"`
}

// detailTypes are the entity types worth carrying into action details
var detailTypes = []models.EntityType{
	models.EntityLoanType,
	models.EntityInsuranceType,
	models.EntityInvestmentType,
	models.EntityGoalType,
	models.EntityAmount,
	models.EntityTenure,
	models.EntityBankName,
}

func buildState(entities models.ExtractedEntities) State {
	demo := Demographics{}
	fin := FinancialProfile{}

	if e, ok := entities.First(models.EntityAge); ok {
		demo.Age, _ = strconv.Atoi(e.BestValue())
	}
	if e, ok := entities.First(models.EntityEmploymentType); ok {
		demo.EmploymentType = e.BestValue()
	}
	if e, ok := entities.First(models.EntityAnnualIncome); ok {
		income, _ := strconv.ParseFloat(e.BestValue(), 64)
		demo.AnnualIncome = int64(income)
	}
	if e, ok := entities.First(models.EntityLocation); ok {
		demo.Location = e.BestValue()
	}
	if e, ok := entities.First(models.EntityCreditScore); ok {
		fin.CreditScore, _ = strconv.Atoi(e.BestValue())
	}

	var parts []string
	if demo.Age > 0 {
		parts = append(parts, fmt.Sprintf("%d years old", demo.Age))
	}
	if demo.EmploymentType != "" {
		parts = append(parts, strings.ToLower(demo.EmploymentType))
	}
	if demo.AnnualIncome > 0 {
		parts = append(parts, "income ₹"+formatIndianAmount(float64(demo.AnnualIncome)))
	}
	if fin.CreditScore > 0 {
		parts = append(parts, fmt.Sprintf("CIBIL %d", fin.CreditScore))
	}

	s := State{Context: "Unknown profile"}
	if len(parts) > 0 {
		s.Context = strings.Join(parts, ", ")
	}
	if demo != (Demographics{}) {
		s.Demographics = &demo
	}
	if fin != (FinancialProfile{}) {
		s.Financial = &fin
	}
	return s
}

func buildAction(intent models.Intent, entities models.ExtractedEntities) Action {
	details := map[string]string{}
	for _, t := range detailTypes {
		if e, ok := entities.First(t); ok {
			details[string(t)] = e.BestValue()
		}
	}
	return Action{
		Type:        ActionTypeForIntent(intent.Primary),
		Intent:      intent.Primary,
		Details:     details,
		Description: describeAction(intent.Primary, details),
	}
}

func describeAction(intent string, details map[string]string) string {
	var parts []string

	product := func(key string) string {
		return strings.ReplaceAll(strings.ToLower(details[key]), "_", " ")
	}
	amount := func() string {
		n, _ := strconv.ParseFloat(details["amount"], 64)
		return formatIndianAmount(n)
	}

	switch intent {
	case "credit_eligibility_check":
		parts = append(parts, "Checked loan eligibility")
		if details["loan_type"] != "" {
			parts = append(parts, "for "+product("loan_type"))
		}
		if details["amount"] != "" {
			parts = append(parts, "of ₹"+amount())
		}
	case "loan_apply":
		parts = append(parts, "Applied for loan")
		if details["loan_type"] != "" {
			parts = append(parts, "("+product("loan_type")+")")
		}
		if details["amount"] != "" {
			parts = append(parts, "amount ₹"+amount())
		}
		if details["tenure"] != "" {
			parts = append(parts, "tenure "+details["tenure"])
		}
	case "insurance_quote_request":
		parts = append(parts, "Requested insurance quote")
		if details["insurance_type"] != "" {
			parts = append(parts, "for "+product("insurance_type"))
		}
	case "investment_recommend":
		parts = append(parts, "Sought investment recommendations")
		if details["amount"] != "" {
			parts = append(parts, "for ₹"+amount())
		}
		if details["investment_type"] != "" {
			parts = append(parts, "interested in "+details["investment_type"])
		}
	case "financial_goal_set":
		parts = append(parts, "Set financial goal")
		if details["goal_type"] != "" {
			parts = append(parts, "for "+product("goal_type"))
		}
		if details["amount"] != "" {
			parts = append(parts, "target ₹"+amount())
		}
	case "offers_view":
		parts = append(parts, "Viewed available offers")
	case "rewards_redeem":
		parts = append(parts, "Redeemed reward points")
	case "account_link":
		parts = append(parts, "Linked bank account")
		if details["bank_name"] != "" {
			parts = append(parts, "("+details["bank_name"]+")")
		}
	default:
		parts = append(parts, "Performed "+strings.ReplaceAll(intent, "_", " "))
	}

	return strings.Join(parts, " ")
}

func formatIndianAmount(amount float64) string {
	switch {
	case amount >= 1e7:
		return strconv.FormatFloat(amount/1e7, 'f', 2, 64) + " Cr"
	case amount >= 1e5:
		return strconv.FormatFloat(amount/1e5, 'f', 2, 64) + " L"
	case amount >= 1e3:
		return strconv.FormatFloat(amount/1e3, 'f', 0, 64) + "K"
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
