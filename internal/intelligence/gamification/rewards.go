// internal/intelligence/gamification/rewards.go
package gamification

import "swayam-intelligence/internal/intelligence/episodes"

// Tier is a long-term engagement band derived from level
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
	TierDiamond  Tier = "diamond"
)

// xpRewards grants XP per reward action
var xpRewards = map[string]int{
	"daily_login":        5,
	"check_balance":      2,
	"review_spending":    10,
	"set_savings_goal":   25,
	"create_budget":      20,
	"check_credit_score": 15,
	"make_investment":    30,
	"start_sip":          50,
	"link_account":       40,
	"link_insurance":     30,
}

// intentXPActions maps conversation intents onto reward actions
var intentXPActions = map[string]string{
	"loan_apply":               "make_investment",
	"financial_goal_set":       "set_savings_goal",
	"credit_score_check":       "check_credit_score",
	"credit_eligibility_check": "check_credit_score",
	"spending_analysis":        "review_spending",
	"budget_set":               "create_budget",
	"account_link":             "link_account",
	"account_summary":          "check_balance",
	"offers_view":              "daily_login",
	"rewards_check":            "daily_login",
	"insurance_quote_request":  "link_insurance",
	"investment_portfolio_view": "check_balance",
	"investment_recommend":     "review_spending",
	"financial_goal_progress":  "check_balance",
}

// modulePoints are redeemable points granted per successful interaction
var modulePoints = map[episodes.Module]int{
	episodes.ModuleCredit:     10,
	episodes.ModuleInsurance:  15,
	episodes.ModuleInvestment: 20,
	episodes.ModuleSavings:    15,
	episodes.ModulePayments:   5,
	episodes.ModuleRewards:    5,
	episodes.ModuleAccount:    25,
	episodes.ModuleAdvice:     10,
}

// xpLevels holds the cumulative XP required to reach each level.
// Level 1 starts at 0; climbing from level n to n+1 costs 100*n XP.
var xpLevels = []int{
	0, 100, 300, 600, 1000, 1500, 2100, 2800, 3600, 4500,
	5500, 6600, 7800, 9100, 10500, 12000, 13600, 15300, 17100, 19000,
}

// tierLevels are the minimum levels for each tier, checked highest first
var tierLevels = []struct {
	level int
	tier  Tier
}{
	{20, TierDiamond},
	{15, TierPlatinum},
	{10, TierGold},
	{5, TierSilver},
	{0, TierBronze},
}

// firstTimeBadges are one-off badges keyed by the reward action that earns them
var firstTimeBadges = map[string]Badge{
	"set_savings_goal":   {ID: "first_savings_goal", Name: "Goal Getter", Description: "Set your first savings goal"},
	"create_budget":      {ID: "first_budget", Name: "Budget Boss", Description: "Created your first budget"},
	"make_investment":    {ID: "first_investment", Name: "Market Debut", Description: "Made your first investment move"},
	"check_credit_score": {ID: "credit_score_check", Name: "Score Aware", Description: "Checked your credit score"},
	"link_insurance":     {ID: "first_policy", Name: "Covered", Description: "Linked your first insurance policy"},
}

// LevelForXP walks the ladder and returns the highest level the XP reaches
func LevelForXP(xp int) int {
	level := 1
	for i, threshold := range xpLevels {
		if xp >= threshold {
			level = i + 1
		}
	}
	return level
}

// XPToNextLevel returns the XP still missing for the next level, 0 at the cap
func XPToNextLevel(xp int) int {
	for _, threshold := range xpLevels {
		if xp < threshold {
			return threshold - xp
		}
	}
	return 0
}

// TierForLevel maps a level onto its engagement tier
func TierForLevel(level int) Tier {
	for _, t := range tierLevels {
		if level >= t.level {
			return t.tier
		}
	}
	return TierBronze
}
