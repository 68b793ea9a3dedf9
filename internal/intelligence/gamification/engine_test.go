package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/models"
)

func TestLevelForXP(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(0))
	assert.Equal(t, 1, LevelForXP(99))
	assert.Equal(t, 2, LevelForXP(100))
	assert.Equal(t, 3, LevelForXP(300))
	assert.Equal(t, 4, LevelForXP(600))
	assert.Equal(t, 20, LevelForXP(19000))
	assert.Equal(t, 20, LevelForXP(50000), "level caps at the top of the ladder")
}

func TestXPToNextLevel(t *testing.T) {
	assert.Equal(t, 100, XPToNextLevel(0))
	assert.Equal(t, 1, XPToNextLevel(99))
	assert.Equal(t, 200, XPToNextLevel(100), "level 2 to 3 costs 200")
	assert.Equal(t, 0, XPToNextLevel(19000), "nothing left to climb at the cap")
}

func TestTierForLevel(t *testing.T) {
	assert.Equal(t, TierBronze, TierForLevel(1))
	assert.Equal(t, TierBronze, TierForLevel(4))
	assert.Equal(t, TierSilver, TierForLevel(5))
	assert.Equal(t, TierGold, TierForLevel(10))
	assert.Equal(t, TierPlatinum, TierForLevel(15))
	assert.Equal(t, TierDiamond, TierForLevel(20))
}

func TestRecordOutcomeAwardsXPAndPoints(t *testing.T) {
	e := NewEngine(logger.NewNoOpLogger())

	award := e.RecordOutcome("u1", "loan_apply", true)

	assert.Equal(t, 30, award.XP, "loan application rewards like an investment move")
	assert.Equal(t, 10, award.Points, "credit module base points")
	assert.False(t, award.LeveledUp)

	p, ok := e.Profile("u1")
	require.True(t, ok)
	assert.Equal(t, 30, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 70, p.XPToNextLevel)
	assert.Equal(t, 10, p.TotalPoints)
	assert.Equal(t, 10, p.AvailablePoints)
	assert.Equal(t, TierBronze, p.Tier)
}

func TestRecordOutcomeWithholdsPointsOnFailure(t *testing.T) {
	e := NewEngine(logger.NewNoOpLogger())

	award := e.RecordOutcome("u1", "account_link", false)

	assert.Equal(t, 40, award.XP, "the attempt still earns engagement XP")
	assert.Equal(t, 0, award.Points)
	assert.Empty(t, award.Badges, "badges only land on success")
}

func TestRecordOutcomeIgnoresUnmappedIntents(t *testing.T) {
	e := NewEngine(logger.NewNoOpLogger())

	award := e.RecordOutcome("u1", "gst_return_file", true)

	assert.Zero(t, award.XP)
	assert.Zero(t, award.Points)
	_, ok := e.Profile("u1")
	assert.True(t, ok, "profile is created but untouched")
}

func TestFirstTimeBadgeAwardedOnce(t *testing.T) {
	e := NewEngine(logger.NewNoOpLogger())

	first := e.RecordOutcome("u1", "financial_goal_set", true)
	require.Len(t, first.Badges, 1)
	assert.Equal(t, "first_savings_goal", first.Badges[0].ID)
	assert.Equal(t, "Goal Getter", first.Badges[0].Name)

	second := e.RecordOutcome("u1", "financial_goal_set", true)
	assert.Empty(t, second.Badges)

	p, _ := e.Profile("u1")
	assert.Len(t, p.Badges, 1)
}

func TestLevelUpAndTierChange(t *testing.T) {
	e := NewEngine(logger.NewNoOpLogger())

	// link_account is worth 40 XP; three successes cross the 100 XP line
	e.RecordOutcome("u1", "account_link", true)
	e.RecordOutcome("u1", "account_link", true)
	award := e.RecordOutcome("u1", "account_link", true)

	assert.True(t, award.LeveledUp)
	assert.Equal(t, 2, award.Level)
	assert.False(t, award.TierChanged, "silver starts at level 5")

	p, _ := e.Profile("u1")
	assert.Equal(t, 120, p.XP)
	assert.Equal(t, 180, p.XPToNextLevel)
}

func TestAwardPlanUsesPlanOutcome(t *testing.T) {
	e := NewEngine(logger.NewNoOpLogger())

	completed := models.TodoPlan{
		SessionID: "s1",
		Intent:    models.Intent{Primary: "credit_score_check"},
		Status:    models.PlanCompleted,
	}
	award := e.AwardPlan(completed)
	assert.Equal(t, 15, award.XP)
	assert.Equal(t, 10, award.Points)
	require.Len(t, award.Badges, 1)
	assert.Equal(t, "credit_score_check", award.Badges[0].ID)

	failed := completed
	failed.Status = models.PlanFailed
	award = e.AwardPlan(failed)
	assert.Equal(t, 15, award.XP)
	assert.Zero(t, award.Points)
}

func TestRedeemPoints(t *testing.T) {
	e := NewEngine(logger.NewNoOpLogger())
	e.RecordOutcome("u1", "account_link", true)

	assert.False(t, e.RedeemPoints("u1", 100), "balance short of the ask")
	assert.True(t, e.RedeemPoints("u1", 20))

	p, _ := e.Profile("u1")
	assert.Equal(t, 5, p.AvailablePoints)
	assert.Equal(t, 25, p.TotalPoints, "lifetime total is untouched by redemption")

	assert.False(t, e.RedeemPoints("ghost", 1))
}
