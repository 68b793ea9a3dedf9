// internal/intelligence/gamification/engine.go
package gamification

import (
	"sync"
	"time"

	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/common/metrics"
	"swayam-intelligence/internal/intelligence/episodes"
	"swayam-intelligence/internal/models"
)

// Badge is a one-off achievement earned by a user
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earnedAt"`
}

// Profile is the accumulated gamification state for one user
type Profile struct {
	UserID          string    `json:"userId"`
	XP              int       `json:"xp"`
	Level           int       `json:"level"`
	XPToNextLevel   int       `json:"xpToNextLevel"`
	TotalPoints     int       `json:"totalPoints"`
	AvailablePoints int       `json:"availablePoints"`
	Tier            Tier      `json:"tier"`
	Badges          []Badge   `json:"badges,omitempty"`
	LastActive      time.Time `json:"lastActive"`
}

// Award summarizes what one interaction earned
type Award struct {
	XP          int     `json:"xp"`
	Points      int     `json:"points"`
	Level       int     `json:"level"`
	LeveledUp   bool    `json:"leveledUp"`
	Tier        Tier    `json:"tier"`
	TierChanged bool    `json:"tierChanged"`
	Badges      []Badge `json:"badges,omitempty"`
}

// Engine keeps per-user reward profiles in memory and turns interaction
// outcomes into XP, points and badges.
type Engine struct {
	mu       sync.Mutex
	profiles map[string]*Profile
	logger   logger.Logger
}

func NewEngine(log logger.Logger) *Engine {
	return &Engine{
		profiles: make(map[string]*Profile),
		logger:   log,
	}
}

// Profile returns a copy of the user's reward state.
func (e *Engine) Profile(userID string) (Profile, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.profiles[userID]
	if !ok {
		return Profile{}, false
	}
	cp := *p
	cp.Badges = append([]Badge(nil), p.Badges...)
	return cp, true
}

// RecordOutcome awards the user for one finished interaction. XP follows
// the intent's reward action; redeemable points follow the financial
// module and are granted only on success.
func (e *Engine) RecordOutcome(userID, intentName string, success bool) Award {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.profile(userID)
	award := Award{Level: p.Level, Tier: p.Tier}

	action, hasAction := intentXPActions[intentName]
	if hasAction {
		award.XP = xpRewards[action]
	}
	if success {
		if module, ok := episodes.ModuleForIntent(intentName); ok {
			award.Points = modulePoints[module]
		}
		if hasAction {
			if badge, ok := firstTimeBadges[action]; ok && !p.hasBadge(badge.ID) {
				badge.EarnedAt = time.Now().UTC()
				p.Badges = append(p.Badges, badge)
				award.Badges = append(award.Badges, badge)
			}
		}
	}

	if award.XP == 0 && award.Points == 0 && len(award.Badges) == 0 {
		return award
	}

	p.XP += award.XP
	p.TotalPoints += award.Points
	p.AvailablePoints += award.Points
	p.LastActive = time.Now().UTC()

	newLevel := LevelForXP(p.XP)
	award.LeveledUp = newLevel > p.Level
	p.Level = newLevel
	p.XPToNextLevel = XPToNextLevel(p.XP)

	newTier := TierForLevel(p.Level)
	award.TierChanged = newTier != p.Tier
	p.Tier = newTier

	award.Level = p.Level
	award.Tier = p.Tier

	if hasAction && award.XP > 0 {
		metrics.XPAwarded.WithLabelValues(action).Add(float64(award.XP))
	}
	e.logger.Debug("reward recorded", map[string]interface{}{
		"userId": userID,
		"intent": intentName,
		"xp":     award.XP,
		"points": award.Points,
		"level":  p.Level,
		"tier":   p.Tier,
	})
	return award
}

// AwardPlan awards the session's user for a finished plan. Meant to be
// wired behind the execution progress stream: call it when a plan leaves
// the executing state.
func (e *Engine) AwardPlan(plan models.TodoPlan) Award {
	return e.RecordOutcome(plan.SessionID, plan.Intent.Primary, plan.Status == models.PlanCompleted)
}

// RedeemPoints deducts available points, reporting whether the balance covered it.
func (e *Engine) RedeemPoints(userID string, points int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	p, ok := e.profiles[userID]
	if !ok || points <= 0 || p.AvailablePoints < points {
		return false
	}
	p.AvailablePoints -= points
	return true
}

func (e *Engine) profile(userID string) *Profile {
	p, ok := e.profiles[userID]
	if !ok {
		p = &Profile{
			UserID:        userID,
			Level:         1,
			XPToNextLevel: XPToNextLevel(0),
			Tier:          TierBronze,
		}
		e.profiles[userID] = p
	}
	return p
}

func (p *Profile) hasBadge(id string) bool {
	for _, b := range p.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}
