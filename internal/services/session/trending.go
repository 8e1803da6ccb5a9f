package session

import (
	"math"
	"time"

	"github.com/partyround/gamecore/internal/models"
)

const (
	// trendingSpectatorWeight is the score contributed per spectator
	trendingSpectatorWeight = 2.0

	// trendingSpectatorCap bounds the spectator term so a single huge
	// audience cannot dominate the ranking
	trendingSpectatorCap = 100.0

	// trendingActivityWeight is the score of a session active right now
	trendingActivityWeight = 50.0

	// trendingActivityHalfLife is how long it takes the activity term
	// to halve
	trendingActivityHalfLife = 10 * time.Minute

	// trendingHighlightedBonus rewards sessions surfaced by discovery
	trendingHighlightedBonus = 25.0
)

// trendingScore ranks a session for discovery. It is a pure function of
// session state and the current time: a capped linear spectator term,
// an exponentially decaying recent-activity term, the game type's
// popularity weight, and a fixed bonus for highlighted sessions.
func trendingScore(sess *models.GameSession, now time.Time) float64 {
	spectator := float64(len(sess.Spectators)) * trendingSpectatorWeight
	if spectator > trendingSpectatorCap {
		spectator = trendingSpectatorCap
	}

	idle := now.Sub(sess.LastActivity)
	if idle < 0 {
		idle = 0
	}
	halves := float64(idle) / float64(trendingActivityHalfLife)
	activity := trendingActivityWeight * math.Exp2(-halves)

	score := spectator + activity + models.RulesFor(sess.Config.GameType).PopularityWeight
	if sess.Highlighted {
		score += trendingHighlightedBonus
	}
	return score
}
