package game

import (
	"time"

	"github.com/google/uuid"
)

const maxScoreHistory = 200 // Scores kept for the session history

// GameStats tracks per-session results across rounds. Nothing here is
// persisted; high-score storage is deliberately out of scope.
type GameStats struct {
	RoundID      uuid.UUID
	StartedAt    time.Time
	EndedAt      time.Time
	RoundsPlayed int
	SessionHigh  int
	Scores       []int
}

func newGameStats() *GameStats {
	return &GameStats{
		Scores: make([]int, 0, maxScoreHistory),
	}
}

// beginRound stamps a fresh round identity.
func (gs *GameStats) beginRound() {
	gs.RoundID = uuid.New()
	gs.StartedAt = time.Now()
	gs.EndedAt = time.Time{}
}

// endRound records the final score of a finished round.
func (gs *GameStats) endRound(score int) {
	gs.EndedAt = time.Now()
	gs.RoundsPlayed++
	if score > gs.SessionHigh {
		gs.SessionHigh = score
	}
	if len(gs.Scores) >= maxScoreHistory {
		gs.Scores = gs.Scores[1:]
	}
	gs.Scores = append(gs.Scores, score)
}
