// Package engine drives games between prepared agents, either one at a
// time or as a seeded series.
package engine

import (
	"github.com/google/uuid"
)

// GameStats summarizes one finished game.
type GameStats struct {
	ID    uuid.UUID
	Score int
	Win   bool
	Ticks int
	Moves int
}

// SeriesStats aggregates the outcomes of a series of games.
type SeriesStats struct {
	Games []GameStats
	Wins  int
	Score int
}

// Merge folds one finished game into the series.
func (s *SeriesStats) Merge(stats GameStats) {
	s.Games = append(s.Games, stats)
	if stats.Win {
		s.Wins++
	}
	s.Score += stats.Score
}

// AverageScore returns the mean score over the played games.
func (s *SeriesStats) AverageScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}
	return float64(s.Score) / float64(len(s.Games))
}
