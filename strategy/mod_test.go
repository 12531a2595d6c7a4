package strategy

import (
	"rps/game"

	"golang.org/x/exp/rand"
)

func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// stub always predicts the same move and records forwarded updates.
type stub struct {
	prediction game.Move
	updates    []game.Round
}

func (s *stub) Predict(history game.History) game.Move { return s.prediction }

func (s *stub) Update(own, opponent game.Move) {
	s.updates = append(s.updates, game.Round{Own: own, Opponent: opponent})
}
