package strategy

import (
	"rps/game"

	"golang.org/x/exp/rand"
)

// Mirror predicts that the opponent repeats their last move.
type Mirror struct {
	rng *rand.Rand
}

func NewMirror(rng *rand.Rand) *Mirror {
	return &Mirror{rng: rng}
}

func (m *Mirror) Predict(history game.History) game.Move {
	if len(history) == 0 {
		return randomMove(m.rng)
	}
	return history[len(history)-1].Opponent
}

func (m *Mirror) Update(own, opponent game.Move) {}
