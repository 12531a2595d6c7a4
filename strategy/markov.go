package strategy

import (
	"rps/game"

	"golang.org/x/exp/rand"
)

// Markov predicts from first-order transitions between consecutive opponent
// moves. Every cell starts at 1 (Laplace smoothing) and only ever grows.
type Markov struct {
	transitions [game.NumMoves][game.NumMoves]int
	prev        game.Move
	hasPrev     bool
	rng         *rand.Rand
}

func NewMarkov(rng *rand.Rand) *Markov {
	m := &Markov{rng: rng}
	for i := range m.transitions {
		for j := range m.transitions[i] {
			m.transitions[i][j] = 1
		}
	}
	return m
}

func (m *Markov) Predict(history game.History) game.Move {
	if !m.hasPrev {
		return randomMove(m.rng)
	}
	return argmax(m.transitions[m.prev])
}

func (m *Markov) Update(own, opponent game.Move) {
	if m.hasPrev {
		m.transitions[m.prev][opponent]++
	}
	m.prev = opponent
	m.hasPrev = true
}
