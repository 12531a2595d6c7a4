package strategy

import "rps/game"

// Frequency predicts the opponent's most frequently observed move.
type Frequency struct {
	counts [game.NumMoves]int
}

func NewFrequency() *Frequency {
	return &Frequency{}
}

func (f *Frequency) Predict(history game.History) game.Move {
	// An empty table predicts Rock by the fixed tie-break order.
	return argmax(f.counts)
}

func (f *Frequency) Update(own, opponent game.Move) {
	f.counts[opponent]++
}
