package strategy

import (
	"rps/game"

	"golang.org/x/exp/rand"
)

// Strategy predicts the opponent's next move from the round history and
// learns from each observed outcome. Implementations never fail; side
// effects stay inside their own statistics.
type Strategy interface {
	Predict(history game.History) game.Move
	Update(own, opponent game.Move)
}

// argmax returns the move with the highest count, ties broken by the fixed
// symbol order R, P, S (first maximum wins).
func argmax(counts [game.NumMoves]int) game.Move {
	best := game.Moves[0]
	for _, m := range game.Moves[1:] {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best
}

func randomMove(rng *rand.Rand) game.Move {
	return game.Move(rng.Intn(game.NumMoves))
}
