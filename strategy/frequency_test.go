package strategy

import (
	"testing"

	"rps/game"

	"github.com/stretchr/testify/require"
)

func TestFrequencyPredict(t *testing.T) {
	t.Run("empty table predicts Rock by tie-break order", func(t *testing.T) {
		f := NewFrequency()
		require.Equal(t, game.Rock, f.Predict(nil))
	})

	t.Run("predicts the most frequent opponent move", func(t *testing.T) {
		f := NewFrequency()
		f.Update(game.Rock, game.Paper)
		f.Update(game.Rock, game.Paper)
		f.Update(game.Rock, game.Scissors)

		require.Equal(t, game.Paper, f.Predict(nil),
			"Should predict the strictly maximal count")
	})

	t.Run("breaks ties by fixed symbol order", func(t *testing.T) {
		f := NewFrequency()
		f.Update(game.Rock, game.Scissors)
		f.Update(game.Rock, game.Paper)

		require.Equal(t, game.Paper, f.Predict(nil),
			"Paper precedes Scissors in the tie-break order")
	})

	t.Run("only the opponent move is counted", func(t *testing.T) {
		f := NewFrequency()
		f.Update(game.Scissors, game.Rock)
		f.Update(game.Scissors, game.Rock)

		require.Equal(t, game.Rock, f.Predict(nil))
	})
}
