package strategy

import (
	"testing"

	"rps/game"

	"github.com/stretchr/testify/require"
)

func TestMirrorPredict(t *testing.T) {
	t.Run("returns a valid move on empty history", func(t *testing.T) {
		m := NewMirror(newTestRNG())
		got := m.Predict(nil)
		require.Less(t, uint8(got), uint8(game.NumMoves))
	})

	t.Run("repeats the opponent's last move", func(t *testing.T) {
		m := NewMirror(newTestRNG())
		history := game.History{
			{Own: game.Rock, Opponent: game.Paper},
			{Own: game.Paper, Opponent: game.Scissors},
		}

		require.Equal(t, game.Scissors, m.Predict(history),
			"Should return the opponent component of the last round")
	})

	t.Run("update is a no-op", func(t *testing.T) {
		m := NewMirror(newTestRNG())
		history := game.History{{Own: game.Rock, Opponent: game.Rock}}

		m.Update(game.Paper, game.Scissors)

		require.Equal(t, game.Rock, m.Predict(history),
			"Updates should not change predictions")
	})
}
