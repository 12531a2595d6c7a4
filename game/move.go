package game

import "fmt"

// Move is one of the three symbols in the cyclic dominance relation:
// Paper beats Rock, Scissors beats Paper, Rock beats Scissors.
type Move uint8

const (
	Rock Move = iota
	Paper
	Scissors
	NumMoves = 3
)

// Moves lists every move in the fixed tie-break order.
var Moves = [NumMoves]Move{Rock, Paper, Scissors}

var moveNames = [NumMoves]string{"Rock", "Paper", "Scissors"}

func (m Move) String() string {
	return moveNames[m]
}

// ParseMove accepts a single-character symbol in either case. Empty input
// and anything outside the alphabet is an error.
func ParseMove(s string) (Move, error) {
	switch s {
	case "r", "R":
		return Rock, nil
	case "p", "P":
		return Paper, nil
	case "s", "S":
		return Scissors, nil
	}
	return 0, fmt.Errorf("invalid move %q: want R, P or S", s)
}

// beatenBy[m] is the unique move that beats m.
var beatenBy = [NumMoves]Move{Rock: Paper, Paper: Scissors, Scissors: Rock}

// Counter returns the move that beats m.
func Counter(m Move) Move {
	return beatenBy[m]
}

// Beats reports whether m wins against o.
func (m Move) Beats(o Move) bool {
	return beatenBy[o] == m
}
