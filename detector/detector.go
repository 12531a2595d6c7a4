// Package detector watches the opponent's raw move stream for regime
// shifts: sustained near-uniform behavior that makes previously learned
// statistics worthless.
package detector

import (
	"math"

	"rps/game"
)

const (
	// DefaultWindow is the sliding window length in rounds.
	DefaultWindow = 10
	// DefaultThreshold is in bits; the 3-symbol alphabet tops out at
	// log2(3) ~ 1.585, so this sits just under "statistically uniform".
	DefaultThreshold = 1.5
	// DefaultPatience is the number of consecutive high-entropy windows
	// before a shift is signaled.
	DefaultPatience = 3
)

// Detector accumulates raw opponent moves and signals a regime shift after
// DefaultPatience consecutive high-entropy window evaluations. Windows are
// evaluated once every window rounds, not on every round.
type Detector struct {
	window    int
	threshold float64
	patience  int

	moves  []game.Move
	rounds int
	streak int
}

func New(window int, threshold float64, patience int) *Detector {
	if window <= 0 || patience <= 0 {
		panic("detector window and patience must be positive")
	}
	return &Detector{window: window, threshold: threshold, patience: patience}
}

func NewDefault() *Detector {
	return New(DefaultWindow, DefaultThreshold, DefaultPatience)
}

// Observe appends one raw opponent move and reports whether a regime shift
// fired this round. The round counter is kept modulo window so the
// evaluation cadence cannot drift across resets.
func (d *Detector) Observe(move game.Move) bool {
	d.moves = append(d.moves, move)
	d.rounds++

	if d.rounds%d.window != 0 {
		return false
	}

	if Entropy(d.moves[len(d.moves)-d.window:]) > d.threshold {
		d.streak++
	} else {
		d.streak = 0
	}

	if d.streak < d.patience {
		return false
	}
	d.streak = 0
	d.rounds %= d.window
	return true
}

// Entropy computes the Shannon entropy, in bits, of the empirical move
// distribution over moves. An empty input has entropy 0.
func Entropy(moves []game.Move) float64 {
	if len(moves) == 0 {
		return 0
	}

	var counts [game.NumMoves]int
	for _, m := range moves {
		counts[m]++
	}

	total := float64(len(moves))
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}
