package game

const (
	Win  = 1.0
	Draw = 0.0
	Loss = -Win
)

// Round records one completed exchange of moves.
type Round struct {
	Own      Move
	Opponent Move
}

// History is the append-only sequence of completed rounds. It is only ever
// grown, one round at a time; readers take windows by slicing.
type History []Round

// Reward scores own against opponent from the system's perspective.
// It is antisymmetric: Reward(a, b) == -Reward(b, a).
func Reward(own, opponent Move) float64 {
	switch {
	case own == opponent:
		return Draw
	case own.Beats(opponent):
		return Win
	}
	return Loss
}
