// Package engine drives the round loop: pick a strategy through the bandit,
// counter its prediction, exchange moves with the opponent, then feed the
// outcome back into every learner.
package engine

import (
	"fmt"
	"io"
	"os"
	"time"

	"rps/bandit"
	"rps/detector"
	"rps/game"
	"rps/strategy"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// DefaultBluffRate is the chance of playing a uniformly random move instead
// of the computed counter, so an opponent who infers the predictor cannot
// exploit it outright.
const DefaultBluffRate = 0.05

// Opponent supplies one move per round. ok == false ends the session; it is
// a deliberate exit, not an error.
type Opponent interface {
	NextMove() (move game.Move, ok bool)
}

// OpponentFunc adapts a plain function to the Opponent interface.
type OpponentFunc func() (game.Move, bool)

func (f OpponentFunc) NextMove() (game.Move, bool) { return f() }

// Scoreboard tracks session bookkeeping. Wins counts rounds the system won.
type Scoreboard struct {
	Rounds int
	Wins   int
	Losses int
	Draws  int
}

// Ratio is the system's win ratio over all rounds played so far.
func (s Scoreboard) Ratio() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Rounds)
}

type Option func(e *Engine)

func WithBluffRate(rate float64) Option {
	return func(e *Engine) {
		if rate >= 0 && rate <= 1 {
			e.bluffRate = rate
		}
	}
}

// WithMaxRounds makes the round limit a hard stop. Zero keeps the session
// unbounded until the opponent ends it.
func WithMaxRounds(rounds int) Option {
	return func(e *Engine) {
		if rounds > 0 {
			e.maxRounds = rounds
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		if seed != 0 {
			e.rng = rand.New(rand.NewSource(seed))
		}
	}
}

func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = w
		}
	}
}

func WithDetector(d *detector.Detector) Option {
	return func(e *Engine) {
		if d != nil {
			e.detector = d
		}
	}
}

// Engine owns all mutable state of a session. A single round-processing
// path is the only writer, so nothing here needs locking.
type Engine struct {
	strategies []strategy.Strategy
	controller *bandit.Controller
	detector   *detector.Detector
	history    game.History
	rng        *rand.Rand
	bluffRate  float64
	maxRounds  int
	out        io.Writer
	score      Scoreboard
}

func New(options ...Option) *Engine {
	e := &Engine{ // Default values
		bluffRate: DefaultBluffRate,
		detector:  detector.NewDefault(),
		rng:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		out:       os.Stdout,
	}
	for _, option := range options {
		option(e)
	}

	// The ensemble holds the same instances the bandit can pick on their
	// own, so forwarded updates advance shared statistics.
	frequency := strategy.NewFrequency()
	markov := strategy.NewMarkov(e.rng)
	mirror := strategy.NewMirror(e.rng)
	e.strategies = []strategy.Strategy{
		frequency,
		markov,
		mirror,
		strategy.NewVote(frequency, markov, mirror),
	}
	e.controller = bandit.NewController(len(e.strategies))
	return e
}

// Run plays rounds against the opponent until it ends the session or the
// round limit is reached, and returns the final scoreboard.
func (e *Engine) Run(opponent Opponent) Scoreboard {
	for e.maxRounds == 0 || e.score.Rounds < e.maxRounds {
		if !e.playRound(opponent) {
			break
		}
	}

	log.Info().
		Int("rounds", e.score.Rounds).
		Int("wins", e.score.Wins).
		Int("losses", e.score.Losses).
		Int("draws", e.score.Draws).
		Msg("session over")
	return e.score
}

func (e *Engine) playRound(opponent Opponent) bool {
	index := e.controller.Select(e.history)
	predicted := e.strategies[index].Predict(e.history)
	own := e.counterMove(predicted)

	opponentMove, ok := opponent.NextMove()
	if !ok {
		return false
	}

	if e.detector.Observe(opponentMove) {
		// Discard the old controller wholesale; this round's reward
		// already lands in the fresh statistics.
		log.Info().Int("round", e.score.Rounds+1).Msg("regime shift: resetting bandit")
		e.controller = bandit.NewController(len(e.strategies))
	}

	reward := game.Reward(own, opponentMove)
	e.controller.Update(e.history, index, reward)
	for _, s := range e.strategies {
		s.Update(own, opponentMove)
	}
	e.history = append(e.history, game.Round{Own: own, Opponent: opponentMove})

	e.score.Rounds++
	var result string
	switch {
	case reward > 0:
		e.score.Wins++
		result = "AI wins!"
	case reward < 0:
		e.score.Losses++
		result = "You win!"
	default:
		e.score.Draws++
		result = "Draw!"
	}

	fmt.Fprintf(e.out, "You: %s, AI: %s, %s Ratio: %.1f%%\n",
		opponentMove, own, result, e.score.Ratio()*100)
	return true
}

// counterMove beats the predicted move, except for the occasional bluff.
func (e *Engine) counterMove(predicted game.Move) game.Move {
	if e.rng.Float64() < e.bluffRate {
		return game.Move(e.rng.Intn(game.NumMoves))
	}
	return game.Counter(predicted)
}
