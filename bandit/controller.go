// Package bandit implements a contextual UCB1 controller over a fixed
// roster of strategies. Statistics are partitioned by a fingerprint of the
// most recent rounds so selection can specialize to short-lived opponent
// patterns instead of a single global policy.
package bandit

import (
	"math"

	"rps/game"
)

// contextSize is the number of trailing rounds in a context fingerprint.
const contextSize = 3

// cSquared is the squared exploration coefficient: the score is
// q/n + sqrt(cSquared*ln(N)/n), i.e. an exploration bonus of 2*sqrt(ln(N)/n).
const cSquared = 4.0

// Context is the comparable fingerprint of the last contextSize rounds.
// Histories shorter than contextSize map to the zero-value sentinel.
type Context struct {
	rounds [contextSize]game.Round
	known  bool
}

// ContextOf derives the lookup key for a history.
func ContextOf(history game.History) Context {
	if len(history) < contextSize {
		return Context{}
	}
	var ctx Context
	copy(ctx.rounds[:], history[len(history)-contextSize:])
	ctx.known = true
	return ctx
}

type arm struct {
	rewards float64
	pulls   int
}

// Controller owns per-context arm statistics and picks the arm with the
// highest UCB1 score each round. A regime shift discards the instance
// wholesale; there is no in-place clearing.
type Controller struct {
	arms     int
	contexts map[Context][]arm
}

// NewController panics with fewer than two arms: the exploration term needs
// ln(total pulls) > 0 on the very first selection, which the seeded pull
// counts only guarantee from two arms up.
func NewController(arms int) *Controller {
	if arms < 2 {
		panic("controller needs at least two arms")
	}
	return &Controller{
		arms:     arms,
		contexts: make(map[Context][]arm),
	}
}

// stats returns the context's arms, creating them on first sight. Pull
// counts are seeded at 1, not 0, to keep the confidence term defined.
func (c *Controller) stats(ctx Context) []arm {
	stats, ok := c.contexts[ctx]
	if !ok {
		stats = make([]arm, c.arms)
		for i := range stats {
			stats[i].pulls = 1
		}
		c.contexts[ctx] = stats
	}
	return stats
}

// Select returns the index of the arm with the highest UCB1 score for the
// history's context, ties broken by lowest index.
func (c *Controller) Select(history game.History) int {
	stats := c.stats(ContextOf(history))

	total := 0
	for _, a := range stats {
		total += a.pulls
	}
	normalizer := cSquared * math.Log(float64(total))

	best := 0
	bestScore := math.Inf(-1)
	for i, a := range stats {
		if score := ucb1(a.rewards, a.pulls, normalizer); score > bestScore {
			bestScore = score
			best = i
		}
	}
	return best
}

// Update credits reward to the arm selected for the history's context.
func (c *Controller) Update(history game.History, index int, reward float64) {
	stats := c.stats(ContextOf(history))
	stats[index].rewards += reward
	stats[index].pulls++
}

// Pulls reports the per-arm pull counts recorded for the history's context,
// or nil when the context has never been seen. Lookup only; unlike stats it
// never creates statistics.
func (c *Controller) Pulls(history game.History) []int {
	stats, ok := c.contexts[ContextOf(history)]
	if !ok {
		return nil
	}
	pulls := make([]int, len(stats))
	for i, a := range stats {
		pulls[i] = a.pulls
	}
	return pulls
}

func ucb1(rewards float64, pulls int, c2LnN float64) float64 {
	if pulls == 0 { // Prevent division by zero
		panic("cannot compute UCB1: 0 pulls")
	}

	return rewards/float64(pulls) + math.Sqrt(c2LnN/float64(pulls))
}
