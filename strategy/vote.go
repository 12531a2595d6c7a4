package strategy

import "rps/game"

// Vote predicts by plurality vote over a fixed member list. Members are
// shared references, not copies: the same instances are selectable on their
// own by the bandit, and forwarding updates keeps them learning every round
// even when the ensemble itself was not the selected strategy.
type Vote struct {
	members []Strategy
}

func NewVote(members ...Strategy) *Vote {
	return &Vote{members: members}
}

func (v *Vote) Predict(history game.History) game.Move {
	var tally [game.NumMoves]int
	for _, m := range v.members {
		tally[m.Predict(history)]++
	}
	return argmax(tally)
}

func (v *Vote) Update(own, opponent game.Move) {
	for _, m := range v.members {
		m.Update(own, opponent)
	}
}
