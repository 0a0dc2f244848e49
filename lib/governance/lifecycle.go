package governance

import (
	"time"
)

// State is the derived status of a proposal. It is a pure projection of the
// stored record, the global parameters and the clock; it is recomputed on
// every query and never written back, so parameter changes and the passage
// of time are immediately consistent for every proposal.
type State string

const (
	StateActive    State = "ACTIVE"
	StateDefeated  State = "DEFEATED"
	StateSucceeded State = "SUCCEEDED"
	StateExecuted  State = "EXECUTED"
	StateExpired   State = "EXPIRED"
	StateCanceled  State = "CANCELED"
)

func (s State) String() string {
	return string(s)
}

// IsTerminal reports whether no further transition is possible from s.
func (s State) IsTerminal() bool {
	switch s {
	case StateExecuted, StateExpired, StateCanceled:
		return true
	}
	return false
}

// DeriveState applies the lifecycle precedence:
//
//  1. canceled and executed are permanent, whatever the clock says
//  2. expiry is checked before activity, so a proposal can never report
//     `ACTIVE` past its absolute deadline
//  3. `SUCCEEDED` is only reachable after the voting window closes and
//     before the execution deadline; only FOR-side weight counts toward
//     quorum
func DeriveState(p *Proposal, params *Parameters, now time.Time) State {
	if p.Canceled {
		return StateCanceled
	}
	if p.Executed {
		return StateExecuted
	}

	created := p.CreatedTime()
	votingDeadline := created.Add(params.VotingPeriod)
	executionDeadline := votingDeadline.Add(params.ExecutionDelay)

	if now.After(executionDeadline) {
		return StateExpired
	}
	if !now.After(votingDeadline) {
		return StateActive
	}
	if p.VotesFor > p.VotesAgainst && p.VotesFor >= params.Quorum {
		return StateSucceeded
	}

	return StateDefeated
}
