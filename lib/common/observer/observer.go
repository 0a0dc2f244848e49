package observer

import (
	"github.com/GianlucaGuarini/go-observable"
)

// ProposalObserver carries proposal lifecycle events (created, executed,
// canceled, cleaned); VoteObserver carries cast votes. Off-chain consumers
// (the API event stream, indexers) subscribe here.
var ProposalObserver = observable.New()
var VoteObserver = observable.New()

const (
	ResourceProposal  = "proposal"
	ResourceVote      = "vote"
	ConditionAll      = "*"
	ConditionCreated  = "created"
	ConditionExecuted = "executed"
	ConditionCanceled = "canceled"
	ConditionCleaned  = "cleaned"
	ConditionVoter    = "voter"
	ConditionProposer = "proposer"
)

type Event struct {
	Resource  string `json:"resource"`
	Condition string `json:"condition"`
	Id        string `json:"id"`
}

func NewEvent(resource, condition, id string) Event {
	return Event{
		Resource:  resource,
		Condition: condition,
		Id:        id,
	}
}

func (e Event) String() string {
	toStr := e.Resource + "-"
	if e.Condition == ConditionAll {
		toStr += e.Condition
	} else {
		toStr += e.Condition
		if len(e.Id) > 0 {
			toStr += "=" + e.Id
		}
	}
	return toStr
}
