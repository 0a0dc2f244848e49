package resource

import (
	"strconv"
	"strings"

	"github.com/nvellon/hal"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/governance"
)

// Proposal renders a proposal record together with its lifecycle state;
// the state is derived by the caller at request time, never read from
// storage.
type Proposal struct {
	p     *governance.Proposal
	state governance.State
}

func NewProposal(p *governance.Proposal, state governance.State) *Proposal {
	return &Proposal{
		p:     p,
		state: state,
	}
}

func (p Proposal) GetMap() hal.Entry {
	return hal.Entry{
		"id":            p.p.Id,
		"proposer":      p.p.Proposer,
		"description":   p.p.Description,
		"target":        p.p.Target,
		"call_data":     p.p.CallData,
		"payload_hash":  p.p.PayloadHash,
		"created":       p.p.Created,
		"votes_for":     p.p.VotesFor,
		"votes_against": p.p.VotesAgainst,
		"state":         p.state,
		"executed":      p.p.Executed,
		"canceled":      p.p.Canceled,
	}
}

func (p Proposal) Resource() *hal.Resource {
	id := strconv.FormatUint(p.p.Id, 10)

	r := hal.NewResource(p, p.LinkSelf())
	r.AddLink("state", hal.NewLink(strings.Replace(URLProposalState, "{id}", id, -1)))
	r.AddLink("votes", hal.NewLink(strings.Replace(URLProposalVotes, "{id}", id, -1)))
	r.AddLink("proposer", hal.NewLink(strings.Replace(URLAccounts, "{id}", p.p.Proposer, -1)))
	return r
}

func (p Proposal) LinkSelf() string {
	return strings.Replace(URLProposal, "{id}", strconv.FormatUint(p.p.Id, 10), -1)
}

func (p Proposal) MarshalJSON() ([]byte, error) {
	r := p.Resource()
	return common.JSONMarshalWithoutEscapeHTML(r.GetMap())
}
