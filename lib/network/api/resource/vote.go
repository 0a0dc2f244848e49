package resource

import (
	"strconv"
	"strings"

	"github.com/nvellon/hal"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/governance"
)

type Vote struct {
	cast governance.VoteCast
}

func NewVote(cast governance.VoteCast) *Vote {
	return &Vote{
		cast: cast,
	}
}

func (v Vote) GetMap() hal.Entry {
	return hal.Entry{
		"proposal_id": v.cast.ProposalId,
		"voter":       v.cast.Voter,
		"ballot":      v.cast.Ballot,
		"weight":      v.cast.Weight,
	}
}

func (v Vote) Resource() *hal.Resource {
	r := hal.NewResource(v, v.LinkSelf())
	r.AddLink("voter", hal.NewLink(strings.Replace(URLAccounts, "{id}", v.cast.Voter, -1)))
	return r
}

func (v Vote) LinkSelf() string {
	id := strconv.FormatUint(v.cast.ProposalId, 10)
	return strings.Replace(URLProposalVotes, "{id}", id, -1)
}

func (v Vote) MarshalJSON() ([]byte, error) {
	r := v.Resource()
	return common.JSONMarshalWithoutEscapeHTML(r.GetMap())
}
