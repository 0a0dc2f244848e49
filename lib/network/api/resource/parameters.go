package resource

import (
	"github.com/nvellon/hal"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/governance"
)

type Parameters struct {
	p *governance.Parameters
}

func NewParameters(p *governance.Parameters) *Parameters {
	return &Parameters{
		p: p,
	}
}

func (p Parameters) GetMap() hal.Entry {
	return hal.Entry{
		"voting_period":   p.p.VotingPeriod.String(),
		"execution_delay": p.p.ExecutionDelay.String(),
		"quorum":          p.p.Quorum,
	}
}

func (p Parameters) Resource() *hal.Resource {
	return hal.NewResource(p, p.LinkSelf())
}

func (p Parameters) LinkSelf() string {
	return URLParameters
}

func (p Parameters) MarshalJSON() ([]byte, error) {
	r := p.Resource()
	return common.JSONMarshalWithoutEscapeHTML(r.GetMap())
}
