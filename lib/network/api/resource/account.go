package resource

import (
	"strings"

	"github.com/nvellon/hal"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/staking"
)

type Account struct {
	sa *staking.StakingAccount
}

func NewAccount(sa *staking.StakingAccount) *Account {
	return &Account{
		sa: sa,
	}
}

func (a Account) GetMap() hal.Entry {
	return hal.Entry{
		"address": a.sa.Address,
		"staked":  a.sa.Staked,
	}
}

func (a Account) Resource() *hal.Resource {
	r := hal.NewResource(a, a.LinkSelf())
	r.AddLink("proposals", hal.NewLink(URLProposals+"{?reverse,cursor,limit}", hal.LinkAttr{"templated": true}))
	return r
}

func (a Account) LinkSelf() string {
	return strings.Replace(URLAccounts, "{id}", a.sa.Address, -1)
}

func (a Account) MarshalJSON() ([]byte, error) {
	r := a.Resource()
	return common.JSONMarshalWithoutEscapeHTML(r.GetMap())
}
