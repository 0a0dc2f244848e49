package staking

import (
	"fmt"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/errors"
	"github.com/anunayjoshi29/ethvault/lib/storage"
)

// StakingAccount tracks the staked balance of one address. The stake is the
// address's live voting weight; the governance engine reads it through the
// `WeightOf` oracle query and never mutates it.
//
// models
//  * 'address'
// 	- 'sa-address-<StakingAccount.Address>': `StakingAccount`

const StakingAccountPrefixAddress string = "sa-address-"

type StakingAccount struct {
	Address string
	Staked  common.Weight
}

func NewStakingAccount(address string, staked common.Weight) *StakingAccount {
	return &StakingAccount{
		Address: address,
		Staked:  staked,
	}
}

func (a *StakingAccount) String() string {
	return string(common.MustMarshalJSON(a))
}

func (a *StakingAccount) Serialize() (encoded []byte, err error) {
	encoded, err = common.EncodeJSONValue(a)
	return
}

func (a *StakingAccount) Deserialize(encoded []byte) (err error) {
	return common.DecodeJSONValue(encoded, a)
}

func (a *StakingAccount) Deposit(amount common.Weight) (err error) {
	var n common.Weight
	if n, err = a.Staked.Add(amount); err != nil {
		return
	}
	a.Staked = n

	return
}

func (a *StakingAccount) Withdraw(amount common.Weight) (err error) {
	var n common.Weight
	if n, err = a.Staked.Sub(amount); err != nil {
		return
	}
	a.Staked = n

	return
}

func (a *StakingAccount) Save(st *storage.LevelDBBackend) (err error) {
	key := GetStakingAccountKey(a.Address)

	var exists bool
	if exists, err = st.Has(key); err != nil {
		return
	}

	if exists {
		err = st.Set(key, a)
	} else {
		err = st.New(key, a)
	}

	return
}

func GetStakingAccountKey(address string) string {
	return fmt.Sprintf("%s%s", StakingAccountPrefixAddress, address)
}

func ExistsStakingAccount(st *storage.LevelDBBackend, address string) (bool, error) {
	return st.Has(GetStakingAccountKey(address))
}

func GetStakingAccount(st *storage.LevelDBBackend, address string) (a *StakingAccount, err error) {
	if err = st.Get(GetStakingAccountKey(address), &a); err != nil {
		if err == errors.StorageRecordDoesNotExist {
			err = errors.StakingAccountDoesNotExist.Clone().SetData("address", address)
		}
		return
	}

	return
}
