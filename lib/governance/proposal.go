package governance

import (
	"fmt"
	"time"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/errors"
	"github.com/anunayjoshi29/ethvault/lib/storage"
)

// Ballot is a single voter's recorded choice. The zero value means the
// address never voted; an address transitions away from it at most once.
type Ballot string

const (
	BallotNone    Ballot = ""
	BallotFor     Ballot = "FOR"
	BallotAgainst Ballot = "AGAINST"
)

// Proposal is the persisted proposal record. The storage should support,
//  * find by `Id`
//  * get list by id order; ids are monotonic, so id order is creation order
//
// models
//  * 'proposal'
// 	- 'gp-proposal-<zero-padded Proposal.Id>': `Proposal`
//  * 'sequence'
// 	- 'gp-sequence': next id, never decremented
//
// The per-voter ballot table is embedded in the record itself, so removing
// the record drops every vote with it as one unit.

const ProposalPrefix string = "gp-proposal-"
const ProposalSequenceKey string = "gp-sequence"

type Proposal struct {
	Id           uint64
	Proposer     string
	Description  string
	Target       string
	CallData     []byte
	PayloadHash  string
	Created      string
	VotesFor     common.Weight
	VotesAgainst common.Weight
	Executed     bool
	Canceled     bool
	Votes        map[string]Ballot
}

func NewProposal(id uint64, proposer, description, target string, callData []byte, created time.Time) *Proposal {
	return &Proposal{
		Id:          id,
		Proposer:    proposer,
		Description: description,
		Target:      target,
		CallData:    callData,
		PayloadHash: common.MakeObjectHashString(callData),
		Created:     common.FormatISO8601(created),
		Votes:       map[string]Ballot{},
	}
}

func (p *Proposal) String() string {
	return string(common.MustMarshalJSON(p))
}

func (p *Proposal) Serialize() (encoded []byte, err error) {
	encoded, err = common.EncodeJSONValue(p)
	return
}

func (p *Proposal) Deserialize(encoded []byte) (err error) {
	return common.DecodeJSONValue(encoded, p)
}

// CreatedTime parses back the timestamp this process serialized.
func (p *Proposal) CreatedTime() time.Time {
	return common.MustParseISO8601(p.Created)
}

// BallotOf returns the recorded choice of address, `BallotNone` if it never
// voted.
func (p *Proposal) BallotOf(address string) Ballot {
	if p.Votes == nil {
		return BallotNone
	}
	return p.Votes[address]
}

func (p *Proposal) Save(st *storage.LevelDBBackend) (err error) {
	key := GetProposalKey(p.Id)

	var exists bool
	if exists, err = st.Has(key); err != nil {
		return
	}

	if exists {
		err = st.Set(key, p)
	} else {
		err = st.New(key, p)
	}

	return
}

func GetProposalKey(id uint64) string {
	return fmt.Sprintf("%s%010d", ProposalPrefix, id)
}

func ExistsProposal(st *storage.LevelDBBackend, id uint64) (bool, error) {
	return st.Has(GetProposalKey(id))
}

func GetProposal(st *storage.LevelDBBackend, id uint64) (p *Proposal, err error) {
	if err = st.Get(GetProposalKey(id), &p); err != nil {
		if err == errors.StorageRecordDoesNotExist {
			err = errors.InvalidProposalId.Clone().SetData("id", id)
		}
		return
	}

	return
}

// RemoveProposal erases the record, ballot table included. The id is never
// reassigned; the sequence record is untouched.
func RemoveProposal(st *storage.LevelDBBackend, id uint64) (err error) {
	if err = st.Remove(GetProposalKey(id)); err != nil {
		if err == errors.StorageRecordDoesNotExist {
			err = errors.InvalidProposalId.Clone().SetData("id", id)
		}
		return
	}

	return
}

func GetProposalsByCreated(st *storage.LevelDBBackend, options storage.ListOptions) (func() (*Proposal, bool), func()) {
	iterFunc, closeFunc := st.GetIterator(ProposalPrefix, options)

	return (func() (*Proposal, bool) {
			item, hasNext := iterFunc()
			if !hasNext {
				return nil, false
			}

			var p *Proposal
			common.MustUnmarshalJSON(item.Value, &p)
			return p, hasNext
		}), (func() {
			closeFunc()
		})
}

// GetProposalSequence returns the number of proposals ever created; the next
// allocated id equals it.
func GetProposalSequence(st *storage.LevelDBBackend) (n uint64, err error) {
	var exists bool
	if exists, err = st.Has(ProposalSequenceKey); err != nil || !exists {
		return 0, err
	}

	if err = st.Get(ProposalSequenceKey, &n); err != nil {
		return
	}

	return
}

func SetProposalSequence(st *storage.LevelDBBackend, n uint64) (err error) {
	var exists bool
	if exists, err = st.Has(ProposalSequenceKey); err != nil {
		return
	}

	if exists {
		err = st.Set(ProposalSequenceKey, n)
	} else {
		err = st.New(ProposalSequenceKey, n)
	}

	return
}
