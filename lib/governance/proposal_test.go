package governance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anunayjoshi29/ethvault/lib/common/keypair"
	"github.com/anunayjoshi29/ethvault/lib/errors"
	"github.com/anunayjoshi29/ethvault/lib/storage"
)

func TestSaveNewProposal(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	created := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewProposal(0, keypair.Random().Address(), "showme", keypair.Random().Address(), []byte("payload"), created)
	require.NoError(t, p.Save(st))

	exists, err := ExistsProposal(st, 0)
	require.NoError(t, err)
	require.True(t, exists)

	fetched, err := GetProposal(st, 0)
	require.NoError(t, err)
	require.Equal(t, p.Proposer, fetched.Proposer)
	require.Equal(t, p.PayloadHash, fetched.PayloadHash)
	require.Equal(t, []byte("payload"), fetched.CallData)
	require.True(t, created.Equal(fetched.CreatedTime()))
}

func TestSaveExistingProposal(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	created := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewProposal(0, keypair.Random().Address(), "showme", keypair.Random().Address(), nil, created)
	require.NoError(t, p.Save(st))

	voter := keypair.Random().Address()
	p.Votes[voter] = BallotFor
	p.VotesFor = 100
	require.NoError(t, p.Save(st))

	fetched, err := GetProposal(st, 0)
	require.NoError(t, err)
	require.Equal(t, BallotFor, fetched.BallotOf(voter))
	require.Equal(t, BallotNone, fetched.BallotOf(keypair.Random().Address()))
}

func TestRemoveProposalErasesBallots(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	created := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewProposal(3, keypair.Random().Address(), "showme", keypair.Random().Address(), nil, created)
	p.Votes[keypair.Random().Address()] = BallotAgainst
	require.NoError(t, p.Save(st))

	require.NoError(t, RemoveProposal(st, 3))

	_, err := GetProposal(st, 3)
	require.Equal(t, errors.InvalidProposalId.Code, err.(*errors.Error).Code)

	err = RemoveProposal(st, 3)
	require.Equal(t, errors.InvalidProposalId.Code, err.(*errors.Error).Code)
}

func TestGetProposalsByCreated(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	created := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := uint64(0); i < 12; i++ {
		p := NewProposal(i, keypair.Random().Address(), "showme", keypair.Random().Address(), nil, created)
		require.NoError(t, p.Save(st))
	}

	var ids []uint64
	iterFunc, closeFunc := GetProposalsByCreated(st, storage.NewDefaultListOptions(false, nil, 0))
	for {
		p, hasNext := iterFunc()
		if !hasNext {
			break
		}
		ids = append(ids, p.Id)
	}
	closeFunc()

	require.Equal(t, 12, len(ids))
	for i, id := range ids {
		require.Equal(t, uint64(i), id)
	}
}

func TestProposalSequence(t *testing.T) {
	st := storage.NewTestStorage()
	defer st.Close()

	n, err := GetProposalSequence(st)
	require.NoError(t, err)
	require.Equal(t, uint64(0), n)

	require.NoError(t, SetProposalSequence(st, 5))

	n, err = GetProposalSequence(st)
	require.NoError(t, err)
	require.Equal(t, uint64(5), n)
}
