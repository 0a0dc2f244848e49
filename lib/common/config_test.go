package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anunayjoshi29/ethvault/lib/common/keypair"
	"github.com/anunayjoshi29/ethvault/lib/errors"
)

func TestNewConfigDefaults(t *testing.T) {
	admin := keypair.Random().Address()
	governance := keypair.Random().Address()

	conf := NewConfig(admin, governance)
	require.NoError(t, conf.Validate())
	require.Equal(t, 3*24*time.Hour, conf.VotingPeriod)
	require.Equal(t, 2*24*time.Hour, conf.ExecutionDelay)
	require.Equal(t, 100*WeightPerToken, conf.Quorum)
	require.Equal(t, admin, conf.AdminAddress)
	require.Equal(t, governance, conf.GovernanceAddress)
}

func TestValidateParametersBounds(t *testing.T) {
	ok := func(vp, ed time.Duration, q Weight) error {
		return ValidateParameters(vp, ed, q)
	}

	require.NoError(t, ok(MinVotingPeriod, MinExecutionDelay, MinQuorum))
	require.NoError(t, ok(MaxVotingPeriod, MaxExecutionDelay, MinQuorum))

	err := ok(MinVotingPeriod-time.Second, MinExecutionDelay, MinQuorum)
	require.Equal(t, errors.InvalidParameters.Code, err.(*errors.Error).Code)

	err = ok(MinVotingPeriod, MaxExecutionDelay+time.Second, MinQuorum)
	require.Equal(t, errors.InvalidParameters.Code, err.(*errors.Error).Code)

	err = ok(MinVotingPeriod, MinExecutionDelay, Weight(0))
	require.Equal(t, errors.InvalidParameters.Code, err.(*errors.Error).Code)
}

func TestIsValidAddress(t *testing.T) {
	require.True(t, IsValidAddress(keypair.Random().Address()))
	require.False(t, IsValidAddress("not-an-address"))
	require.False(t, IsValidAddress(""))
	// a secret seed is not a public address
	require.False(t, IsValidAddress(keypair.Random().Seed()))
}
