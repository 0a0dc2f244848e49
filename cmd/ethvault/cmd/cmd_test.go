package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/common/keypair"
)

func TestParseFlagsNode(t *testing.T) {
	flagKPSecretSeed = keypair.Random().Seed()
	flagAdmin = keypair.Random().Address()
	flagEndpointString = "http://localhost:12345"
	flagStorageConfigString = "memory://"
	flagVotingPeriod = "96h"
	flagQuorum = "2000000000"

	parseFlagsNode()

	require.NotNil(t, kp)
	require.NotNil(t, nodeEndpoint)
	require.Equal(t, "memory", storageConfig.Scheme)
	require.Equal(t, 96*time.Hour, votingPeriod)
	require.Equal(t, 48*time.Hour, executionDelay)
	require.Equal(t, common.Weight(2000000000), quorum)
}
