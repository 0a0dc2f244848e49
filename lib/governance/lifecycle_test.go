package governance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anunayjoshi29/ethvault/lib/common/keypair"
)

func testMakeLifecycleProposal(created time.Time) *Proposal {
	kp := keypair.Random()
	target := keypair.Random()

	return NewProposal(0, kp.Address(), "raise the reward pool", target.Address(), []byte(`{"ratio": 2}`), created)
}

func TestDeriveStateActiveWindow(t *testing.T) {
	created := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	params := NewParameters(3*24*time.Hour, 2*24*time.Hour, 100)
	p := testMakeLifecycleProposal(created)

	require.Equal(t, StateActive, DeriveState(p, params, created))
	require.Equal(t, StateActive, DeriveState(p, params, created.Add(2*time.Hour)))
	require.Equal(t, StateActive, DeriveState(p, params, created.Add(3*24*time.Hour)))

	// one second past the voting deadline the window is closed
	require.NotEqual(t, StateActive, DeriveState(p, params, created.Add(3*24*time.Hour+time.Second)))
}

func TestDeriveStateSucceededOnlyAfterVoting(t *testing.T) {
	created := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	params := NewParameters(3*24*time.Hour, 2*24*time.Hour, 100)
	p := testMakeLifecycleProposal(created)
	p.VotesFor = 150

	// cannot succeed during active voting, whatever the tally says
	require.Equal(t, StateActive, DeriveState(p, params, created.Add(2*time.Hour)))

	require.Equal(t, StateSucceeded, DeriveState(p, params, created.Add(3*24*time.Hour+time.Second)))
	require.Equal(t, StateExpired, DeriveState(p, params, created.Add(5*24*time.Hour+time.Second)))
}

func TestDeriveStateQuorumCountsOnlyForSide(t *testing.T) {
	created := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	params := NewParameters(3*24*time.Hour, 2*24*time.Hour, 100)
	afterVoting := created.Add(3*24*time.Hour + time.Second)

	{ // majority but below quorum
		p := testMakeLifecycleProposal(created)
		p.VotesFor = 99
		require.Equal(t, StateDefeated, DeriveState(p, params, afterVoting))
	}

	{ // quorum met but no majority
		p := testMakeLifecycleProposal(created)
		p.VotesFor = 100
		p.VotesAgainst = 100
		require.Equal(t, StateDefeated, DeriveState(p, params, afterVoting))
	}

	{ // quorum met on the FOR side and a strict majority
		p := testMakeLifecycleProposal(created)
		p.VotesFor = 100
		p.VotesAgainst = 99
		require.Equal(t, StateSucceeded, DeriveState(p, params, afterVoting))
	}
}

func TestDeriveStatePrecedence(t *testing.T) {
	created := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	params := NewParameters(3*24*time.Hour, 2*24*time.Hour, 100)
	longAfter := created.Add(365 * 24 * time.Hour)

	{ // canceled wins over everything, even past expiry
		p := testMakeLifecycleProposal(created)
		p.Canceled = true
		p.Executed = true
		require.Equal(t, StateCanceled, DeriveState(p, params, longAfter))
	}

	{ // executed wins over expiry
		p := testMakeLifecycleProposal(created)
		p.Executed = true
		require.Equal(t, StateExecuted, DeriveState(p, params, longAfter))
	}

	{ // expiry wins over activity and tallies
		p := testMakeLifecycleProposal(created)
		p.VotesFor = 1000
		require.Equal(t, StateExpired, DeriveState(p, params, longAfter))
	}
}

func TestDeriveStateIsPure(t *testing.T) {
	created := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	params := NewParameters(3*24*time.Hour, 2*24*time.Hour, 100)
	p := testMakeLifecycleProposal(created)
	p.VotesFor = 150

	now := created.Add(4 * 24 * time.Hour)
	first := DeriveState(p, params, now)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, DeriveState(p, params, now))
	}
}

func TestDeriveStateFollowsParameterChanges(t *testing.T) {
	created := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	p := testMakeLifecycleProposal(created)
	p.VotesFor = 150

	now := created.Add(2 * 24 * time.Hour)

	// with a 3 day voting period the proposal is still active
	require.Equal(t, StateActive, DeriveState(p, NewParameters(3*24*time.Hour, 2*24*time.Hour, 100), now))

	// shrinking the period to 1 day retroactively closes the window
	require.Equal(t, StateSucceeded, DeriveState(p, NewParameters(24*time.Hour, 2*24*time.Hour, 100), now))

	// raising the quorum past the tally defeats it
	require.Equal(t, StateDefeated, DeriveState(p, NewParameters(24*time.Hour, 2*24*time.Hour, 200), now))
}

func TestStateIsTerminal(t *testing.T) {
	require.True(t, StateExecuted.IsTerminal())
	require.True(t, StateExpired.IsTerminal())
	require.True(t, StateCanceled.IsTerminal())
	require.False(t, StateActive.IsTerminal())
	require.False(t, StateDefeated.IsTerminal())
	require.False(t, StateSucceeded.IsTerminal())
}
