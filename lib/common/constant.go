package common

import "time"

const (
	// Bounds on the global governance tunables. Updates outside of these
	// ranges are rejected.
	MinVotingPeriod   time.Duration = 24 * time.Hour
	MaxVotingPeriod   time.Duration = 30 * 24 * time.Hour
	MinExecutionDelay time.Duration = 24 * time.Hour
	MaxExecutionDelay time.Duration = 7 * 24 * time.Hour

	// MinQuorum is the smallest accepted quorum, one unit of weight.
	MinQuorum Weight = 1

	// MinProposerWeight is the stake a caller must hold to open a proposal,
	// a single unit of weight.
	MinProposerWeight Weight = 1

	// MinVoteDelay keeps the ballot closed right after creation so weight
	// acquired in the same moment as the proposal cannot be front-loaded.
	MinVoteDelay time.Duration = 1 * time.Hour

	// MaxProposals bounds the number of proposals ever created; records can
	// be cleaned up but the sequence itself never rewinds.
	MaxProposals uint64 = 1000
)
