package common

import (
	"time"

	"github.com/anunayjoshi29/ethvault/lib/errors"
)

//
// Config carries the process-wide governance tunables and identities. The
// three governance parameters here are the genesis values; once the node has
// run, the persisted parameter record in storage is authoritative and this
// struct only seeds it.
//
type Config struct {
	VotingPeriod   time.Duration
	ExecutionDelay time.Duration
	Quorum         Weight

	// AdminAddress is the single privileged principal; parameter updates
	// and cleanup compare the caller against it by equality.
	AdminAddress string

	// GovernanceAddress is this module's own address; proposals may never
	// target it.
	GovernanceAddress string

	// Those fields are not governance-related
	RateLimitRuleAPI RateLimitRule
}

func NewConfig(adminAddress, governanceAddress string) Config {
	p := Config{}

	p.VotingPeriod = 3 * 24 * time.Hour
	p.ExecutionDelay = 2 * 24 * time.Hour
	p.Quorum = 100 * WeightPerToken
	p.AdminAddress = adminAddress
	p.GovernanceAddress = governanceAddress

	p.RateLimitRuleAPI = NewRateLimitRule(RateLimitAPI)

	return p
}

// Validate checks the governance parameter bounds; the same checks gate
// later parameter updates.
func (p Config) Validate() error {
	return ValidateParameters(p.VotingPeriod, p.ExecutionDelay, p.Quorum)
}

func ValidateParameters(votingPeriod, executionDelay time.Duration, quorum Weight) error {
	if votingPeriod < MinVotingPeriod || votingPeriod > MaxVotingPeriod {
		return errors.InvalidParameters.Clone().SetData("votingPeriod", votingPeriod.String())
	}
	if executionDelay < MinExecutionDelay || executionDelay > MaxExecutionDelay {
		return errors.InvalidParameters.Clone().SetData("executionDelay", executionDelay.String())
	}
	if quorum < MinQuorum {
		return errors.InvalidParameters.Clone().SetData("quorum", quorum)
	}

	return nil
}
