package metrics

const (
	Namespace           = "ethvault"
	GovernanceSubsystem = "governance"
	APISubsystem        = "api"
)
