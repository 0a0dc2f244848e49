package errors

var (
	// storage
	StorageCoreError           = NewError(100, "storage error")
	StorageRecordDoesNotExist  = NewError(101, "record does not exist in storage")
	StorageRecordAlreadyExists = NewError(102, "record already exists in storage")

	// weight accounting
	MaximumWeightReached        = NewError(110, "voting weight exceeds the maximum supply")
	WeightUnderflow             = NewError(111, "voting weight would underflow")
	StakingAccountDoesNotExist  = NewError(112, "staking account does not exist")
	StakingAccountAlreadyExists = NewError(113, "staking account already exists")

	// access
	Unauthorized       = NewError(120, "not authorized for this operation")
	InsufficientWeight = NewError(121, "caller does not hold enough voting weight")
	NoVotingPower      = NewError(122, "caller has no voting power")

	// proposal state
	ProposalNotActive = NewError(130, "proposal is not in the active voting window")
	NotSucceeded      = NewError(131, "proposal has not succeeded")
	AlreadyVoted      = NewError(132, "caller already voted on this proposal")
	AlreadyExecuted   = NewError(133, "proposal is already executed")
	AlreadyCanceled   = NewError(134, "proposal is already canceled")
	NotFinished       = NewError(135, "proposal is not in a terminal state")
	ProposalExpired   = NewError(136, "proposal execution window has passed")
	VotingTooEarly    = NewError(137, "voting has not opened for this proposal yet")

	// input
	InvalidTarget            = NewError(140, "invalid target address")
	SelfTarget               = NewError(141, "target must not be the governance address")
	InvalidProposalId        = NewError(142, "no proposal with this id")
	ProposalCapacityExceeded = NewError(143, "maximum number of proposals reached")
	InvalidParameters        = NewError(144, "governance parameters out of bounds")
	BadRequestParameter      = NewError(145, "request parameter is not well-formed")
	PageQueryLimitMaxExceed  = NewError(146, "limit exceeds the maximum page size")

	// execution
	ExecutionFailed = NewError(150, "target invocation failed")
)
