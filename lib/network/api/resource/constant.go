package resource

const (
	APIVersionV1 = "/v1"
	APIPrefix    = "/api"

	URLAccounts      = APIPrefix + APIVersionV1 + "/accounts/{id}"
	URLProposals     = APIPrefix + APIVersionV1 + "/proposals"
	URLProposal      = APIPrefix + APIVersionV1 + "/proposals/{id}"
	URLProposalState = APIPrefix + APIVersionV1 + "/proposals/{id}/state"
	URLProposalVotes = APIPrefix + APIVersionV1 + "/proposals/{id}/votes"
	URLParameters    = APIPrefix + APIVersionV1 + "/parameters"
)
