package api

import (
	"fmt"

	"github.com/anunayjoshi29/ethvault/lib/governance"
	"github.com/anunayjoshi29/ethvault/lib/storage"
)

const APIVersionV1 = "v1"

// API Endpoint patterns
const (
	GetProposalsHandlerPattern     = "/proposals"
	GetProposalHandlerPattern      = "/proposals/{id}"
	GetProposalStateHandlerPattern = "/proposals/{id}/state"
	GetProposalVotesHandlerPattern = "/proposals/{id}/votes"
	GetProposalVoterHandlerPattern = "/proposals/{id}/votes/{address}"
	PostProposalPattern            = "/proposals"
	PostVotePattern                = "/proposals/{id}/votes"
	PostExecutePattern             = "/proposals/{id}/execute"
	PostCancelPattern              = "/proposals/{id}/cancel"
	PostCleanupPattern             = "/proposals/cleanup"
	GetParametersHandlerPattern    = "/parameters"
	PostParametersPattern          = "/parameters"
	GetAccountHandlerPattern       = "/accounts/{id}"
	GetNodeInfoPattern             = "/"
	GetSubscribePattern            = "/subscribe"
)

type NetworkHandlerAPI struct {
	engine    *governance.Engine
	storage   *storage.LevelDBBackend
	urlPrefix string
	version   string
}

func NewNetworkHandlerAPI(engine *governance.Engine, storage *storage.LevelDBBackend, urlPrefix string) *NetworkHandlerAPI {
	return &NetworkHandlerAPI{
		engine:    engine,
		storage:   storage,
		urlPrefix: urlPrefix,
		version:   APIVersionV1,
	}
}

func (api NetworkHandlerAPI) HandlerURLPattern(pattern string) string {
	return fmt.Sprintf("%s/%s%s", api.urlPrefix, api.version, pattern)
}
