package httputils

import (
	"net/http"

	"github.com/anunayjoshi29/ethvault/lib/errors"
)

// IsEventStream checks request header accept is text/event-stream
func IsEventStream(r *http.Request) bool {
	if r.Header.Get("Accept") == "text/event-stream" {
		return true
	}
	return false
}

var (
	ErrorsToStatus = map[uint]int{
		errors.StorageRecordDoesNotExist.Code:  http.StatusNotFound,
		errors.StorageRecordAlreadyExists.Code: http.StatusConflict,
		errors.StorageCoreError.Code:           http.StatusInternalServerError,

		errors.MaximumWeightReached.Code:        http.StatusBadRequest,
		errors.WeightUnderflow.Code:             http.StatusBadRequest,
		errors.StakingAccountDoesNotExist.Code:  http.StatusNotFound,
		errors.StakingAccountAlreadyExists.Code: http.StatusConflict,

		errors.Unauthorized.Code:       http.StatusForbidden,
		errors.InsufficientWeight.Code: http.StatusForbidden,
		errors.NoVotingPower.Code:      http.StatusForbidden,

		errors.ProposalNotActive.Code: http.StatusConflict,
		errors.NotSucceeded.Code:      http.StatusConflict,
		errors.AlreadyVoted.Code:      http.StatusConflict,
		errors.AlreadyExecuted.Code:   http.StatusConflict,
		errors.AlreadyCanceled.Code:   http.StatusConflict,
		errors.NotFinished.Code:       http.StatusConflict,
		errors.ProposalExpired.Code:   http.StatusConflict,
		errors.VotingTooEarly.Code:    http.StatusConflict,

		errors.InvalidTarget.Code:            http.StatusBadRequest,
		errors.SelfTarget.Code:               http.StatusBadRequest,
		errors.InvalidProposalId.Code:        http.StatusNotFound,
		errors.ProposalCapacityExceeded.Code: http.StatusServiceUnavailable,
		errors.InvalidParameters.Code:        http.StatusBadRequest,
		errors.BadRequestParameter.Code:      http.StatusBadRequest,
		errors.PageQueryLimitMaxExceed.Code:  http.StatusBadRequest,

		errors.ExecutionFailed.Code: http.StatusInternalServerError,
	}
)

// StatusCode maps a governance error to its http status; unknown errors
// are server faults.
func StatusCode(err error) int {
	if e, ok := err.(*errors.Error); ok {
		if status, ok := ErrorsToStatus[e.Code]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}
