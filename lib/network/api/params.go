package api

import (
	"net/http"
	"time"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/errors"
	"github.com/anunayjoshi29/ethvault/lib/network/api/resource"
	"github.com/anunayjoshi29/ethvault/lib/network/httputils"
)

type ParametersBody struct {
	Caller         string `json:"caller"`
	VotingPeriod   string `json:"voting_period"`
	ExecutionDelay string `json:"execution_delay"`
	Quorum         string `json:"quorum"`
}

func (api NetworkHandlerAPI) GetParametersHandler(w http.ResponseWriter, r *http.Request) {
	p, err := api.engine.Parameters()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, resource.NewParameters(p))
}

func (api NetworkHandlerAPI) PostParametersHandler(w http.ResponseWriter, r *http.Request) {
	var body ParametersBody
	if err := unmarshalBody(r, &body); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	votingPeriod, err := time.ParseDuration(body.VotingPeriod)
	if err != nil {
		httputils.WriteJSONError(w, errors.BadRequestParameter.Clone().SetData("error", err.Error()))
		return
	}
	executionDelay, err := time.ParseDuration(body.ExecutionDelay)
	if err != nil {
		httputils.WriteJSONError(w, errors.BadRequestParameter.Clone().SetData("error", err.Error()))
		return
	}
	quorum, err := common.ParseWeight(body.Quorum)
	if err != nil {
		httputils.WriteJSONError(w, errors.BadRequestParameter.Clone().SetData("error", err.Error()))
		return
	}

	if err := api.engine.UpdateParameters(body.Caller, votingPeriod, executionDelay, quorum); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	p, err := api.engine.Parameters()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, resource.NewParameters(p))
}
