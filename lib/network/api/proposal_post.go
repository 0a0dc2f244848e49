package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/anunayjoshi29/ethvault/lib/errors"
	"github.com/anunayjoshi29/ethvault/lib/network/api/resource"
	"github.com/anunayjoshi29/ethvault/lib/network/httputils"
)

// The post bodies carry the caller address in clear; authenticating the
// caller is the transport's concern and sits behind the node's own
// transaction layer in production deployments.

type ProposalBody struct {
	Proposer    string `json:"proposer"`
	Description string `json:"description"`
	Target      string `json:"target"`
	CallData    []byte `json:"call_data"`
}

type VoteBody struct {
	Voter   string `json:"voter"`
	Support bool   `json:"support"`
}

type CallerBody struct {
	Caller string `json:"caller"`
}

type CleanupBody struct {
	Caller string   `json:"caller"`
	Ids    []uint64 `json:"ids"`
}

func unmarshalBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()

	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return errors.BadRequestParameter.Clone().SetData("error", err.Error())
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.BadRequestParameter.Clone().SetData("error", err.Error())
	}
	return nil
}

func (api NetworkHandlerAPI) PostProposalHandler(w http.ResponseWriter, r *http.Request) {
	var body ProposalBody
	if err := unmarshalBody(r, &body); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	id, err := api.engine.CreateProposal(body.Proposer, body.Description, body.Target, body.CallData)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	p, err := api.engine.Proposal(id)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}
	state, err := api.engine.State(id)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, http.StatusCreated, resource.NewProposal(p, state))
}

func (api NetworkHandlerAPI) PostVoteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProposalId(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	var body VoteBody
	if err := unmarshalBody(r, &body); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	if err := api.engine.CastVote(body.Voter, id, body.Support); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	votesFor, votesAgainst, err := api.engine.Tallies(id)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, map[string]interface{}{
		"id":            id,
		"votes_for":     votesFor,
		"votes_against": votesAgainst,
	})
}

func (api NetworkHandlerAPI) PostExecuteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProposalId(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	if err := api.engine.ExecuteProposal(id); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	state, err := api.engine.State(id)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, map[string]interface{}{
		"id":    id,
		"state": state,
	})
}

func (api NetworkHandlerAPI) PostCancelHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProposalId(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	var body CallerBody
	if err := unmarshalBody(r, &body); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	if err := api.engine.CancelProposal(body.Caller, id); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	state, err := api.engine.State(id)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, map[string]interface{}{
		"id":    id,
		"state": state,
	})
}

func (api NetworkHandlerAPI) PostCleanupHandler(w http.ResponseWriter, r *http.Request) {
	var body CleanupBody
	if err := unmarshalBody(r, &body); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	if err := api.engine.CleanupProposals(body.Caller, body.Ids); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, map[string]interface{}{
		"removed": body.Ids,
	})
}
