package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/anunayjoshi29/ethvault/lib/errors"
	"github.com/anunayjoshi29/ethvault/lib/governance"
	"github.com/anunayjoshi29/ethvault/lib/network/api/resource"
	"github.com/anunayjoshi29/ethvault/lib/network/httputils"
)

func parseProposalId(r *http.Request) (uint64, error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 64)
	if err != nil {
		return 0, errors.BadRequestParameter.Clone().SetData("error", err.Error())
	}
	return id, nil
}

func (api NetworkHandlerAPI) GetProposalsHandler(w http.ResponseWriter, r *http.Request) {
	pq, err := NewPageQuery(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	var (
		firstCursor []byte
		lastCursor  []byte
		rs          []resource.Resource
	)

	readFunc := func() error {
		iterFunc, closeFunc := governance.GetProposalsByCreated(api.storage, pq.ListOptions())
		defer closeFunc()

		for {
			p, hasNext := iterFunc()
			if !hasNext {
				break
			}

			cursor := []byte(governance.GetProposalKey(p.Id))
			if len(firstCursor) == 0 {
				firstCursor = cursor
			}
			lastCursor = cursor

			state, err := api.engine.State(p.Id)
			if err != nil {
				return err
			}
			rs = append(rs, resource.NewProposal(p, state))
		}
		return nil
	}

	if err := readFunc(); err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, pq.ResourceList(rs, firstCursor, lastCursor))
}

func (api NetworkHandlerAPI) GetProposalHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProposalId(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	readFunc := func() (payload interface{}, err error) {
		p, err := api.engine.Proposal(id)
		if err != nil {
			return nil, err
		}
		state, err := api.engine.State(id)
		if err != nil {
			return nil, err
		}
		return resource.NewProposal(p, state), nil
	}

	payload, err := readFunc()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, payload)
}

func (api NetworkHandlerAPI) GetProposalStateHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProposalId(r)
	if err != nil {
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

func (api NetworkHandlerAPI) GetProposalVotesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProposalId(r)
	if err != nil {
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

func (api NetworkHandlerAPI) GetProposalVoterHandler(w http.ResponseWriter, r *http.Request) {
	id, err := parseProposalId(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}
	address := mux.Vars(r)["address"]

	ballot, err := api.engine.VoterBallot(id, address)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, map[string]interface{}{
		"id":     id,
		"voter":  address,
		"ballot": ballot,
	})
}
