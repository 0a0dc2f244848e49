// Provides utilities to use in test code
package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/governance"
	"github.com/anunayjoshi29/ethvault/lib/storage"
)

func prepareAPIServer() (*httptest.Server, *governance.Engine, *governance.TestOracle, common.Config) {
	st := storage.NewTestStorage()

	conf := governance.TestMakeConfig()
	oracle := governance.NewTestOracle()
	engine, err := governance.NewEngine(st, conf, oracle, &governance.TestExecutor{})
	if err != nil {
		panic(err)
	}

	apiHandler := NewNetworkHandlerAPI(engine, st, "")

	router := mux.NewRouter()
	router.HandleFunc(PostCleanupPattern, apiHandler.PostCleanupHandler).Methods("POST")
	router.HandleFunc(GetProposalsHandlerPattern, apiHandler.GetProposalsHandler).Methods("GET")
	router.HandleFunc(PostProposalPattern, apiHandler.PostProposalHandler).Methods("POST")
	router.HandleFunc(GetProposalHandlerPattern, apiHandler.GetProposalHandler).Methods("GET")
	router.HandleFunc(GetProposalStateHandlerPattern, apiHandler.GetProposalStateHandler).Methods("GET")
	router.HandleFunc(GetProposalVotesHandlerPattern, apiHandler.GetProposalVotesHandler).Methods("GET")
	router.HandleFunc(GetProposalVoterHandlerPattern, apiHandler.GetProposalVoterHandler).Methods("GET")
	router.HandleFunc(PostVotePattern, apiHandler.PostVoteHandler).Methods("POST")
	router.HandleFunc(PostExecutePattern, apiHandler.PostExecuteHandler).Methods("POST")
	router.HandleFunc(PostCancelPattern, apiHandler.PostCancelHandler).Methods("POST")
	router.HandleFunc(GetParametersHandlerPattern, apiHandler.GetParametersHandler).Methods("GET")
	router.HandleFunc(PostParametersPattern, apiHandler.PostParametersHandler).Methods("POST")
	router.HandleFunc(GetAccountHandlerPattern, apiHandler.GetAccountHandler).Methods("GET")
	router.HandleFunc(GetSubscribePattern, apiHandler.GetSubscribeHandler).Methods("GET")
	ts := httptest.NewServer(router)

	return ts, engine, oracle, conf
}

func request(ts *httptest.Server, url string, streaming bool) (io.ReadCloser, error) {
	url = ts.URL + url
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	if streaming {
		req.Header.Set("Accept", "text/event-stream")
	}
	resp, err := ts.Client().Do(req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func postJSON(ts *httptest.Server, url string, body interface{}) (*http.Response, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return ts.Client().Post(ts.URL+url, "application/json", bytes.NewReader(bs))
}
