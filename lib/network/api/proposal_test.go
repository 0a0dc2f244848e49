package api

import (
	"bufio"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/common/keypair"
	"github.com/anunayjoshi29/ethvault/lib/governance"
)

func TestPostAndGetProposal(t *testing.T) {
	ts, _, oracle, _ := prepareAPIServer()
	defer ts.Close()

	proposer := keypair.Random().Address()
	target := keypair.Random().Address()
	oracle.Weights[proposer] = 10 * common.WeightPerToken

	resp, err := postJSON(ts, "/proposals", ProposalBody{
		Proposer:    proposer,
		Description: "raise the fee cap",
		Target:      target,
		CallData:    []byte{0x01, 0x02},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.Equal(t, proposer, created["proposer"])
	require.Equal(t, string(governance.StateActive), created["state"])

	id := uint64(created["id"].(float64))

	body, err := request(ts, "/proposals/"+strconv.FormatUint(id, 10), false)
	require.NoError(t, err)
	defer body.Close()

	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&got))
	require.Equal(t, target, got["target"])
	require.Equal(t, "raise the fee cap", got["description"])
}

func TestPostProposalInsufficientWeight(t *testing.T) {
	ts, _, _, _ := prepareAPIServer()
	defer ts.Close()

	resp, err := postJSON(ts, "/proposals", ProposalBody{
		Proposer: keypair.Random().Address(),
		Target:   keypair.Random().Address(),
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
}

func TestPostProposalInvalidTarget(t *testing.T) {
	ts, _, oracle, _ := prepareAPIServer()
	defer ts.Close()

	proposer := keypair.Random().Address()
	oracle.Weights[proposer] = 10 * common.WeightPerToken

	resp, err := postJSON(ts, "/proposals", ProposalBody{
		Proposer: proposer,
		Target:   "not-an-address",
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetProposalNotFound(t *testing.T) {
	ts, _, _, _ := prepareAPIServer()
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/proposals/99")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetProposalsList(t *testing.T) {
	ts, _, oracle, _ := prepareAPIServer()
	defer ts.Close()

	proposer := keypair.Random().Address()
	oracle.Weights[proposer] = 10 * common.WeightPerToken

	for i := 0; i < 3; i++ {
		resp, err := postJSON(ts, "/proposals", ProposalBody{
			Proposer: proposer,
			Target:   keypair.Random().Address(),
		})
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	body, err := request(ts, "/proposals", false)
	require.NoError(t, err)
	defer body.Close()

	bs, err := ioutil.ReadAll(body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(bs, &payload))

	embedded := payload["_embedded"].(map[string]interface{})
	records := embedded["records"].([]interface{})
	require.Len(t, records, 3)

	// id order is creation order
	first := records[0].(map[string]interface{})
	require.Equal(t, float64(0), first["id"])
}

func TestVoteAndTallies(t *testing.T) {
	ts, engine, oracle, _ := prepareAPIServer()
	defer ts.Close()

	current := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	engine.SetClock(func() time.Time { return current })

	proposer := keypair.Random().Address()
	voter := keypair.Random().Address()
	oracle.Weights[proposer] = 10 * common.WeightPerToken
	oracle.Weights[voter] = 60 * common.WeightPerToken

	resp, err := postJSON(ts, "/proposals", ProposalBody{
		Proposer: proposer,
		Target:   keypair.Random().Address(),
	})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// the vote delay has not passed yet
	resp, err = postJSON(ts, "/proposals/0/votes", VoteBody{Voter: voter, Support: true})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	current = current.Add(2 * time.Hour)

	resp, err = postJSON(ts, "/proposals/0/votes", VoteBody{Voter: voter, Support: true})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tallies map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tallies))
	require.Equal(t, (60 * common.WeightPerToken).String(), tallies["votes_for"])

	// voting twice is rejected
	resp, err = postJSON(ts, "/proposals/0/votes", VoteBody{Voter: voter, Support: false})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	body, err := request(ts, "/proposals/0/votes/"+voter, false)
	require.NoError(t, err)
	defer body.Close()

	var ballot map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&ballot))
	require.Equal(t, string(governance.BallotFor), ballot["ballot"])
}

func TestExecuteProposalHandler(t *testing.T) {
	ts, engine, oracle, _ := prepareAPIServer()
	defer ts.Close()

	current := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	engine.SetClock(func() time.Time { return current })

	proposer := keypair.Random().Address()
	oracle.Weights[proposer] = 200 * common.WeightPerToken

	resp, err := postJSON(ts, "/proposals", ProposalBody{
		Proposer: proposer,
		Target:   keypair.Random().Address(),
	})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	current = current.Add(2 * time.Hour)
	resp, err = postJSON(ts, "/proposals/0/votes", VoteBody{Voter: proposer, Support: true})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// still in the voting window
	resp, err = postJSON(ts, "/proposals/0/execute", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	current = time.Date(2019, 1, 4, 1, 0, 0, 0, time.UTC)

	resp, err = postJSON(ts, "/proposals/0/execute", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, string(governance.StateExecuted), payload["state"])
}

func TestCancelProposalHandler(t *testing.T) {
	ts, _, oracle, _ := prepareAPIServer()
	defer ts.Close()

	proposer := keypair.Random().Address()
	oracle.Weights[proposer] = 10 * common.WeightPerToken

	resp, err := postJSON(ts, "/proposals", ProposalBody{
		Proposer: proposer,
		Target:   keypair.Random().Address(),
	})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = postJSON(ts, "/proposals/0/cancel", CallerBody{Caller: keypair.Random().Address()})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = postJSON(ts, "/proposals/0/cancel", CallerBody{Caller: proposer})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, string(governance.StateCanceled), payload["state"])
}

func TestCleanupHandler(t *testing.T) {
	ts, _, oracle, conf := prepareAPIServer()
	defer ts.Close()

	proposer := keypair.Random().Address()
	oracle.Weights[proposer] = 10 * common.WeightPerToken

	resp, err := postJSON(ts, "/proposals", ProposalBody{
		Proposer: proposer,
		Target:   keypair.Random().Address(),
	})
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = postJSON(ts, "/proposals/0/cancel", CallerBody{Caller: proposer})
	require.NoError(t, err)
	resp.Body.Close()

	// only the admin may clean up
	resp, err = postJSON(ts, "/proposals/cleanup", CleanupBody{Caller: proposer, Ids: []uint64{0}})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = postJSON(ts, "/proposals/cleanup", CleanupBody{Caller: conf.AdminAddress, Ids: []uint64{0}})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	getResp, err := ts.Client().Get(ts.URL + "/proposals/0")
	require.NoError(t, err)
	defer getResp.Body.Close()
	require.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func TestParametersHandlers(t *testing.T) {
	ts, _, _, conf := prepareAPIServer()
	defer ts.Close()

	body, err := request(ts, "/parameters", false)
	require.NoError(t, err)
	defer body.Close()

	var params map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&params))
	require.Equal(t, "72h0m0s", params["voting_period"])

	resp, err := postJSON(ts, "/parameters", ParametersBody{
		Caller:         keypair.Random().Address(),
		VotingPeriod:   "96h",
		ExecutionDelay: "48h",
		Quorum:         "2000000000",
	})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = postJSON(ts, "/parameters", ParametersBody{
		Caller:         conf.AdminAddress,
		VotingPeriod:   "96h",
		ExecutionDelay: "48h",
		Quorum:         "2000000000",
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	require.Equal(t, "96h0m0s", updated["voting_period"])
}

func TestSubscribeProposalCreated(t *testing.T) {
	ts, _, oracle, _ := prepareAPIServer()
	defer ts.Close()

	proposer := keypair.Random().Address()
	oracle.Weights[proposer] = 10 * common.WeightPerToken

	body, err := request(ts, "/subscribe?resource=proposal&condition=created", true)
	require.NoError(t, err)
	defer body.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
			}

			resp, err := postJSON(ts, "/proposals", ProposalBody{
				Proposer: proposer,
				Target:   keypair.Random().Address(),
			})
			if err == nil {
				resp.Body.Close()
			}
			time.Sleep(50 * time.Millisecond)
		}
	}()

	reader := bufio.NewReader(body)
	var line string
	for {
		line, err = reader.ReadString('\n')
		require.NoError(t, err)
		if len(strings.TrimSpace(line)) > 0 {
			break
		}
	}

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &payload))
	require.Equal(t, proposer, payload["proposer"])
}
