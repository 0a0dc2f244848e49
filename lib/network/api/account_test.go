package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/common/keypair"
	"github.com/anunayjoshi29/ethvault/lib/staking"
)

func TestGetAccountHandler(t *testing.T) {
	ts, engine, _, _ := prepareAPIServer()
	defer ts.Close()

	address := keypair.Random().Address()

	resp, err := ts.Client().Get(ts.URL + "/accounts/" + address)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	sa := staking.NewStakingAccount(address, 42*common.WeightPerToken)
	require.NoError(t, sa.Save(engine.Storage()))

	resp, err = ts.Client().Get(ts.URL + "/accounts/" + address)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, address, payload["address"])
	require.Equal(t, (42 * common.WeightPerToken).String(), payload["staked"])
}
