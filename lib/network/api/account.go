package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/anunayjoshi29/ethvault/lib/errors"
	"github.com/anunayjoshi29/ethvault/lib/network/api/resource"
	"github.com/anunayjoshi29/ethvault/lib/network/httputils"
	"github.com/anunayjoshi29/ethvault/lib/staking"
)

func (api NetworkHandlerAPI) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	address := vars["id"]

	readFunc := func() (payload interface{}, err error) {
		found, err := staking.ExistsStakingAccount(api.storage, address)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, errors.StakingAccountDoesNotExist
		}
		sa, err := staking.GetStakingAccount(api.storage, address)
		if err != nil {
			return nil, err
		}
		return resource.NewAccount(sa), nil
	}

	payload, err := readFunc()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, payload)
}
