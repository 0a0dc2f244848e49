package api

import (
	"net/http"

	"github.com/anunayjoshi29/ethvault/lib/network/httputils"
	"github.com/anunayjoshi29/ethvault/lib/version"
)

func (api NetworkHandlerAPI) GetNodeInfoHandler(w http.ResponseWriter, r *http.Request) {
	count, err := api.engine.Count()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, 200, map[string]interface{}{
		"version":            version.Version,
		"governance_address": api.engine.GovernanceAddress(),
		"proposals":          count,
	})
}
