package httputils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anunayjoshi29/ethvault/lib/errors"
)

func TestProblemFromError(t *testing.T) {
	p := NewErrorProblem(errors.AlreadyVoted, StatusCode(errors.AlreadyVoted))
	require.Equal(t, errors.AlreadyVoted.Message, p.Title)
	require.Equal(t, http.StatusConflict, p.Status)

	detailed := NewErrorProblem(
		errors.BadRequestParameter.Clone().SetData("error", "id is not a number"),
		StatusCode(errors.BadRequestParameter),
	)
	require.Equal(t, "id is not a number", detailed.Detail)
}

func TestProblemStatusDefaults(t *testing.T) {
	p := NewStatusProblem(http.StatusBadRequest)
	require.Equal(t, "about:blank", p.Type)
	require.Equal(t, http.StatusText(http.StatusBadRequest), p.Title)
	require.Empty(t, p.Detail)

	d := NewDetailedStatusProblem(http.StatusBadRequest, "parameters are not enough")
	require.Equal(t, "parameters are not enough", d.Detail)
	require.Empty(t, d.Instance)
	require.Equal(t, "instance", d.SetInstance("instance").Instance)
}

func TestWriteJSONError(t *testing.T) {
	router := http.NewServeMux()
	router.HandleFunc("/fail", func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, errors.InvalidProposalId)
	})

	ts := httptest.NewServer(router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/fail")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	var p Problem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	require.Equal(t, errors.InvalidProposalId.Message, p.Title)
	require.Equal(t, http.StatusNotFound, p.Status)
}

func TestStatusCodeUnknownError(t *testing.T) {
	require.Equal(t, http.StatusInternalServerError, StatusCode(http.ErrBodyNotAllowed))
}
