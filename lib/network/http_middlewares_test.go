package network

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter"

	"github.com/anunayjoshi29/ethvault/lib/common"
)

func TestRecoverMiddleware(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		panic("something bad happened")
	})
	router.Use(RecoverMiddleware(nil))

	ts := httptest.NewServer(router)
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
}

func TestRateLimitMiddleware(t *testing.T) {
	rate, err := limiter.NewRateFromFormatted("2-M")
	require.NoError(t, err)
	rule := common.NewRateLimitRule(rate)

	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	router.Use(RateLimitMiddleware(nil, rule))

	ts := httptest.NewServer(router)
	defer ts.Close()

	for i := 0; i < 2; i++ {
		resp, err := ts.Client().Get(ts.URL + "/")
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRateLimitMiddlewareByIPAddress(t *testing.T) {
	rate, err := limiter.NewRateFromFormatted("1-M")
	require.NoError(t, err)
	rule := common.NewRateLimitRule(rate)

	// the local client is unlimited
	rule.ByIPAddress["127.0.0.1"] = limiter.Rate{}

	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	router.Use(RateLimitMiddleware(nil, rule))

	ts := httptest.NewServer(router)
	defer ts.Close()

	for i := 0; i < 5; i++ {
		resp, err := ts.Client().Get(ts.URL + "/")
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
}
