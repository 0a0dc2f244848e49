package network

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/anunayjoshi29/ethvault/lib/common"
)

func TestNewServerConfigFromEndpoint(t *testing.T) {
	endpoint, err := common.ParseEndpoint("http://localhost:12345?ReadTimeout=10s&IdleTimeout=7s")
	require.NoError(t, err)

	config, err := NewServerConfigFromEndpoint(endpoint)
	require.NoError(t, err)
	require.Equal(t, "localhost:12345", config.Addr)
	require.Equal(t, 10*time.Second, config.ReadTimeout)
	require.Equal(t, 7*time.Second, config.IdleTimeout)
	require.False(t, config.IsHTTPS())
}

func TestNewServerConfigFromEndpointHTTPSWithoutTLS(t *testing.T) {
	endpoint, err := common.ParseEndpoint("https://localhost:12345")
	require.NoError(t, err)

	_, err = NewServerConfigFromEndpoint(endpoint)
	require.Error(t, err)
}

func TestNewServerConfigFromEndpointInvalidTimeout(t *testing.T) {
	endpoint, err := common.ParseEndpoint("http://localhost:12345?ReadTimeout=-1s")
	require.NoError(t, err)

	_, err = NewServerConfigFromEndpoint(endpoint)
	require.Error(t, err)
}
