package network

import (
	"errors"
	"strings"
	"time"

	"github.com/anunayjoshi29/ethvault/lib/common"
)

type ServerConfig struct {
	Endpoint *common.Endpoint
	Addr     string

	ReadTimeout,
	ReadHeaderTimeout,
	WriteTimeout,
	IdleTimeout time.Duration

	TLSCertFile,
	TLSKeyFile string
}

// NewServerConfigFromEndpoint reads the listen address and the
// tunables from the endpoint query, like
// `https://localhost:12345?TLSCertFile=...&IdleTimeout=10s`.
func NewServerConfigFromEndpoint(endpoint *common.Endpoint) (config ServerConfig, err error) {
	query := endpoint.Query()

	var readTimeout, readHeaderTimeout, writeTimeout time.Duration
	var idleTimeout time.Duration = 5 * time.Second

	if readTimeout, err = time.ParseDuration(common.GetUrlQuery(query, "ReadTimeout", "0s")); err != nil {
		return
	}
	if readTimeout < 0 {
		err = errors.New("invalid 'ReadTimeout'")
		return
	}

	if readHeaderTimeout, err = time.ParseDuration(common.GetUrlQuery(query, "ReadHeaderTimeout", "0s")); err != nil {
		return
	}
	if readHeaderTimeout < 0 {
		err = errors.New("invalid 'ReadHeaderTimeout'")
		return
	}

	if writeTimeout, err = time.ParseDuration(common.GetUrlQuery(query, "WriteTimeout", "0s")); err != nil {
		return
	}
	if writeTimeout < 0 {
		err = errors.New("invalid 'WriteTimeout'")
		return
	}

	if idleTimeout, err = time.ParseDuration(common.GetUrlQuery(query, "IdleTimeout", "5s")); err != nil {
		return
	}
	if idleTimeout < 0 {
		err = errors.New("invalid 'IdleTimeout'")
		return
	}

	tlsCertFile := query.Get("TLSCertFile")
	tlsKeyFile := query.Get("TLSKeyFile")

	if strings.ToLower(endpoint.Scheme) == "https" && (len(tlsCertFile) < 1 || len(tlsKeyFile) < 1) {
		err = errors.New("HTTPS needs `TLSCertFile` and `TLSKeyFile`")
		return
	}

	config = ServerConfig{
		Endpoint:          endpoint,
		Addr:              endpoint.Host,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		TLSCertFile:       tlsCertFile,
		TLSKeyFile:        tlsKeyFile,
	}

	return
}

func (config ServerConfig) IsHTTPS() bool {
	return strings.ToLower(config.Endpoint.Scheme) == "https"
}
