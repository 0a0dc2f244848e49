package storage

import (
	"fmt"
	"net/url"
	"strings"
)

// Config is parsed from an uri, `memory://` or `file:///var/lib/ethvault/db`.
type Config struct {
	Scheme string
	Path   string
}

func NewConfigFromString(s string) (*Config, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}

	switch u.Scheme {
	case "memory":
		return &Config{Scheme: "memory"}, nil
	case "file":
		path := u.Path
		if len(u.Host) > 0 {
			path = u.Host + u.Path
		}
		if len(strings.TrimSpace(path)) < 1 {
			return nil, fmt.Errorf("empty path in storage uri: '%s'", s)
		}
		return &Config{Scheme: "file", Path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported storage scheme: '%s'", u.Scheme)
	}
}

func (c *Config) String() string {
	if c.Scheme == "memory" {
		return "memory://"
	}
	return fmt.Sprintf("file://%s", c.Path)
}
