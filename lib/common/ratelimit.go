package common

import (
	"strings"

	"github.com/ulule/limiter"
)

var (
	// default is `100-S`, 100 requests per second
	RateLimitAPI, _ = limiter.NewRateFromFormatted("100-S")
)

type RateLimitRule struct {
	Default     limiter.Rate
	ByIPAddress map[string]limiter.Rate
}

func NewRateLimitRule(rate limiter.Rate) RateLimitRule {
	return RateLimitRule{
		Default:     rate,
		ByIPAddress: map[string]limiter.Rate{},
	}
}

func (r RateLimitRule) IsLimitedForIPAddress(ip string) bool {
	rate, found := r.ByIPAddress[ip]
	if !found {
		rate = r.Default
	}

	return rate.Limit > 0
}

func (r RateLimitRule) GetRate(ip string) limiter.Rate {
	rate, found := r.ByIPAddress[ip]
	if !found {
		return r.Default
	}

	return rate
}

// ParseRateLimitRule parses a rule like `100-S` or `<ip>=10-M`.
func ParseRateLimitRule(s string, rule *RateLimitRule) error {
	if !strings.Contains(s, "=") {
		rate, err := limiter.NewRateFromFormatted(s)
		if err != nil {
			return err
		}
		rule.Default = rate
		return nil
	}

	parsed := strings.SplitN(s, "=", 2)
	rate, err := limiter.NewRateFromFormatted(parsed[1])
	if err != nil {
		return err
	}
	rule.ByIPAddress[parsed[0]] = rate

	return nil
}
