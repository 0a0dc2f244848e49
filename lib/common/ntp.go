package common

import (
	"fmt"
	"time"

	"github.com/beevik/ntp"
)

const DefaultNTPHost = "pool.ntp.org"

// MaxClockOffset is the largest tolerated drift against NTP. The whole
// proposal lifecycle is derived from the wall clock, so a node running
// with a skewed clock would disagree with everyone else about which
// proposals are still open.
const MaxClockOffset = 30 * time.Second

func CheckClockOffset(host string) error {
	if len(host) < 1 {
		host = DefaultNTPHost
	}

	response, err := ntp.Query(host)
	if err != nil {
		return err
	}

	offset := response.ClockOffset
	if offset < 0 {
		offset = -offset
	}
	if offset > MaxClockOffset {
		return fmt.Errorf("clock offset against '%s' is too large: %s", host, response.ClockOffset)
	}

	return nil
}
