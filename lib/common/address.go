package common

import (
	"github.com/stellar/go/keypair"
)

// IsValidAddress reports whether address is a well-formed ed25519 public
// address. Secret seeds are not addresses.
func IsValidAddress(address string) bool {
	kp, err := keypair.Parse(address)
	if err != nil {
		return false
	}

	_, ok := kp.(*keypair.FromAddress)
	return ok
}
