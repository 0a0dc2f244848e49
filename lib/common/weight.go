//
// Define the `Weight` type, which is the voting-power type used across the code base
//
// One staked vault token accounts for 10 million weight units.
// In addition to the `Weight` type, some member functions are defined:
// - `Add` / `Sub` do an addition / substraction and return an error object
// - `MustAdd` / `MustSub` call `Add` / `Sub` and turn any `error` into a `panic`.
//   Those are provided for testing / quick prototyping and should not be in production code.
// - Invariant `panic`s if the instance it's called on violates its invariant (see Contract programming)
//
package common

import (
	"fmt"
	"io"
	"strconv"

	"github.com/anunayjoshi29/ethvault/lib/errors"
)

const (
	// 10,000,000 units == 1 staked vault token
	WeightPerToken Weight = 10000000
	// The maximum possible voting weight within any network.
	// It is 1 trillion tokens, or 10,000,000,000,000,000,000 in `Weight`
	MaximumWeight Weight = 1000000000000 * WeightPerToken
	// An invalid value, used to make an instance unusable
	invalidWeight = Weight(MaximumWeight + 1)
)

// Main voting-power type used across ethvault
type Weight uint64

// Check this type's invariant, that is, its value is <= MaximumWeight
func (this Weight) Invariant() {
	if this > MaximumWeight {
		// `uint64` is necessary to avoid a recursive call to `String`
		// which would lead to an infinite recursion
		panic(fmt.Errorf("Weight '%d' is higher than the maximum voting weight (%d)", uint64(this), uint64(MaximumWeight)))
	}
}

func (w Weight) EncodeRLP(writer io.Writer) (err error) {
	writer.Write([]byte(w.String()))
	return nil
}

// Stringer interface implementation
func (w Weight) String() string {
	w.Invariant()
	return strconv.FormatUint(uint64(w), 10)
}

//
// Add a `Weight` to this `Weight`
//
// If the resulting value would overflow MaximumWeight, an error is returned,
// along with the value (which would trigger a `panic` if used).
//
func (w Weight) Add(added Weight) (n Weight, err error) {
	w.Invariant()
	added.Invariant()
	if n = w + added; n > MaximumWeight {
		err = errors.MaximumWeightReached
	}
	return
}

// Counterpart of `Add` which panic instead of returning an error
// Useful for debugging and testing, should be avoided in regular code
func (w Weight) MustAdd(added Weight) Weight {
	if v, err := w.Add(added); err != nil {
		panic(err)
	} else {
		return v
	}
}

//
// Substract a `Weight` from this `Weight`
//
// If the resulting value would underflow, an error is returned,
// along with an invalid value (which would trigger a `panic` if used).
//
func (w Weight) Sub(sub Weight) (Weight, error) {
	w.Invariant()
	sub.Invariant()
	if sub > w {
		return invalidWeight, errors.WeightUnderflow
	}
	return w - sub, nil
}

// Counterpart of `Sub` which panic instead of returning an error
// Useful for debugging and testing, should be avoided in regular code
func (w Weight) MustSub(sub Weight) Weight {
	if v, err := w.Sub(sub); err != nil {
		panic(err)
	} else {
		return v
	}
}

// Parse a weight value out of its string representation
func ParseWeight(s string) (Weight, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return invalidWeight, err
	}

	w := Weight(v)
	if w > MaximumWeight {
		return invalidWeight, errors.MaximumWeightReached
	}

	return w, nil
}

// MarshalJSON implements json.Marshaler. Weights are rendered as strings so
// consumers never lose precision on 64 bit values.
func (w Weight) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (w *Weight) UnmarshalJSON(b []byte) error {
	if len(b) >= 2 && b[0] == '"' {
		b = b[1 : len(b)-1]
	}

	v, err := ParseWeight(string(b))
	if err != nil {
		return err
	}

	*w = v
	return nil
}
