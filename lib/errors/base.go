package errors

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"
)

// Error is a categorical failure value. Operations fail with one of the
// values from the catalog in errors.go, compared by `Code`; per-occurrence
// context goes into `Data` on a `Clone()`, never on the catalog value
// itself.
type Error struct {
	Code    uint                   `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data" rlp:"-"`
}

func (o *Error) Serialize() (b []byte, err error) {
	b, err = json.Marshal(o)
	return
}

func (o *Error) Error() string {
	b, _ := o.Serialize()
	return string(b)
}

func (o *Error) SetData(k string, v interface{}) *Error {
	o.Data[k] = v

	return o
}

// Clone copies the value with its own `Data` map, so `SetData` on the copy
// leaves the catalog value untouched.
func (o *Error) Clone() *Error {
	var new Error
	new = *o

	new.Data = map[string]interface{}{}
	if o.Data != nil && len(o.Data) > 0 {
		for k, v := range o.Data {
			new.Data[k] = v
		}
	}

	return &new
}

// The category helpers follow the code blocks of the catalog; callers
// branch on the category, not on individual codes.

// IsAccessError reports whether the caller lacked authority or weight.
func (o *Error) IsAccessError() bool {
	return o.Code >= 120 && o.Code < 130
}

// IsStateError reports whether the proposal was in the wrong lifecycle
// position for the operation; retrying without a state change fails the
// same way.
func (o *Error) IsStateError() bool {
	return o.Code >= 130 && o.Code < 140
}

// IsInputError reports whether the request itself was malformed or out of
// bounds.
func (o *Error) IsInputError() bool {
	return o.Code >= 140 && o.Code < 150
}

// IsExecutionError reports whether a target invocation failed; the
// proposal stays `SUCCEEDED` and execution can be retried.
func (o *Error) IsExecutionError() bool {
	return o.Code >= 150 && o.Code < 160
}

// EncodeRLP keeps the wire form deterministic: `Data` keys are sorted, and
// a nil error encodes as an empty list.
func (o *Error) EncodeRLP(w io.Writer) (err error) {
	if o == nil {
		return rlp.Encode(w, []uint{})
	}

	if o.Data != nil && len(o.Data) > 0 {
		var d [][2]interface{}

		var keys []string
		for k, _ := range o.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			d = append(d, [2]interface{}{k, o.Data[k]})
		}
		err = rlp.Encode(w, d)
	}

	return rlp.Encode(w, struct {
		Code    uint
		Message string
	}{
		Code:    o.Code,
		Message: o.Message,
	})
}

func NewError(code uint, message string) *Error {
	return &Error{Code: code, Message: message, Data: map[string]interface{}{}}
}
