package httputils

import (
	"fmt"
	"net/http"

	"github.com/anunayjoshi29/ethvault/lib/errors"
)

// Problem follows RFC7807 problem details for error responses.
type Problem struct {
	// "type" (string) - A URI reference [RFC3986] that identifies the
	// problem type. When this member is not present, its value is
	// assumed to be "about:blank".
	Type string `json:"type"`

	// "title" (string) - A short, human-readable summary of the problem
	// type. It SHOULD NOT change from occurrence to occurrence of the
	// problem.
	Title string `json:"title"`

	// "status" (number) - The HTTP status code generated by the origin
	// server for this occurrence of the problem.
	Status int `json:"status,omitempty"`

	// "detail" (string) - A human-readable explanation specific to this
	// occurrence of the problem.
	Detail string `json:"detail,omitempty"`

	// "instance" (string) - A URI reference that identifies the specific
	// occurrence of the problem.
	Instance string `json:"instance,omitempty"`
}

func NewStatusProblem(status int) Problem {
	return Problem{Type: "about:blank", Status: status, Title: http.StatusText(status)}
}

func NewDetailedStatusProblem(status int, detail string) Problem {
	p := NewStatusProblem(status)
	p.Detail = detail
	return p
}

// NewErrorProblem renders a governance error as a problem; the error
// code becomes a dereferenceable type URI.
func NewErrorProblem(err error, status int) Problem {
	p := NewStatusProblem(status)
	if e, ok := err.(*errors.Error); ok {
		p.Type = fmt.Sprintf("https://github.com/anunayjoshi29/ethvault/problems/%d", e.Code)
		p.Title = e.Message
		if data, ok := e.Data["error"]; ok {
			p.Detail = fmt.Sprintf("%v", data)
		}
	} else {
		p.Detail = err.Error()
	}
	return p
}

func (p Problem) SetInstance(instance string) Problem {
	p.Instance = instance
	return p
}
