package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/GianlucaGuarini/go-observable"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/common/observer"
	"github.com/anunayjoshi29/ethvault/lib/errors"
	"github.com/anunayjoshi29/ethvault/lib/governance"
	"github.com/anunayjoshi29/ethvault/lib/network/api/resource"
	"github.com/anunayjoshi29/ethvault/lib/network/httputils"
)

// DefaultContentType is "application/json"
const DefaultContentType = "application/json"

// GetSubscribeHandler streams governance events as chunked json. The
// events are selected by query, like
// `/subscribe?resource=proposal&condition=created` or
// `/subscribe?resource=vote&condition=voter&id=<address>`; without a
// query every proposal event is streamed.
func (api NetworkHandlerAPI) GetSubscribeHandler(w http.ResponseWriter, r *http.Request) {
	if !httputils.IsEventStream(r) {
		httputils.WriteJSONError(w, errors.BadRequestParameter)
		return
	}

	query := r.URL.Query()
	rsc := common.GetUrlQuery(query, "resource", observer.ResourceProposal)
	condition := common.GetUrlQuery(query, "condition", observer.ConditionAll)
	id := query.Get("id")

	ob := observer.ProposalObserver
	if rsc == observer.ResourceVote {
		ob = observer.VoteObserver
	}

	event := observer.NewEvent(rsc, condition, id).String()

	renderFunc := func(args ...interface{}) ([]byte, error) {
		if len(args) <= 1 {
			return nil, fmt.Errorf("render: value is empty")
		}
		i := args[1]

		if i == nil {
			return []byte{}, nil
		}

		switch v := i.(type) {
		case *governance.Proposal:
			state, err := api.engine.State(v.Id)
			if err != nil {
				// removed by cleanup; render the last known record
				return json.Marshal(v)
			}
			r := resource.NewProposal(v, state)
			return json.Marshal(r.Resource())
		case *governance.VoteCast:
			r := resource.NewVote(*v)
			return json.Marshal(r.Resource())
		}

		return json.Marshal(i)
	}

	subscriberId := common.GetUniqueIDFromUUID()
	log.Debug("new event stream subscriber", "subscriber", subscriberId, "event", event)

	es := NewEventStream(w, r, renderFunc, DefaultContentType)
	es.Render(nil)
	es.Run(ob, event)

	log.Debug("event stream subscriber gone", "subscriber", subscriberId)
}

// EventStream handles chunked responses of a observable trigger
//
// renderFunc uses on observable.On() and Render function
type EventStream struct {
	contentType string
	renderFunc  RenderFunc
	request     *http.Request
	writer      http.ResponseWriter
	flusher     http.Flusher
	err         error
	rendered    bool
	stop        chan struct{}
}

type RenderFunc func(args ...interface{}) ([]byte, error)

var RenderJSONFunc = func(args ...interface{}) ([]byte, error) {
	if len(args) <= 1 {
		return nil, fmt.Errorf("render: value is empty")
	}
	v := args[1]
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

// NewDefaultEventStream returns *EventStream with RenderJSONFunc and DefaultContentType
func NewDefaultEventStream(w http.ResponseWriter, r *http.Request) *EventStream {
	return NewEventStream(w, r, RenderJSONFunc, DefaultContentType)
}

// NewEventStream makes *EventStream and checks http.Flusher by type assertion.
func NewEventStream(w http.ResponseWriter, r *http.Request, renderFunc RenderFunc, ct string) *EventStream {
	es := &EventStream{
		request:     r,
		writer:      w,
		renderFunc:  renderFunc,
		contentType: ct,
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		es.err = fmt.Errorf("http: can't do chunked response")
	} else {
		es.flusher = flusher
	}

	return es
}

// Render make a chunked response by using RenderFunc and flush it.
func (s *EventStream) Render(args ...interface{}) {
	if s.err != nil {
		return
	}

	var bs []byte
	var renderArgs []interface{}
	renderArgs = append(renderArgs, "pre")
	renderArgs = append(renderArgs, args...)
	if payload, err := s.renderFunc(renderArgs...); err != nil {
		bs = s.errMessage(err)
	} else {
		bs = payload
	}

	if !s.rendered {
		s.writer.Header().Set("Content-Type", s.contentType)
		s.rendered = true
	}

	fmt.Fprintf(s.writer, "%s\n", bs)
	s.flusher.Flush()
}

// Run start observing events.
func (s *EventStream) Run(ob *observable.Observable, events ...string) {
	s.Start(ob, events...)()
}

// Start prepares for observing events and returns run func.
//
// In most case, Use Run instead of Start
func (s *EventStream) Start(ob *observable.Observable, events ...string) func() {
	if s.err != nil {
		http.Error(s.writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return func() {}
	}

	event := strings.Join(events, " ")
	msg := make(chan []byte)
	s.stop = make(chan struct{})

	onFunc := func(args ...interface{}) {
		var (
			payload []byte
			err     error
		)

		if len(args) > 1 {
			payload, err = s.renderFunc(args...)
		} else {
			var as []interface{}
			as = append(as, event)
			as = append(as, args...)
			payload, err = s.renderFunc(as...)
		}

		if err != nil {
			payload = s.errMessage(err)
		}
		select {
		case msg <- payload:
		case <-s.stop:
			return
		}
	}
	ob.On(event, onFunc)

	return func() {
		defer ob.Off(event, onFunc)

		for {
			select {
			case payload := <-msg:
				fmt.Fprintf(s.writer, "%s\n", payload)
				s.flusher.Flush()
			case <-s.request.Context().Done():
				close(s.stop)
				return
			}
		}
	}
}

func (s *EventStream) Stop() {
	close(s.stop)
}

func (s *EventStream) errMessage(err error) []byte {
	p := httputils.NewErrorProblem(err, httputils.StatusCode(err))
	b, err := json.Marshal(p)
	if err != nil {
		b = []byte{}
	}
	return b
}
