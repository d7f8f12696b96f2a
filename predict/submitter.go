package predict

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"nyiyui.ca/flight-delay/form"
)

// ErrInFlight is returned when a key submits again before its previous request has
// finished.
var ErrInFlight = &form.ValidationError{ID: form.MsgInFlight}

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// State is the outcome of one submission.
type State struct {
	Status  Status
	Payload form.Payload
	Result  *Result
	Err     error
}

// Message is the text to show for a failed submission.
func (s State) Message() string {
	return Describe(s.Err)
}

// Predictor is implemented by *Client.
type Predictor interface {
	Predict(ctx context.Context, p form.Payload) (*Result, error)
}

// Submitter runs submissions and makes sure each key has at most one request
// outstanding. Keys go back to idle once their submission finishes.
type Submitter struct {
	predictor Predictor
	codes     form.Codes

	lock     sync.Mutex
	inFlight map[string]struct{}
}

func NewSubmitter(predictor Predictor, codes form.Codes) *Submitter {
	return &Submitter{
		predictor: predictor,
		codes:     codes,
		inFlight:  map[string]struct{}{},
	}
}

func (s *Submitter) Codes() form.Codes {
	return s.codes
}

// Status reports whether key has a request outstanding.
func (s *Submitter) Status(key string) Status {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.inFlight[key]; ok {
		return StatusSubmitting
	}
	return StatusIdle
}

// Submit validates f and, if it passes, sends one prediction request. f is not
// modified, so a failed submission can be corrected and sent again.
func (s *Submitter) Submit(ctx context.Context, key string, f form.Fields) State {
	return s.run(ctx, key, func() (form.Payload, error) {
		return f.Payload(s.codes)
	})
}

// SubmitPayload is Submit for a request body that is already in wire format.
func (s *Submitter) SubmitPayload(ctx context.Context, key string, p form.Payload) State {
	return s.run(ctx, key, func() (form.Payload, error) {
		p = p.Upper()
		if err := p.Validate(s.codes); err != nil {
			return form.Payload{}, err
		}
		return p, nil
	})
}

func (s *Submitter) run(ctx context.Context, key string, build func() (form.Payload, error)) State {
	if !s.begin(key) {
		return State{Status: StatusFailed, Err: ErrInFlight}
	}
	defer s.end(key)

	p, err := build()
	if err != nil {
		return State{Status: StatusFailed, Err: err}
	}
	res, err := s.predictor.Predict(ctx, p)
	if err != nil {
		return State{Status: StatusFailed, Payload: p, Err: err}
	}
	return State{Status: StatusSucceeded, Payload: p, Result: res}
}

func (s *Submitter) begin(key string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.inFlight[key]; ok {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Submitter) end(key string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.inFlight, key)
}

// IsValidation reports whether err was raised before any request was sent.
func IsValidation(err error) bool {
	var ve *form.ValidationError
	return errors.As(err, &ve)
}
