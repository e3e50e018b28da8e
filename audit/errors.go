package audit

import (
	"errors"
	"fmt"
)

// Collaborators wrap these so the service can classify a failure.
var (
	ErrUpstream  = errors.New("upstream failure")
	ErrMalformed = errors.New("malformed response")
)

type Step string

const (
	StepFetch      Step = "fetch"
	StepSearch     Step = "search"
	StepCompletion Step = "completion"
)

type Kind string

const (
	KindUpstream  Kind = "upstream"
	KindMalformed Kind = "malformed"
)

// classifiedError tags a cause with ErrUpstream or ErrMalformed without adding
// the sentinel text to the message.
type classifiedError struct {
	sentinel error
	err      error
}

func (e *classifiedError) Error() string {
	return e.err.Error()
}

func (e *classifiedError) Unwrap() []error {
	return []error{e.sentinel, e.err}
}

// Upstream marks err as a network or vendor failure
func Upstream(err error) error {
	return &classifiedError{sentinel: ErrUpstream, err: err}
}

func Upstreamf(format string, args ...any) error {
	return Upstream(fmt.Errorf(format, args...))
}

// Malformedf reports a response that could not be decoded or lacks a field
func Malformedf(format string, args ...any) error {
	return &classifiedError{sentinel: ErrMalformed, err: fmt.Errorf(format, args...)}
}

// Failure is the single error type returned by Service.Audit.
//
// Kind separates vendor/network failures from malformed responses, but the HTTP
// layer renders both the same way. The message is the cause alone; Step and
// Kind go to logs and metrics.
type Failure struct {
	Step Step
	Kind Kind
	Err  error
}

func (f *Failure) Error() string {
	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func newFailure(step Step, err error) *Failure {
	kind := KindUpstream
	if errors.Is(err, ErrMalformed) {
		kind = KindMalformed
	}
	return &Failure{Step: step, Kind: kind, Err: err}
}
