package judgment

import (
	"errors"
	"fmt"
)

// ErrUnavailable matches every failed remote call via errors.Is.
var ErrUnavailable = errors.New("saos api unavailable")

// FailureKind classifies why a remote call produced no usable result.
type FailureKind string

const (
	FailureNone       FailureKind = ""
	FailureNetwork    FailureKind = "network_error"
	FailureTimeout    FailureKind = "timeout"
	FailureHTTPStatus FailureKind = "http_status"
	FailureDecode     FailureKind = "decode_error"
)

// UnavailableError is returned by an Executor when the remote could not be
// reached, timed out, answered with a non-2xx status or an undecodable body.
type UnavailableError struct {
	Kind       FailureKind
	StatusCode int
	Path       string
	Err        error
}

func (e *UnavailableError) Error() string {
	switch {
	case e.Kind == FailureHTTPStatus:
		return fmt.Sprintf("%s: GET %s: unexpected status %d", ErrUnavailable, e.Path, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: GET %s: %s: %v", ErrUnavailable, e.Path, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: GET %s: %s", ErrUnavailable, e.Path, e.Kind)
	}
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is makes every UnavailableError match ErrUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

// KindOf returns the failure kind carried by err, FailureNone for nil and
// FailureNetwork for errors that are not UnavailableError.
func KindOf(err error) FailureKind {
	if err == nil {
		return FailureNone
	}
	var unavailable *UnavailableError
	if errors.As(err, &unavailable) {
		return unavailable.Kind
	}
	return FailureNetwork
}
