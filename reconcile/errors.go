package reconcile

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/oliveplate/oliveplate/api"
)

// ErrMutationInFlight is returned when a second mutation is issued for
// a (kind, id) pair whose previous mutation has not settled. Rapid
// double-invocation must cost exactly one network call.
var ErrMutationInFlight = errors.New("mutation already in flight for this target")

// FailureKind partitions mutation failures by propagation rule.
type FailureKind int

const (
	// FailureRejected is a validation or authorization refusal; no
	// cache mutation occurred and retrying without change won't help.
	FailureRejected FailureKind = iota
	// FailureNotFound means the target no longer exists server-side.
	FailureNotFound
	// FailureTransport means no usable response arrived; the mutation
	// may be retried as if it never happened.
	FailureTransport
)

// Failure is the normalized mutation outcome surfaced to views.
// Views inspect this, never raw transport errors.
type Failure struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("mutation failed (%s): %s", f.kindString(), f.Message)
}

func (f *Failure) Unwrap() error { return f.Err }

// Retryable reports whether the failure is transient.
func (f *Failure) Retryable() bool { return f.Kind == FailureTransport }

func (f *Failure) kindString() string {
	switch f.Kind {
	case FailureRejected:
		return "rejected"
	case FailureNotFound:
		return "not found"
	case FailureTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// classify maps a raw client error to its failure kind. Classification
// happens here once; converged-state detection is separate because it
// depends on which end state the mutator was driving toward.
func classify(err error) *Failure {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Status == http.StatusNotFound {
			return &Failure{Kind: FailureNotFound, Message: apiErr.Message, Err: err}
		}
		return &Failure{Kind: FailureRejected, Message: apiErr.Message, Err: err}
	}
	return &Failure{Kind: FailureTransport, Message: "service unreachable, retry later", Err: err}
}

// convergedOn reports whether err is the server telling us the desired
// end state already holds, identified by a fragment of its message
// (e.g. "already following"). Such refusals normalize to success.
func convergedOn(err error, fragment string) bool {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Status != http.StatusBadRequest && apiErr.Status != http.StatusConflict {
		return false
	}
	return strings.Contains(strings.ToLower(apiErr.Message), fragment)
}
