package store

import (
	"context"
	"errors"

	"installer_crm/internal/identity"
	"installer_crm/internal/usecase/interfaces"
)

// ErrUnreachable is the cause reported when the remote was not attempted:
// anonymous caller, remote disabled, or a failed probe.
var ErrUnreachable = errors.New("remote backend unreachable")

// Result is the outcome of one remote attempt.
type Result[R any] struct {
	value R
	err   error
}

// Attempt probes reachability and, when reachable, runs call with the
// caller's owner id. It never panics on a nil probe.
func Attempt[R any](ctx context.Context, probe interfaces.IReachability, call func(ctx context.Context, ownerID string) (R, error)) Result[R] {
	owner, ok := identity.Owner(ctx)
	if !ok || probe == nil || !probe.Probe(ctx) {
		return Result[R]{err: ErrUnreachable}
	}
	v, err := call(ctx, owner)
	if err != nil {
		return Result[R]{err: err}
	}
	return Result[R]{value: v}
}

func (r Result[R]) OK() bool { return r.err == nil }

func (r Result[R]) Err() error { return r.err }

// Value returns the remote value; it is the zero value when the attempt failed.
func (r Result[R]) Value() R { return r.value }

// OrElse returns the remote value, or the result of local when the attempt failed.
func (r Result[R]) OrElse(local func(cause error) R) R {
	if r.err == nil {
		return r.value
	}
	return local(r.err)
}

// unreachable is the probe used when no remote backend is configured.
type unreachable struct{}

func (unreachable) Probe(context.Context) bool { return false }
