package interfaces

import "context"

// IReachability reports whether the remote backend should be attempted for
// the caller in ctx. Implementations never return errors: any failure
// means unreachable.
type IReachability interface {
	Probe(ctx context.Context) bool
}
