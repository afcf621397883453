// Package probe answers whether the remote backend can serve the current caller.
package probe

import (
	"context"
	"time"

	"installer_crm/internal/identity"
	"installer_crm/internal/platform/logger"
	"installer_crm/internal/usecase/interfaces"
)

const defaultTimeout = 2 * time.Second

// Pinger issues a cheap authenticated read scoped to an owner.
type Pinger interface {
	Ping(ctx context.Context, ownerID string) error
}

// RemoteProbe reports reachable only when the caller is identified and a
// ping against the remote succeeds within the timeout.
type RemoteProbe struct {
	pinger  Pinger
	timeout time.Duration
	log     *logger.Logger
}

var _ interfaces.IReachability = (*RemoteProbe)(nil)

func NewRemoteProbe(pinger Pinger, timeout time.Duration, log *logger.Logger) *RemoteProbe {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &RemoteProbe{pinger: pinger, timeout: timeout, log: log}
}

// Probe never returns an error; any failure means unreachable.
func (p *RemoteProbe) Probe(ctx context.Context) bool {
	owner, ok := identity.Owner(ctx)
	if !ok || p.pinger == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	if err := p.pinger.Ping(ctx, owner); err != nil {
		p.log.Debug("remote probe failed", "error", err)
		return false
	}
	return true
}

// Disabled is the probe used when the remote backend is switched off.
type Disabled struct{}

func (Disabled) Probe(context.Context) bool { return false }
