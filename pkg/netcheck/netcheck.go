// Package netcheck is the pre-flight connectivity probe used before issuing
// remote fetches.
package netcheck

import (
	"context"
	"net"
	"time"
)

type Checker interface {
	Online(ctx context.Context) bool
}

type dialChecker struct {
	addr    string
	timeout time.Duration
}

// NewDialChecker probes addr ("host:port") with a TCP dial. The zero addr
// defaults to a well-known public resolver.
func NewDialChecker(addr string, timeout time.Duration) Checker {
	if addr == "" {
		addr = "1.1.1.1:443"
	}
	if timeout == 0 {
		timeout = 2 * time.Second
	}
	return &dialChecker{addr: addr, timeout: timeout}
}

func (c *dialChecker) Online(ctx context.Context) bool {
	d := net.Dialer{Timeout: c.timeout}
	conn, err := d.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return false
	}
	_ = conn.Close() //nolint:errcheck
	return true
}

// Always reports a fixed answer; used in tests and when the probe is disabled.
type Always bool

func (a Always) Online(context.Context) bool { return bool(a) }
