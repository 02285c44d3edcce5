package check

import (
	"context"
	"errors"
	"net"
	"time"
)

var (
	ErrConnect  = errors.New("failed to connect")
	ErrShutdown = errors.New("failure closing socket")
)

// Connector times a single connection attempt against a resolved address
type Connector interface {
	Connect(ctx context.Context, addr *net.TCPAddr, timeout time.Duration) (time.Duration, error)
}
