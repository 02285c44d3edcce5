package check

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"
)

func NewTCPer() *TCPer {
	return &TCPer{now: time.Now}
}

// TCPer measures how long it takes to establish and tear down a TCP connection.
// No payload is exchanged.
type TCPer struct {
	now func() time.Time
}

// Connect dials addr, shuts the connection down in both directions and returns the
// time elapsed between the dial and the completed shutdown, truncated to microseconds.
func (t *TCPer) Connect(ctx context.Context, addr *net.TCPAddr, timeout time.Duration) (rtt time.Duration, err error) {
	dialer := &net.Dialer{Timeout: timeout}

	start := t.now()
	conn, err := dialer.DialContext(ctx, "tcp", addr.String())
	if err != nil {
		return 0, fmt.Errorf("%w to %v: %v", ErrConnect, addr, err)
	}

	if err = shutdown(conn.(*net.TCPConn)); err != nil {
		conn.Close()
		return 0, fmt.Errorf("%w to %v: %v", ErrShutdown, addr, err)
	}
	rtt = t.now().Sub(start).Truncate(time.Microsecond)

	if err = conn.Close(); err != nil {
		return 0, fmt.Errorf("%w to %v: %v", ErrShutdown, addr, err)
	}

	logrus.Trace("CONNECT: ", addr, " ", rtt)
	return
}

func shutdown(conn *net.TCPConn) (err error) {
	if err = conn.CloseWrite(); err != nil {
		return
	}
	return conn.CloseRead()
}
