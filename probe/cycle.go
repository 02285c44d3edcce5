package probe

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/thetooth/zing/check"
	"github.com/thetooth/zing/config"
	"github.com/thetooth/zing/util"
)

// ErrZeroLimit is returned for a cycle with no connection attempts to average
var ErrZeroLimit = errors.New("ops per cycle must be at least 1")

// RunCycle connects to addr limit times in sequence and returns the average
// elapsed time. The first failed attempt aborts the cycle.
func RunCycle(ctx context.Context, c check.Connector, limit uint16, addr *net.TCPAddr, timeout time.Duration) (avg time.Duration, err error) {
	if limit == 0 {
		return 0, ErrZeroLimit
	}

	var total time.Duration
	for i := uint16(0); i < limit; i++ {
		var rtt time.Duration
		rtt, err = c.Connect(ctx, addr, timeout)
		if err != nil {
			return 0, err
		}
		total += rtt
	}

	avg = (total / time.Duration(limit)).Truncate(time.Microsecond)
	return
}

// RunPort resolves host:port once and runs count cycles against it, reporting
// each cycle as soon as it completes. Samples are returned in cycle order.
func (p *Prober) RunPort(ctx context.Context, host, port string, version config.Family, count, limit uint16, timeout time.Duration) (samples []time.Duration, err error) {
	addr, err := util.ResolveTCPAddr(ctx, p.Resolver, net.JoinHostPort(host, port), version.IPv6())
	if err != nil {
		return
	}
	log := p.log().WithField("addr", addr.String())
	log.Debug("[ PORT_START ] cycles: ", count, " ops: ", limit)

	samples = make([]time.Duration, 0, count)
	for i := uint16(0); i < count; i++ {
		var avg time.Duration
		avg, err = RunCycle(ctx, p.Connector, limit, addr, timeout)
		if err != nil {
			log.WithField("cycle", i+1).Debug("[ CYCLE_FAIL ] ", err)
			return nil, err
		}
		samples = append(samples, avg)
		p.reportCycle(port, host, addr, avg)
	}

	return
}
