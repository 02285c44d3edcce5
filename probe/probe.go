package probe

import (
	"context"
	"io"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/thetooth/zing/check"
	"github.com/thetooth/zing/config"
	"github.com/thetooth/zing/statistics"
	"github.com/thetooth/zing/util"
)

// headerPort is only used to resolve the host for the report header
const headerPort = "80"

// Prober runs probes sequentially and writes progress and summary lines to Out
type Prober struct {
	Connector check.Connector
	Resolver  util.Resolver
	Out       io.Writer
	Log       logrus.FieldLogger

	now func() time.Time
}

// Result is everything a run measured
type Result struct {
	ID      uuid.UUID
	Addr    *net.TCPAddr
	Samples []time.Duration
	Summary statistics.Summary
	Elapsed time.Duration
	Ops     int
}

// New returns a Prober using real TCP connections and the system resolver
func New(out io.Writer) *Prober {
	return &Prober{
		Connector: check.NewTCPer(),
		Resolver:  net.DefaultResolver,
		Out:       out,
		Log:       logrus.StandardLogger(),
		now:       time.Now,
	}
}

// Run probes every configured port in order and prints the summary over all samples.
func (p *Prober) Run(ctx context.Context, cfg config.Config) (r *Result, err error) {
	r = &Result{ID: uuid.New()}
	log := p.log().WithFields(logrus.Fields{"run": r.ID.String(), "host": cfg.Host})
	p = p.withLog(log)

	if util.IsIPv6(cfg.Host) && !cfg.Version.IPv6() {
		log.Warn("Host is an IPv6 address but IPv4 was requested, use -6")
	}

	r.Addr, err = util.ResolveTCPAddr(ctx, p.Resolver, net.JoinHostPort(cfg.Host, headerPort), cfg.Version.IPv6())
	if err != nil {
		return nil, err
	}

	ports := strings.Split(cfg.Ports, ",")
	p.reportHeader(cfg.Host, r.Addr, len(ports), cfg.Limit)
	log.Debug("[ RUN_START ] ports: ", ports, " timeout: ", cfg.Timeout.Duration)

	start := p.clock()()
	for _, port := range ports {
		var samples []time.Duration
		samples, err = p.RunPort(ctx, cfg.Host, port, cfg.Version, cfg.Count, cfg.Limit, cfg.Timeout.Duration)
		if err != nil {
			return nil, err
		}
		r.Samples = append(r.Samples, samples...)
	}
	r.Elapsed = p.clock()().Sub(start)

	r.Summary, err = statistics.Summarize(r.Samples)
	if err != nil {
		return nil, err
	}
	r.Ops = int(cfg.Count) * int(cfg.Limit) * len(ports)

	p.reportSummary(cfg.Host, r)
	log.Debug("[ RUN_DONE ] samples: ", len(r.Samples), " elapsed: ", r.Elapsed)

	return
}

func (p *Prober) log() logrus.FieldLogger {
	if p.Log == nil {
		return logrus.StandardLogger()
	}
	return p.Log
}

func (p *Prober) withLog(log logrus.FieldLogger) *Prober {
	c := *p
	c.Log = log
	return &c
}

func (p *Prober) clock() func() time.Time {
	if p.now == nil {
		return time.Now
	}
	return p.now
}
