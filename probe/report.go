package probe

import (
	"fmt"
	"net"
	"time"

	"github.com/thetooth/zing/statistics"
)

func (p *Prober) reportHeader(host string, addr *net.TCPAddr, ports int, limit uint16) {
	fmt.Fprintf(p.Out, "\nZING: %s (%s) %d ports used, %d ops per cycle.\n\n", host, addr.IP, ports, limit)
}

func (p *Prober) reportCycle(port, host string, addr *net.TCPAddr, avg time.Duration) {
	fmt.Fprintf(p.Out, "ZING: Port: %-5s %s [%s] Time: %.3f-ms. \n", port, host, addr.IP, statistics.Millis(avg))
}

func (p *Prober) reportSummary(host string, r *Result) {
	s := r.Summary
	fmt.Fprintf(p.Out, "\n---- zing summary for %s/%s ----\n", host, r.Addr.IP)
	fmt.Fprintf(p.Out, "%d total ops used; total time: %.3f-ms\n", r.Ops, statistics.Millis(r.Elapsed))
	fmt.Fprintf(p.Out, "total-time min/avg/max/stddev = %.3f/%.3f/%.3f/%.3f ms\n\n",
		statistics.Millis(s.Min), statistics.Millis(s.Mean), statistics.Millis(s.Max), statistics.Millis(s.StdDev))
}
