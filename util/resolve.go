package util

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	ErrMissingPort = errors.New("missing port")
	ErrNoAddress   = errors.New("no address of requested family")
)

// Resolver is the part of *net.Resolver needed to build socket addresses
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
	LookupPort(ctx context.Context, network, service string) (int, error)
}

// ResolveTCPAddr looks up hostPort and returns the first candidate of the requested
// family in resolution order. There is no fallback to the other family.
func ResolveTCPAddr(ctx context.Context, r Resolver, hostPort string, ipv6 bool) (addr *net.TCPAddr, err error) {
	host, port, err := net.SplitHostPort(hostPort)
	if err != nil {
		return nil, fmt.Errorf("socket address %q: %w", hostPort, err)
	}
	// An empty service resolves to port 0 in the standard resolver
	if port == "" {
		return nil, fmt.Errorf("socket address %q: %w", hostPort, ErrMissingPort)
	}

	portNum, err := r.LookupPort(ctx, "tcp", port)
	if err != nil {
		return nil, fmt.Errorf("socket address %q: %w", hostPort, err)
	}
	candidates, err := r.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, fmt.Errorf("socket address %q: %w", hostPort, err)
	}

	for _, c := range candidates {
		if IsIPv4(c.IP) == ipv6 {
			continue
		}
		addr = &net.TCPAddr{IP: c.IP, Port: portNum, Zone: c.Zone}
		return
	}

	return nil, fmt.Errorf("failed to get ip-address for %s: %w", hostPort, ErrNoAddress)
}

func IsIPv4(ip net.IP) bool {
	return len(ip.To4()) == net.IPv4len
}

func IsIPv6(address string) bool {
	ip := net.ParseIP(address)
	return ip != nil && !IsIPv4(ip)
}
