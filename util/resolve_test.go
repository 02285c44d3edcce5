package util_test

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"

	"github.com/thetooth/zing/util"
)

type fakeResolver struct {
	addrs map[string][]net.IPAddr
	err   error
}

func (f fakeResolver) LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error) {
	if f.err != nil {
		return nil, f.err
	}
	addrs, ok := f.addrs[host]
	if !ok {
		return nil, &net.DNSError{Err: "no such host", Name: host, IsNotFound: true}
	}
	return addrs, nil
}

func (f fakeResolver) LookupPort(ctx context.Context, network, service string) (int, error) {
	return strconv.Atoi(service)
}

var dualStack = fakeResolver{addrs: map[string][]net.IPAddr{
	"dual.example": {
		{IP: net.ParseIP("2001:db8::1")},
		{IP: net.ParseIP("192.0.2.10")},
		{IP: net.ParseIP("2001:db8::2")},
		{IP: net.ParseIP("192.0.2.11")},
	},
	"v4only.example": {
		{IP: net.ParseIP("192.0.2.20")},
	},
	"v6only.example": {
		{IP: net.ParseIP("fe80::1"), Zone: "eth0"},
	},
}}

func TestResolveTCPAddrFamily(t *testing.T) {
	ctx := context.Background()

	addr, err := util.ResolveTCPAddr(ctx, dualStack, "dual.example:443", false)
	if err != nil {
		t.Fatal(err)
	}
	if addr.String() != "192.0.2.10:443" {
		t.Errorf("got %s want 192.0.2.10:443", addr)
	}

	addr, err = util.ResolveTCPAddr(ctx, dualStack, "dual.example:80", true)
	if err != nil {
		t.Fatal(err)
	}
	if addr.String() != "[2001:db8::1]:80" {
		t.Errorf("got %s want [2001:db8::1]:80", addr)
	}

	addr, err = util.ResolveTCPAddr(ctx, dualStack, "v6only.example:22", true)
	if err != nil {
		t.Fatal(err)
	}
	if addr.Zone != "eth0" {
		t.Errorf("zone not preserved: %s", addr)
	}
}

func TestResolveTCPAddrNoFallback(t *testing.T) {
	ctx := context.Background()
	cases := map[string]bool{
		"v4only.example:80": true,
		"v6only.example:80": false,
	}
	for hostPort, ipv6 := range cases {
		t.Run(hostPort, func(t *testing.T) {
			_, err := util.ResolveTCPAddr(ctx, dualStack, hostPort, ipv6)
			if !errors.Is(err, util.ErrNoAddress) {
				t.Fatalf("expected ErrNoAddress, got %v", err)
			}
		})
	}
}

func TestResolveTCPAddrErrors(t *testing.T) {
	ctx := context.Background()

	_, err := util.ResolveTCPAddr(ctx, dualStack, "dual.example:", false)
	if !errors.Is(err, util.ErrMissingPort) {
		t.Errorf("expected ErrMissingPort, got %v", err)
	}

	_, err = util.ResolveTCPAddr(ctx, dualStack, "dual.example", false)
	if err == nil {
		t.Error("expected error for address without port")
	}

	_, err = util.ResolveTCPAddr(ctx, dualStack, "missing.example:80", false)
	var dnsErr *net.DNSError
	if !errors.As(err, &dnsErr) {
		t.Errorf("expected wrapped DNS error, got %v", err)
	}
}

func TestResolveTCPAddrLiteral(t *testing.T) {
	addr, err := util.ResolveTCPAddr(context.Background(), net.DefaultResolver, "127.0.0.1:8080", false)
	if err != nil {
		t.Fatal(err)
	}
	if addr.String() != "127.0.0.1:8080" {
		t.Errorf("got %s want 127.0.0.1:8080", addr)
	}

	_, err = util.ResolveTCPAddr(context.Background(), net.DefaultResolver, "[::1]:8080", false)
	if !errors.Is(err, util.ErrNoAddress) {
		t.Errorf("expected ErrNoAddress for v6 literal with v4 preference, got %v", err)
	}
}

func TestIsIPv6(t *testing.T) {
	cases := map[string]bool{
		"127.0.0.1":        false,
		"::1":              true,
		"::ffff:192.0.2.1": false,
		"localhost":        false,
	}
	for in, want := range cases {
		if got := util.IsIPv6(in); got != want {
			t.Errorf("IsIPv6(%q) = %v want %v", in, got, want)
		}
	}
}
