package util

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// FormatAddr returns "host:port".
func FormatAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

// IsDottedIPv4 reports whether s is a plain dotted-decimal IPv4 address
// such as "192.168.1.1".  IPv6 forms, IPv4-mapped IPv6 and hostnames
// are rejected.
func IsDottedIPv4(s string) bool {
	if strings.ContainsAny(s, ":%") {
		return false
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return false
	}
	return addr.Is4()
}

// PortOf returns the port of a TCP address, or 0 for anything else.
func PortOf(addr net.Addr) int {
	if ta, ok := addr.(*net.TCPAddr); ok {
		return ta.Port
	}
	return 0
}

// FindFreePort returns an available TCP port on 127.0.0.1.
func FindFreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("finding free port: %w", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}
