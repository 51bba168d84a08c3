package controllers

import (
	"net"
	"net/http"
	"strings"
)

// HeaderForwardedFor carries the client address followed by the proxies it
// passed through
const HeaderForwardedFor = "X-Forwarded-For"

// ParseForwardedFor splits a forwarding header into the originating client IP
// and the first proxy IP. Entries that are not present come back empty.
func ParseForwardedFor(value string) (sourceIP, proxyIP string) {
	if strings.TrimSpace(value) == "" {
		return "", ""
	}

	ips := strings.Split(value, ",")
	sourceIP = strings.TrimSpace(ips[0])
	if len(ips) > 1 {
		proxyIP = strings.TrimSpace(ips[1])
	}
	return sourceIP, proxyIP
}

// clientIP extracts the caller address from a local HTTP request, checking
// X-Forwarded-For first
func clientIP(r *http.Request) (sourceIP, proxyIP string) {
	sourceIP, proxyIP = ParseForwardedFor(r.Header.Get(HeaderForwardedFor))
	if sourceIP != "" {
		return sourceIP, proxyIP
	}

	// Check X-Real-IP header
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP, ""
	}

	// Fall back to RemoteAddr
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr, ""
	}
	return host, ""
}
