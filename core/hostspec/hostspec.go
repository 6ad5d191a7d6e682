// Package hostspec parses host connection strings of the form
// user@host[:port]. Parsing only — resolution and connecting belong to the
// execution engine.
package hostspec

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec is a parsed host string. Zero-value fields mean "not given"; the
// engine fills defaults (current user, port 22) from its settings.
type Spec struct {
	User string
	Host string
	Port int
}

// Parse splits a user@host[:port] string. The username may itself contain
// '@' (e.g. an email-style login), so the split happens at the last '@'.
// Bracketed IPv6 literals are supported for the host part.
func Parse(s string) (Spec, error) {
	var spec Spec
	rest := s
	if i := strings.LastIndex(rest, "@"); i >= 0 {
		spec.User = rest[:i]
		rest = rest[i+1:]
	}
	if rest == "" {
		return Spec{}, fmt.Errorf("host string %q has no host part", s)
	}

	host, port, err := splitPort(rest)
	if err != nil {
		return Spec{}, fmt.Errorf("host string %q: %w", s, err)
	}
	spec.Host = host
	spec.Port = port
	return spec, nil
}

// splitPort peels a trailing :port off a host, leaving bracketed IPv6
// literals and bare IPv6 addresses intact.
func splitPort(s string) (host string, port int, err error) {
	if strings.HasPrefix(s, "[") {
		end := strings.Index(s, "]")
		if end < 0 {
			return "", 0, fmt.Errorf("unmatched '[' in host")
		}
		host = s[1:end]
		rest := s[end+1:]
		if rest == "" {
			return host, 0, nil
		}
		if !strings.HasPrefix(rest, ":") {
			return "", 0, fmt.Errorf("unexpected %q after bracketed host", rest)
		}
		port, err = parsePort(rest[1:])
		return host, port, err
	}

	i := strings.LastIndex(s, ":")
	if i < 0 || strings.Count(s, ":") > 1 {
		// No port, or a bare IPv6 address.
		return s, 0, nil
	}
	port, err = parsePort(s[i+1:])
	if err != nil {
		return "", 0, err
	}
	return s[:i], port, nil
}

func parsePort(s string) (int, error) {
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return 0, fmt.Errorf("invalid port %q", s)
	}
	return p, nil
}

// String reassembles the spec into user@host:port form, omitting empty parts
// and bracketing IPv6 hosts when a port is present.
func (s Spec) String() string {
	host := s.Host
	if s.Port != 0 && strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	var b strings.Builder
	if s.User != "" {
		b.WriteString(s.User)
		b.WriteString("@")
	}
	b.WriteString(host)
	if s.Port != 0 {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(s.Port))
	}
	return b.String()
}
