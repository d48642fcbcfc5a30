// Package raw is the minimal env reader used during bootstrap.
// It must never depend on the logger package, which reads its own
// configuration through here
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a namespaced view over environment variables
type Conf struct{ prefix string }

// New returns a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix returns a child Conf with an additional prefix (e.g. "LOG_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) read(key string) string {
	return strings.TrimSpace(os.Getenv(c.prefix + key))
}

// Get returns the trimmed env var, def when unset
func (c Conf) Get(key, def string) string {
	if v := c.read(key); v != "" {
		return v
	}
	return def
}

// GetBool treats "1", "true" and "yes" as true, anything else as false,
// def when unset
func (c Conf) GetBool(key string, def bool) bool {
	v := strings.ToLower(c.read(key))
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "yes"
}

// GetInt parses a non-negative integer, def when unset or malformed
func (c Conf) GetInt(key string, def int) int {
	s := c.read(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
