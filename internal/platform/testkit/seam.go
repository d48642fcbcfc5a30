package testkit

import (
	"sync"
	"testing"
)

// serialMu guards tests that rewrite package-level seams
var serialMu sync.Mutex

// Swap replaces a package-level variable for the duration of a test and
// restores the original on cleanup
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a global lock for the whole test so seam-mutating tests
// cannot interleave. Pair it with Swap
func Serial(t *testing.T) {
	t.Helper()
	serialMu.Lock()
	t.Cleanup(serialMu.Unlock)
}
