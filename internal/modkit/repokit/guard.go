package repokit

import (
	"context"
	"fmt"
	"time"
)

const pingTimeout = 5 * time.Second

type guarder interface {
	Guard(context.Context) error
}

// MustPing panics when a single dependency does not answer a Ping in time
func MustPing(ctx context.Context, name string, p interface{ Ping(context.Context) error }) {
	if p == nil {
		panic(fmt.Sprintf("%s: nil dependency", name))
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pingTimeout)
		defer cancel()
	}
	if err := p.Ping(ctx); err != nil {
		panic(fmt.Sprintf("%s ping failed: %v", name, err))
	}
}

// MustGuard runs the store's Guard and panics on any failure. Binaries call
// it right after opening the store so a dead backend fails fast at startup
func MustGuard(ctx context.Context, st guarder) {
	if err := st.Guard(ctx); err != nil {
		panic(fmt.Errorf("dependency guard failed: %w", err))
	}
}
