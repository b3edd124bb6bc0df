package session

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stride-xr/stride/game"
)

// Run drives the session at the given refresh rate until the context is
// cancelled, for headless simulation and the examples. A compositor-hosted
// session should call Update from its own frame callback instead.
func (s *Session) Run(ctx context.Context, refreshRate int) {
	defer sentry.Recover()

	if refreshRate <= 0 {
		refreshRate = game.DefaultRefreshRate
	}

	ticker := time.NewTicker(time.Second / time.Duration(refreshRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Update()
		}
	}
}
