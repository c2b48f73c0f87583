package app

import (
	"context"
	"time"
)

const defaultPollInterval = 30 * time.Second

// StartPoller launches a background goroutine that calls refresh at a
// fixed cadence until ctx is cancelled. The first call fires
// immediately. It returns right away.
func StartPoller(ctx context.Context, interval time.Duration, refresh func(context.Context)) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			refresh(ctx)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// StartBackground launches the pollers an authenticated session keeps
// running: vehicle positions for the live map and the unread
// notification badge. Both fetches are silent on failure.
func (a *App) StartBackground(ctx context.Context) {
	interval := a.Config.PollInterval
	StartPoller(ctx, interval, func(ctx context.Context) {
		if !a.Session.IsAuthenticated() {
			return
		}
		a.Dashboard.FetchPositions(ctx)
	})
	StartPoller(ctx, interval, func(ctx context.Context) {
		if !a.Session.IsAuthenticated() {
			return
		}
		a.Notifications.FetchUnreadCount(ctx)
	})
}
