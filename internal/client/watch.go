package client

import (
	"context"
	"errors"
	"sync"
	"time"
)

// SessionWatcher is a cancellable periodic task re-verifying the session
// token against the server. Polling is a stopgap for the missing push
// channel; the interval is configuration, not a constant.
type SessionWatcher struct {
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
}

// Stop cancels the watcher. Idempotent, and safe to call from the
// invalidation callback.
func (w *SessionWatcher) Stop() {
	w.stopOnce.Do(w.cancel)
}

// Done is closed once the watch loop has exited.
func (w *SessionWatcher) Done() <-chan struct{} {
	return w.done
}

// StartSessionWatch polls every interval, asking the server whether the
// current session token is still bound to a user. When the server says
// no, local session state is cleared, onInvalid (if non-nil) runs once,
// and the watcher exits. Transport errors are not invalidation; polling
// just continues. Starting a new watch replaces a previous one. Callers
// must Stop the watcher on teardown.
func (c *Client) StartSessionWatch(interval time.Duration, onInvalid func()) *SessionWatcher {
	if interval <= 0 {
		interval = time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &SessionWatcher{cancel: cancel, done: make(chan struct{})}

	c.mu.Lock()
	prev := c.watcher
	c.watcher = w
	c.mu.Unlock()
	if prev != nil {
		prev.Stop()
	}

	go c.watchLoop(ctx, w, interval, onInvalid)
	return w
}

func (c *Client) watchLoop(ctx context.Context, w *SessionWatcher, interval time.Duration, onInvalid func()) {
	defer close(w.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, err := c.VerifySession(ctx, c.SessionToken())
			if errors.Is(err, ErrSessionInvalid) {
				// Fresh context: clearSession cancels ctx via Stop.
				c.clearSession(context.Background())
				if onInvalid != nil {
					onInvalid()
				}
				return
			}
		}
	}
}
