package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/penguinmails/sessionkit/pkg/sessionstate"
)

// poller is one generation of background reconciliation. Its context is
// the cancellation token: cooperative, idempotent, checked before each
// attempt. An in-flight session check cannot be aborted, but its result
// is discarded once the token is cancelled or the generation is replaced.
type poller struct {
	cancelFn context.CancelFunc
}

func (p *poller) cancel() {
	p.cancelFn()
}

// startPoller spawns a new reconciliation poller aimed at target,
// cancelling any predecessor first. At most one poller is ever active
// against the store.
func (r *Reconciler) startPoller(target string) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &poller{cancelFn: cancel}

	r.mu.Lock()
	if r.active != nil {
		r.active.cancel()
	}
	r.active = p
	r.mu.Unlock()

	go r.poll(ctx, p, target)
}

// finishAsActive runs fn under the engine lock, but only if p is still
// the active generation and its token is uncancelled; fn then atomically
// detaches p. The check and the mutation form one critical section, so a
// generation that Logout or a newer login has already detached can never
// write: its replacement nulls r.active under the same lock before
// performing its own mutations. Reports whether fn ran.
func (r *Reconciler) finishAsActive(ctx context.Context, p *poller, fn func()) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != p || ctx.Err() != nil {
		return false
	}
	fn()
	r.active = nil
	return true
}

// poll confirms or corrects the optimistic pending state against ground
// truth. It performs at most cfg.PollAttempts session checks at fixed
// cfg.PollInterval spacing, after an initial delay that gives the
// provider's cookie a chance to propagate before the first check.
func (r *Reconciler) poll(ctx context.Context, p *poller, target string) {
	defer func() {
		r.mu.Lock()
		if r.active == p {
			r.active = nil
		}
		r.mu.Unlock()
	}()

	if r.cfg.PollInitialDelay > 0 {
		select {
		case <-time.After(r.cfg.PollInitialDelay):
		case <-ctx.Done():
			return
		}
	}

	backoff := retry.WithMaxRetries(
		uint64(r.cfg.PollAttempts-1),
		retry.NewConstant(r.cfg.PollInterval),
	)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if !r.store.Current().IsPending() {
			// A manual transition or a later generation already resolved
			// the session; stop silently.
			return nil
		}

		identity, err := r.provider.CheckSession(ctx)
		if err != nil {
			return retry.RetryableError(err)
		}
		if identity == nil {
			return retry.RetryableError(ErrSessionAbsent)
		}

		if !r.finishAsActive(ctx, p, func() {
			r.store.Transition(sessionstate.Authenticated(*identity))
		}) {
			// Cancelled or superseded while the check was in flight;
			// discard the result.
			return nil
		}

		// The user may have been bounced to a public page before
		// confirmation landed; steer them back to the login target.
		if r.store.Current().IsAuthenticated() && r.matcher.IsPublic(r.nav.CurrentPath()) {
			if nerr := r.nav.Navigate(ctx, target); nerr != nil {
				r.logger.Error("corrective navigation failed",
					slog.String("target", target),
					slog.Any("error", nerr),
				)
			}
		}
		return nil
	})

	if err == nil || ctx.Err() != nil {
		return
	}

	// Retry budget exhausted without confirmation: the optimistic login
	// did not stick. Revert and let the UI react to the state change;
	// exhaustion is a UX timeout, not an error anyone is awaiting.
	reverted := false
	r.finishAsActive(ctx, p, func() {
		if !r.store.Current().IsPending() {
			return
		}
		r.clearHint(context.Background())
		r.store.Transition(sessionstate.Unauthenticated())
		reverted = true
	})
	if !reverted {
		return
	}

	r.logger.Info("session reconciliation exhausted",
		slog.Int("attempts", r.cfg.PollAttempts),
		slog.Any("last_error", err),
	)
	if r.exhausted != nil {
		r.exhausted()
	}
}
