package session

import (
	"context"
	"log/slog"

	"github.com/penguinmails/sessionkit/pkg/sessionstate"
)

// Init performs the once-per-lifetime initial session load. It never
// returns an error: nothing awaits it, so it communicates exclusively
// through state transitions.
//
// When the persisted hint is set and the client sits on a protected
// route, the store flips to pending before any network I/O so protected
// UI does not flash an unauthenticated view. A single session check then
// settles things:
//
//   - identity confirmed: transition to authenticated, and if the client
//     is on a public route, navigate to the "next" target or the default
//     protected path;
//   - no session while on a public or unclassified route: transition to
//     unauthenticated and clear the hint;
//   - no session while on a protected route with the optimistic pending
//     state: keep it and hand the decision to the background poller
//     rather than immediately bouncing a user who may simply be racing
//     cookie propagation.
//
// Network errors during the check are treated the same as "no session";
// retrying is the poller's job, not the loader's. Calls after the first
// are no-ops.
func (r *Reconciler) Init(ctx context.Context) {
	r.mu.Lock()
	if r.initialized {
		r.mu.Unlock()
		return
	}
	r.initialized = true
	r.mu.Unlock()

	location := r.nav.CurrentPath()
	protected := r.matcher.IsProtected(location)

	if protected && r.hint(ctx) {
		r.store.Transition(sessionstate.Pending(""))
	}

	identity, err := r.provider.CheckSession(ctx)
	if err != nil {
		r.logger.Debug("initial session check failed", slog.Any("error", err))
	}

	if identity != nil {
		r.store.Transition(sessionstate.Authenticated(*identity))
		if r.matcher.IsPublic(location) {
			target := r.matcher.NextTarget(location, r.cfg.DefaultProtectedPath)
			if err := r.nav.Navigate(ctx, target); err != nil {
				r.logger.Error("post-init navigation failed",
					slog.String("target", target),
					slog.Any("error", err),
				)
			}
		}
		return
	}

	if !protected {
		r.store.Transition(sessionstate.Unauthenticated())
		r.clearHint(ctx)
		return
	}

	// Protected route, session not confirmed. If the hint put us in the
	// optimistic pending state, let the poller confirm or revert it;
	// otherwise the store is already unauthenticated and stays there.
	if r.store.Current().IsPending() {
		r.startPoller(r.cfg.DefaultProtectedPath)
	}
}
