package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/penguinmails/sessionkit/pkg/hintstore"
	"github.com/penguinmails/sessionkit/pkg/logger"
	"github.com/penguinmails/sessionkit/pkg/routes"
	"github.com/penguinmails/sessionkit/pkg/sessionstate"
)

// Reconciler bridges the gap between the identity provider's
// eventually-consistent server-side session and the client's need for an
// immediate, consistent notion of "who is logged in". It owns the session
// state store, the persisted login hint, and the single background poller
// allowed to reconcile an optimistic state against ground truth.
//
// Construct one Reconciler at application start and keep it for the
// process lifetime; it is torn down never and reset only via Logout.
type Reconciler struct {
	provider  IdentityProvider
	nav       Navigator
	store     *sessionstate.Store
	hints     hintstore.Store
	matcher   *routes.Matcher
	cfg       Config
	logger    *slog.Logger
	exhausted func()

	mu          sync.Mutex
	initialized bool
	active      *poller
}

// Option configures a Reconciler during construction.
type Option func(*Reconciler)

// WithConfig replaces the default engine configuration. Unset fields fall
// back to DefaultConfig values.
func WithConfig(cfg Config) Option {
	return func(r *Reconciler) { r.cfg = cfg }
}

// WithLogger sets the engine logger. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reconciler) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithHintStore sets the persisted hint backend. Defaults to an in-memory
// store, which effectively disables cross-restart optimism.
func WithHintStore(s hintstore.Store) Option {
	return func(r *Reconciler) {
		if s != nil {
			r.hints = s
		}
	}
}

// WithStateStore injects a pre-built state store, e.g. one already wired
// to UI subscribers before the engine exists.
func WithStateStore(s *sessionstate.Store) Option {
	return func(r *Reconciler) {
		if s != nil {
			r.store = s
		}
	}
}

// WithExhaustedHook registers a callback invoked when a poller runs out
// of attempts without confirming a session. The state transition to
// unauthenticated has already happened when the hook runs.
func WithExhaustedHook(fn func()) Option {
	return func(r *Reconciler) { r.exhausted = fn }
}

// New creates a session reconciler for the given identity provider and
// router.
func New(provider IdentityProvider, nav Navigator, opts ...Option) *Reconciler {
	r := &Reconciler{
		provider: provider,
		nav:      nav,
		cfg:      DefaultConfig(),
		logger:   logger.Discard(),
	}

	for _, opt := range opts {
		opt(r)
	}

	r.cfg = r.cfg.withDefaults()
	if r.store == nil {
		r.store = sessionstate.New()
	}
	if r.hints == nil {
		r.hints = hintstore.NewMemoryStore()
	}
	r.matcher = routes.NewMatcher(r.cfg.ProtectedRoutes, r.cfg.PublicRoutes)

	return r
}

// State returns the current session state.
func (r *Reconciler) State() sessionstate.State {
	return r.store.Current()
}

// IsAuthenticated reports whether the current state carries a confirmed
// identity.
func (r *Reconciler) IsAuthenticated() bool {
	return r.store.Current().IsAuthenticated()
}

// Subscribe registers fn for synchronous notification on every state
// transition and returns an unsubscribe function. This is where consumers
// hook RBAC/tenant context loading: observe the transition to
// authenticated and reload from there.
//
// Poller-driven transitions notify while the engine lock is held, so fn
// must not call back into Login, Logout, Init, or Close; reading State
// and the store is always safe.
func (r *Reconciler) Subscribe(fn func(sessionstate.State)) func() {
	return r.store.Subscribe(fn)
}

// Close cancels any active poller. For clean client shutdown; the engine
// itself remains usable afterwards.
func (r *Reconciler) Close() error {
	r.cancelActivePoller()
	return nil
}

func (r *Reconciler) cancelActivePoller() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.active != nil {
		r.active.cancel()
		r.active = nil
	}
}

// hint reads the persisted flag, treating any store failure as "absent".
// An incorrect pessimistic answer only costs a flash of the login page;
// an incorrect optimistic one would show protected UI to a stranger.
func (r *Reconciler) hint(ctx context.Context) bool {
	v, err := r.hints.Get(ctx)
	if err != nil {
		r.logger.Warn("hint read failed, assuming absent", slog.Any("error", err))
		return false
	}
	return v
}

func (r *Reconciler) setHint(ctx context.Context) {
	if err := r.hints.Set(ctx, true); err != nil {
		r.logger.Warn("hint write failed", slog.Any("error", err))
	}
}

func (r *Reconciler) clearHint(ctx context.Context) {
	if err := r.hints.Clear(ctx); err != nil {
		r.logger.Warn("hint clear failed", slog.Any("error", err))
	}
}
