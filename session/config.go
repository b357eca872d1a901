package session

import "time"

// Config holds the engine's tunables. Zero values are never used
// directly; New falls back to DefaultConfig for anything unset.
type Config struct {
	// PollAttempts bounds how many session checks one poller performs
	// before giving up and reverting to unauthenticated.
	PollAttempts int `env:"SESSION_POLL_ATTEMPTS" envDefault:"15"`
	// PollInterval is the fixed delay between poll attempts.
	PollInterval time.Duration `env:"SESSION_POLL_INTERVAL" envDefault:"1s"`
	// PollInitialDelay runs before the first attempt, giving the identity
	// provider's cookie a chance to propagate.
	PollInitialDelay time.Duration `env:"SESSION_POLL_INITIAL_DELAY" envDefault:"500ms"`

	// ProtectedRoutes may be shown optimistically while a login is still
	// being confirmed. Trailing "*" segments match any suffix.
	ProtectedRoutes []string `env:"SESSION_PROTECTED_ROUTES" envDefault:"/dashboard/*" envSeparator:","`
	// PublicRoutes are where a confirmed user gets redirected away from.
	PublicRoutes []string `env:"SESSION_PUBLIC_ROUTES" envDefault:"/,/login,/signup" envSeparator:","`

	// DefaultProtectedPath is the post-login target when the location
	// carries no usable "next" parameter.
	DefaultProtectedPath string `env:"SESSION_DEFAULT_PROTECTED_PATH" envDefault:"/dashboard"`
	// HomePath is where logout lands.
	HomePath string `env:"SESSION_HOME_PATH" envDefault:"/"`
}

// DefaultConfig returns the engine defaults: 15 attempts at 1s intervals
// after a 500ms initial delay, dashboard routes protected.
func DefaultConfig() Config {
	return Config{
		PollAttempts:         15,
		PollInterval:         time.Second,
		PollInitialDelay:     500 * time.Millisecond,
		ProtectedRoutes:      []string{"/dashboard/*"},
		PublicRoutes:         []string{"/", "/login", "/signup"},
		DefaultProtectedPath: "/dashboard",
		HomePath:             "/",
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.PollAttempts <= 0 {
		c.PollAttempts = def.PollAttempts
	}
	if c.PollInterval <= 0 {
		c.PollInterval = def.PollInterval
	}
	if c.PollInitialDelay < 0 {
		c.PollInitialDelay = def.PollInitialDelay
	}
	if len(c.ProtectedRoutes) == 0 {
		c.ProtectedRoutes = def.ProtectedRoutes
	}
	if len(c.PublicRoutes) == 0 {
		c.PublicRoutes = def.PublicRoutes
	}
	if c.DefaultProtectedPath == "" {
		c.DefaultProtectedPath = def.DefaultProtectedPath
	}
	if c.HomePath == "" {
		c.HomePath = def.HomePath
	}
	return c
}
