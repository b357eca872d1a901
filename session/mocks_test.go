package session

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/penguinmails/sessionkit/pkg/sessionstate"
)

// MockIdentityProvider is a mock implementation of IdentityProvider.
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) CheckSession(ctx context.Context) (*sessionstate.Identity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sessionstate.Identity), args.Error(1)
}

func (m *MockIdentityProvider) SignIn(ctx context.Context, params SignInParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockIdentityProvider) SignUp(ctx context.Context, params SignUpParams) error {
	args := m.Called(ctx, params)
	return args.Error(0)
}

func (m *MockIdentityProvider) SignOut(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// fakeNavigator is a stateful router fake: Navigate updates the current
// location the way a real client router would, which the poller's
// corrective-navigation check depends on.
type fakeNavigator struct {
	mu       sync.Mutex
	current  string
	visited  []string
	failWith error
}

func newFakeNavigator(current string) *fakeNavigator {
	return &fakeNavigator{current: current}
}

func (n *fakeNavigator) CurrentPath() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

func (n *fakeNavigator) Navigate(ctx context.Context, path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failWith != nil {
		return n.failWith
	}
	n.visited = append(n.visited, path)
	n.current = path
	return nil
}

// setCurrent simulates a route change outside the engine, e.g. the user
// manually navigating while reconciliation is still in flight.
func (n *fakeNavigator) setCurrent(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = path
}

func (n *fakeNavigator) paths() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.visited))
	copy(out, n.visited)
	return out
}

// stateRecorder captures every store transition in order.
type stateRecorder struct {
	mu     sync.Mutex
	states []sessionstate.State
}

func (rec *stateRecorder) record(s sessionstate.State) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.states = append(rec.states, s)
}

func (rec *stateRecorder) statuses() []sessionstate.Status {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	out := make([]sessionstate.Status, len(rec.states))
	for i, s := range rec.states {
		out[i] = s.Status
	}
	return out
}

// failingHintStore returns an error from every operation, for the
// fail-closed behavior tests.
type failingHintStore struct {
	err error
}

func (f *failingHintStore) Get(ctx context.Context) (bool, error) { return true, f.err }
func (f *failingHintStore) Set(ctx context.Context, v bool) error { return f.err }
func (f *failingHintStore) Clear(ctx context.Context) error       { return f.err }
