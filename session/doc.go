// Package session implements the client-side session reconciliation
// engine behind the PenguinMails dashboard's authentication context.
//
// The server-side session is a cookie managed by an external identity
// provider and is only eventually consistent with what just happened in
// the client: right after a successful sign-in call, a session check may
// still come back empty while the cookie propagates. The engine bridges
// that gap with an optimistic state machine:
//
//   - the Login orchestrator flips the state store to pending, persists a
//     non-credential hint, navigates to the target route, and starts a
//     bounded background poller;
//   - the poller confirms the pending state against the provider (at most
//     PollAttempts checks, fixed spacing) or reverts to unauthenticated
//     and clears the hint when the budget runs out;
//   - on the next client start, Init uses the persisted hint to pick a
//     pending initial state on protected routes so the UI does not flash
//     an unauthenticated view, then runs one real check;
//   - Logout cancels any poller, clears the hint, signs out best-effort,
//     and always lands in unauthenticated locally.
//
// At most one poller is ever active against the store; starting a new one
// cancels its predecessor, and cancellation is a cooperative context
// token checked before every state mutation.
//
// # Usage
//
//	rec := session.New(provider, router,
//	    session.WithHintStore(hintstore.NewFileStore(hintPath)),
//	    session.WithLogger(log),
//	)
//	defer rec.Close()
//
//	rec.Subscribe(func(s sessionstate.State) {
//	    if s.IsAuthenticated() {
//	        // consumer's job: reload tenant/RBAC context, re-render
//	    }
//	})
//
//	rec.Init(ctx)
//	// ...
//	if err := rec.Login(ctx, email, password); err != nil {
//	    if session.IsCredentialError(err) { /* show form error */ }
//	}
package session
