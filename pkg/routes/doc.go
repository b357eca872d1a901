// Package routes classifies dashboard locations as protected or public for
// the session reconciliation engine: protected routes may be shown
// optimistically while a login is still being confirmed, public routes are
// where a confirmed user gets redirected away from.
//
// It also resolves the post-login navigation target from a "next" query
// parameter, rejecting anything that is not a protected in-app path.
package routes
