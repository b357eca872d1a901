// Package hintstore persists the optimistic "a session probably exists"
// flag across client restarts.
//
// The flag is read exactly once, at startup, to decide whether the session
// loader should assume a pending login on protected routes instead of
// flashing an unauthenticated view. It is written on successful login and
// cleared on logout or when background reconciliation exhausts its retry
// budget without confirming a session.
//
// Three backends are provided: MemoryStore for tests and ephemeral
// clients, FileStore for desktop installs with a writable config
// directory, and RedisStore for kiosk deployments without durable local
// storage.
package hintstore
