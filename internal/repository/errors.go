package repository

import "errors"

// ErrNotFound is a repository-specific sentinel error returned when a session
// record does not exist for the requested chat id.
//
// The caller decides what missing means: the session loader treats it as a
// valid empty state, while the chat lookup path translates it into a
// domain-level not-found. Keeping the sentinel here abstracts away the
// backend's own signal (`sql.ErrNoRows`, `redis.Nil`).
var ErrNotFound = errors.New("repository: not found")
