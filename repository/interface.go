package repository

import "context"

// StateRepositoryInterface defines the persistence port for per-session order
// state. It plays the role of the browser's local storage: one opaque blob per
// session, written wholesale (last writer wins). Load distinguishes absence
// (found=false) from a saved empty state so callers can fall back correctly.
type StateRepositoryInterface interface {
	Load(ctx context.Context, sessionID string) (blob []byte, found bool, err error)
	Save(ctx context.Context, sessionID string, blob []byte) error
	Clear(ctx context.Context, sessionID string) error
}
