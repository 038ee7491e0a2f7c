package sessions

import "context"

// Repo stores sessions. The only implementation is in-memory: sessions are
// deliberately not durable and die with the process.
type Repo interface {
	Create(ctx context.Context, session Session) error
	GetByID(ctx context.Context, sessionID string) (Session, error)
	Update(ctx context.Context, session Session) error
	Delete(ctx context.Context, sessionID string) error
}
