package unitofwork

import "context"

// RepositoryFactory hands out a fresh UnitOfWork per request. Services hold
// the factory, never a long-lived unit of work.
type RepositoryFactory interface {
	NewUnitOfWork(ctx context.Context) UnitOfWork
}
