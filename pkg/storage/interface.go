// Package storage defines the persistence interfaces for run history and job
// insertion, so that backends such as PostgreSQL can be swapped behind them.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go -aux_files=github.com/firstlovecenter/fl-admin-portal-sub001/pkg/storage=run.go,github.com/firstlovecenter/fl-admin-portal-sub001/pkg/storage=job.go
package storage

import "context"

// AllStorage groups every domain capability a storage handle offers, both in
// and outside a transaction.
type AllStorage interface {
	RunStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It must not be
// used after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit persists the changes made through this handle.
	Commit() error
	// Rollback discards the changes made through this handle.
	Rollback() error
}

// Storage is the non-transactional handle; it owns the connection pool.
type Storage interface {
	AllStorage

	// Close releases the underlying pool.
	Close() error

	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
