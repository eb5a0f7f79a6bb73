package repotest

import (
	"context"
	"errors"
	"testing"

	"swadesh-ai-be/internal/repository/unitofwork"
)

// ErrForbidden is returned by every repository of a forbidden factory.
var ErrForbidden = errors.New("repotest: storage access is forbidden")

type forbidden struct {
	t     testing.TB
	store *Store
}

// NewForbidden returns a factory that marks the test failed the moment
// anything asks it for a unit of work. Handlers under app.Test run off the
// test goroutine, so it reports with Errorf and every repository call then
// fails with ErrForbidden.
func NewForbidden(t testing.TB) unitofwork.RepositoryFactory {
	store := NewStore()
	store.Err = ErrForbidden
	return &forbidden{t: t, store: store}
}

func (f *forbidden) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	f.t.Errorf("storage was accessed")
	return f.store.NewUnitOfWork(ctx)
}
