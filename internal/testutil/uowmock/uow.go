package uowmock

import (
	"context"

	"elite-paisa-backend/internal/domain/uow"
)

// UoW hands fn a fixed set of repos; no real transaction is involved.
type UoW struct {
	Repos uow.Repos
	// WithinTxFn overrides the default pass-through behavior when set.
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
}

func (u *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if u.WithinTxFn != nil {
		return u.WithinTxFn(ctx, fn)
	}
	return fn(u.Repos)
}
