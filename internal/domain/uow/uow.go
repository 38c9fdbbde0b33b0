package uow

import (
	"context"

	"elite-paisa-backend/internal/domain/application"
	"elite-paisa-backend/internal/domain/loantype"
	"elite-paisa-backend/internal/domain/profile"
)

type Repos struct {
	Profiles     profile.Repository
	LoanTypes    loantype.Repository
	Applications application.Repository
}

// UnitOfWork runs fn with repositories bound to one database transaction,
// so applyForLoan's read-validate-create sequence commits atomically.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
