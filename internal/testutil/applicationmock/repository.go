package applicationmock

import (
	"context"

	domain "elite-paisa-backend/internal/domain/application"
)

// Repo is a function-backed mock that satisfies application.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, a *domain.LoanApplication) error
	GetByApplicationIDFn func(ctx context.Context, applicationID string) (*domain.LoanApplication, error)
	ListFn               func(ctx context.Context, f domain.ListFilter) ([]domain.LoanApplication, error)
	SaveFn               func(ctx context.Context, a *domain.LoanApplication) error
	ListRecentFn         func(ctx context.Context, limit int) ([]domain.LoanApplication, error)
	CountFn              func(ctx context.Context) (int64, error)
	CountByStatusFn      func(ctx context.Context, s domain.Status) (int64, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID string) (*domain.LoanApplication, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.LoanApplication, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, a *domain.LoanApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListRecent(ctx context.Context, limit int) ([]domain.LoanApplication, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, limit)
	}
	return nil, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

func (m *Repo) CountByStatus(ctx context.Context, s domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, s)
	}
	return 0, nil
}
