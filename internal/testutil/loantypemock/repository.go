package loantypemock

import (
	"context"

	domain "elite-paisa-backend/internal/domain/loantype"
)

// Repo is a function-backed mock that satisfies loantype.Repository.
type Repo struct {
	CreateFn           func(ctx context.Context, lt *domain.LoanType) error
	GetByLoanTypeIDFn  func(ctx context.Context, loanTypeID string) (*domain.LoanType, error)
	ListFn             func(ctx context.Context, f domain.ListFilter) ([]domain.LoanType, error)
	SaveFn             func(ctx context.Context, lt *domain.LoanType) error
	DeleteFn           func(ctx context.Context, loanTypeID string) error
	IDsBySubcategoryFn func(ctx context.Context, sub domain.Subcategory) ([]string, error)
	CountFn            func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, lt *domain.LoanType) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, lt)
	}
	return nil
}

func (m *Repo) GetByLoanTypeID(ctx context.Context, loanTypeID string) (*domain.LoanType, error) {
	if m.GetByLoanTypeIDFn != nil {
		return m.GetByLoanTypeIDFn(ctx, loanTypeID)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.LoanType, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, lt *domain.LoanType) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, lt)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, loanTypeID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, loanTypeID)
	}
	return nil
}

func (m *Repo) IDsBySubcategory(ctx context.Context, sub domain.Subcategory) ([]string, error) {
	if m.IDsBySubcategoryFn != nil {
		return m.IDsBySubcategoryFn(ctx, sub)
	}
	return nil, nil
}

func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}
