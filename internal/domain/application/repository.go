package application

import "context"

// ListFilter narrows List results. Zero values mean "no constraint", except
// LoanTypeIDs: a non-nil empty slice matches nothing (the empty-subcategory
// case must yield an empty result, not an unfiltered one).
type ListFilter struct {
	AuthID      string
	Status      Status
	LoanTypeID  string
	LoanTypeIDs []string
}

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	GetByApplicationID(ctx context.Context, applicationID string) (*LoanApplication, error)
	List(ctx context.Context, f ListFilter) ([]LoanApplication, error)
	Save(ctx context.Context, a *LoanApplication) error
	ListRecent(ctx context.Context, limit int) ([]LoanApplication, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, s Status) (int64, error)
}
