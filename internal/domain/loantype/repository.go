package loantype

import "context"

type ListFilter struct {
	Category    Category
	Subcategory Subcategory
	Status      Status
}

type Repository interface {
	Create(ctx context.Context, lt *LoanType) error
	GetByLoanTypeID(ctx context.Context, loanTypeID string) (*LoanType, error)
	List(ctx context.Context, f ListFilter) ([]LoanType, error)
	Save(ctx context.Context, lt *LoanType) error
	Delete(ctx context.Context, loanTypeID string) error
	// IDsBySubcategory resolves the public ids of all loan types in a
	// subcategory, for the secondary-lookup application filter.
	IDsBySubcategory(ctx context.Context, sub Subcategory) ([]string, error)
	Count(ctx context.Context) (int64, error)
}
