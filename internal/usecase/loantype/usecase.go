package loantype

import (
	"context"
	"errors"

	"elite-paisa-backend/internal/domain/apperr"
	"elite-paisa-backend/internal/domain/authz"
	domain "elite-paisa-backend/internal/domain/loantype"
	userDomain "elite-paisa-backend/internal/domain/user"
	"elite-paisa-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

// validate collects every violated field so a bad request reports all
// problems at once; InvalidRange is part of this pass.
func validate(in UpsertInput) []apperr.FieldError {
	var fields []apperr.FieldError
	if in.LoanName == "" {
		fields = append(fields, apperr.FieldError{Field: "loanName", Message: "is required"})
	}
	cat := domain.Category(in.LoanCategory)
	if !domain.ValidCategory(cat) {
		fields = append(fields, apperr.FieldError{Field: "loanCategory", Message: "is not a valid loan category"})
	} else if !domain.ValidSubcategory(cat, domain.Subcategory(in.LoanSubcategory)) {
		fields = append(fields, apperr.FieldError{Field: "loanSubcategory", Message: "is not a valid subcategory for " + in.LoanCategory})
	}
	if in.MinAmount < 0 {
		fields = append(fields, apperr.FieldError{Field: "minAmount", Message: "cannot be negative"})
	}
	if in.MinAmount > in.MaxAmount {
		fields = append(fields, apperr.FieldError{Field: "minAmount", Message: "cannot exceed maxAmount"})
	}
	if in.Tenure.MinMonths < 1 {
		fields = append(fields, apperr.FieldError{Field: "tenure.minMonths", Message: "must be at least 1"})
	}
	if in.Tenure.MinMonths > in.Tenure.MaxMonths {
		fields = append(fields, apperr.FieldError{Field: "tenure.minMonths", Message: "cannot exceed tenure.maxMonths"})
	}
	if in.InterestRate.Min < 0 || in.InterestRate.Min > in.InterestRate.Max {
		fields = append(fields, apperr.FieldError{Field: "interestRate", Message: "must satisfy 0 <= min <= max"})
	}
	if in.Status != "" && !domain.ValidStatus(domain.Status(in.Status)) {
		fields = append(fields, apperr.FieldError{Field: "status", Message: "must be either active or inactive"})
	}
	return fields
}

func (u *Usecase) Create(ctx context.Context, p *userDomain.Principal, in UpsertInput) (*domain.LoanType, error) {
	if d := authz.Decide(p, authz.ActionCreateLoanType, authz.Resource{}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}
	if fields := validate(in); len(fields) > 0 {
		return nil, apperr.Validation("Invalid loan type data", fields...)
	}

	status := domain.Status(in.Status)
	if status == "" {
		status = domain.StatusActive
	}
	lt := &domain.LoanType{
		LoanTypeID:          id.NewID32(),
		LoanName:            in.LoanName,
		LoanCategory:        domain.Category(in.LoanCategory),
		LoanSubcategory:     domain.Subcategory(in.LoanSubcategory),
		MinAmount:           in.MinAmount,
		MaxAmount:           in.MaxAmount,
		InterestRate:        domain.InterestRate{Min: in.InterestRate.Min, Max: in.InterestRate.Max},
		Tenure:              domain.Tenure{MinMonths: in.Tenure.MinMonths, MaxMonths: in.Tenure.MaxMonths},
		ProcessingFee:       in.ProcessingFee,
		EligibilityCriteria: in.EligibilityCriteria,
		RequiredDocuments:   in.RequiredDocuments,
		Status:              status,
		CreatedBy:           p.ID,
	}
	if err := u.repo.Create(ctx, lt); err != nil {
		return nil, apperr.Internal(err)
	}
	return lt, nil
}

// List is public; unauthenticated callers browse the catalog too.
func (u *Usecase) List(ctx context.Context, in ListInput) ([]domain.LoanType, error) {
	out, err := u.repo.List(ctx, in.filter())
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, loanTypeID string) (*domain.LoanType, error) {
	lt, err := u.repo.GetByLoanTypeID(ctx, loanTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Loan type not found")
		}
		return nil, apperr.Internal(err)
	}
	return lt, nil
}

func (u *Usecase) Update(ctx context.Context, p *userDomain.Principal, loanTypeID string, in UpsertInput) (*domain.LoanType, error) {
	if d := authz.Decide(p, authz.ActionUpdateLoanType, authz.Resource{}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}
	if fields := validate(in); len(fields) > 0 {
		return nil, apperr.Validation("Invalid loan type data", fields...)
	}

	lt, err := u.repo.GetByLoanTypeID(ctx, loanTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Loan type not found")
		}
		return nil, apperr.Internal(err)
	}

	lt.LoanName = in.LoanName
	lt.LoanCategory = domain.Category(in.LoanCategory)
	lt.LoanSubcategory = domain.Subcategory(in.LoanSubcategory)
	lt.MinAmount = in.MinAmount
	lt.MaxAmount = in.MaxAmount
	lt.InterestRate = domain.InterestRate{Min: in.InterestRate.Min, Max: in.InterestRate.Max}
	lt.Tenure = domain.Tenure{MinMonths: in.Tenure.MinMonths, MaxMonths: in.Tenure.MaxMonths}
	lt.ProcessingFee = in.ProcessingFee
	lt.EligibilityCriteria = in.EligibilityCriteria
	lt.RequiredDocuments = in.RequiredDocuments
	if in.Status != "" {
		lt.Status = domain.Status(in.Status)
	}
	if err := u.repo.Save(ctx, lt); err != nil {
		return nil, apperr.Internal(err)
	}
	return lt, nil
}

func (u *Usecase) Delete(ctx context.Context, p *userDomain.Principal, loanTypeID string) error {
	if d := authz.Decide(p, authz.ActionDeleteLoanType, authz.Resource{}); !d.Allowed {
		return apperr.Denied(string(d.Reason), d.Message())
	}
	if err := u.repo.Delete(ctx, loanTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Loan type not found")
		}
		return apperr.Internal(err)
	}
	return nil
}
