package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"elite-paisa-backend/internal/domain/apperr"
	domain "elite-paisa-backend/internal/domain/application"
	"elite-paisa-backend/internal/domain/authz"
	loantypeDomain "elite-paisa-backend/internal/domain/loantype"
	profileDomain "elite-paisa-backend/internal/domain/profile"
	"elite-paisa-backend/internal/domain/uow"
	userDomain "elite-paisa-backend/internal/domain/user"
	"elite-paisa-backend/pkg/id"

	"gorm.io/gorm"
)

// Storage is the object-store capability document upload needs: bytes in,
// public URL out.
type Storage interface {
	Upload(ctx context.Context, folder, subfolder, filename, contentType string, body []byte) (string, error)
}

// validDocumentTypes are the accepted values of the upload path parameter;
// each becomes a storage subfolder.
var validDocumentTypes = map[string]bool{
	"pan":               true,
	"aadhaar":           true,
	"bank-statement":    true,
	"salary-slip":       true,
	"property-document": true,
	"business-document": true,
}

type Usecase struct {
	apps      domain.Repository
	loanTypes loantypeDomain.Repository
	profiles  profileDomain.Repository
	users     userDomain.Repository
	storage   Storage
	uow       uow.UnitOfWork
}

func NewUsecase(
	apps domain.Repository,
	loanTypes loantypeDomain.Repository,
	profiles profileDomain.Repository,
	users userDomain.Repository,
	storage Storage,
	tx uow.UnitOfWork,
) *Usecase {
	return &Usecase{
		apps:      apps,
		loanTypes: loanTypes,
		profiles:  profiles,
		users:     users,
		storage:   storage,
		uow:       tx,
	}
}

// Apply validates a new application against the referenced loan type and the
// applicant's KYC profile, then creates it in the pending state. The checks
// run in a fixed order and the first failure short-circuits; nothing is
// written before every check has passed.
func (u *Usecase) Apply(ctx context.Context, p *userDomain.Principal, in ApplyInput) (*Detail, error) {
	if d := authz.Decide(p, authz.ActionApplyForLoan, authz.Resource{}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}
	if in.CreditScore != 0 && (in.CreditScore < 300 || in.CreditScore > 900) {
		return nil, apperr.Validation("Credit score must be between 300 and 900",
			apperr.FieldError{Field: "creditScore", Message: "must be between 300 and 900"})
	}

	var (
		app  *domain.LoanApplication
		prof *profileDomain.Profile
		lt   *loantypeDomain.LoanType
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		prof, err = r.Profiles.GetByAuthID(ctx, p.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Profile not found. Please complete your profile first.")
			}
			return apperr.Internal(err)
		}

		lt, err = r.LoanTypes.GetByLoanTypeID(ctx, in.LoanTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Loan type not found")
			}
			return apperr.Internal(err)
		}
		if lt.Status != loantypeDomain.StatusActive {
			return apperr.Validation("Selected loan type is not active")
		}
		if in.LoanAmount < lt.MinAmount || in.LoanAmount > lt.MaxAmount {
			return apperr.Validation(fmt.Sprintf("Loan amount must be between %v and %v", lt.MinAmount, lt.MaxAmount))
		}
		if in.Tenure < lt.Tenure.MinMonths || in.Tenure > lt.Tenure.MaxMonths {
			return apperr.Validation(fmt.Sprintf("Tenure must be between %d and %d months", lt.Tenure.MinMonths, lt.Tenure.MaxMonths))
		}

		app = &domain.LoanApplication{
			ApplicationID:     id.NewID32(),
			AuthID:            p.ID,
			ProfileID:         prof.ProfileID,
			LoanTypeID:        lt.LoanTypeID,
			LoanAmount:        in.LoanAmount,
			TenureMonths:      in.Tenure,
			Purpose:           in.Purpose,
			MonthlyIncome:     in.MonthlyIncome,
			ExistingEMI:       in.ExistingEMI,
			CreditScore:       in.CreditScore,
			Documents:         in.Documents,
			ApplicationStatus: domain.StatusPending,
			AppliedAt:         time.Now().UTC(),
		}
		if err := r.Applications.Create(ctx, app); err != nil {
			return apperr.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	detail := &Detail{
		LoanApplication: *app,
		Profile:         &ProfileSummary{ID: prof.ProfileID, FullName: prof.FullName, PanNo: prof.PanNo, AdharNo: prof.AdharNo},
		LoanType: &LoanTypeSummary{
			ID: lt.LoanTypeID, LoanName: lt.LoanName,
			LoanCategory: string(lt.LoanCategory), LoanSubcategory: string(lt.LoanSubcategory),
			MinAmount: lt.MinAmount, MaxAmount: lt.MaxAmount,
		},
	}
	if usr, uerr := u.users.GetByUserID(ctx, p.ID); uerr == nil {
		detail.Applicant = &ApplicantSummary{ID: usr.UserID, FullName: usr.FullName, Email: usr.Email, PhoneNo: usr.PhoneNo}
	}
	return detail, nil
}

// resolveFilter turns list query params into a repository filter. A
// subcategory with no matching loan types yields a match-nothing filter.
func (u *Usecase) resolveFilter(ctx context.Context, authID string, in ListInput) (domain.ListFilter, error) {
	f := domain.ListFilter{AuthID: authID, LoanTypeID: in.LoanTypeID}
	if in.Status != "" {
		if !domain.ValidStatus(domain.Status(in.Status)) {
			return f, apperr.Validation("Status must be one of: pending, approved, rejected, disbursed")
		}
		f.Status = domain.Status(in.Status)
	}
	if in.LoanSubcategory != "" {
		ids, err := u.loanTypes.IDsBySubcategory(ctx, loantypeDomain.Subcategory(in.LoanSubcategory))
		if err != nil {
			return f, apperr.Internal(err)
		}
		if ids == nil {
			ids = []string{}
		}
		f.LoanTypeIDs = ids
	}
	return f, nil
}

// ListMine returns the caller's own applications; the ownership filter is
// implicit and cannot be overridden.
func (u *Usecase) ListMine(ctx context.Context, p *userDomain.Principal, in ListInput) ([]domain.LoanApplication, error) {
	if d := authz.Decide(p, authz.ActionViewOwnApplications, authz.Resource{}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}
	f, err := u.resolveFilter(ctx, p.ID, in)
	if err != nil {
		return nil, err
	}
	out, err := u.apps.List(ctx, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (u *Usecase) ListAll(ctx context.Context, p *userDomain.Principal, in ListInput) ([]domain.LoanApplication, error) {
	if d := authz.Decide(p, authz.ActionViewAllApplications, authz.Resource{}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}
	f, err := u.resolveFilter(ctx, "", in)
	if err != nil {
		return nil, err
	}
	out, err := u.apps.List(ctx, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, p *userDomain.Principal, applicationID string) (*Detail, error) {
	app, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Loan application not found")
		}
		return nil, apperr.Internal(err)
	}
	if d := authz.Decide(p, authz.ActionViewApplicationByID, authz.Resource{OwnerID: app.AuthID}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}
	return u.enrich(ctx, app), nil
}

// SetStatus overwrites the application status unconditionally for admins.
// There is no transition table: re-issuing a status or moving a disbursed
// application back to pending are both accepted. The role check runs before
// the existence check.
func (u *Usecase) SetStatus(ctx context.Context, p *userDomain.Principal, applicationID, status, remarks string) (*Detail, error) {
	if d := authz.Decide(p, authz.ActionSetApplicationStatus, authz.Resource{}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}
	if status == "" {
		return nil, apperr.Validation("Status is required")
	}
	if !domain.ValidStatus(domain.Status(status)) {
		return nil, apperr.Validation("Status must be one of: pending, approved, rejected, disbursed")
	}

	app, err := u.apps.GetByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Loan application not found")
		}
		return nil, apperr.Internal(err)
	}

	app.ApplicationStatus = domain.Status(status)
	if remarks != "" {
		app.AdminRemarks = remarks
	}
	app.UpdatedAt = time.Now().UTC()
	if err := u.apps.Save(ctx, app); err != nil {
		return nil, apperr.Internal(err)
	}
	return u.enrich(ctx, app), nil
}

// UploadDocument pushes a document blob to object storage and returns its
// URL. It does not touch any application: attaching the URL is the caller's
// follow-up, and a URL never attached stays orphaned by design.
func (u *Usecase) UploadDocument(ctx context.Context, p *userDomain.Principal, documentType, filename, contentType string, data []byte) (string, error) {
	if d := authz.Decide(p, authz.ActionUploadApplicationDocument, authz.Resource{}); !d.Allowed {
		return "", apperr.Denied(string(d.Reason), d.Message())
	}
	if !validDocumentTypes[documentType] {
		return "", apperr.Validation("Invalid document type. Valid types: pan, aadhaar, bank-statement, salary-slip, property-document, business-document")
	}
	url, err := u.storage.Upload(ctx, "loan-documents", documentType, filename, contentType, data)
	if err != nil {
		return "", apperr.Dependency("document upload failed", err)
	}
	return url, nil
}

// enrich attaches related-entity summaries; a summary that fails to resolve
// is simply omitted.
func (u *Usecase) enrich(ctx context.Context, app *domain.LoanApplication) *Detail {
	d := &Detail{LoanApplication: *app}
	if usr, err := u.users.GetByUserID(ctx, app.AuthID); err == nil {
		d.Applicant = &ApplicantSummary{ID: usr.UserID, FullName: usr.FullName, Email: usr.Email, PhoneNo: usr.PhoneNo}
	}
	if prof, err := u.profiles.GetByAuthID(ctx, app.AuthID); err == nil {
		d.Profile = &ProfileSummary{ID: prof.ProfileID, FullName: prof.FullName, PanNo: prof.PanNo, AdharNo: prof.AdharNo}
	}
	if lt, err := u.loanTypes.GetByLoanTypeID(ctx, app.LoanTypeID); err == nil {
		d.LoanType = &LoanTypeSummary{
			ID: lt.LoanTypeID, LoanName: lt.LoanName,
			LoanCategory: string(lt.LoanCategory), LoanSubcategory: string(lt.LoanSubcategory),
			MinAmount: lt.MinAmount, MaxAmount: lt.MaxAmount,
		}
	}
	return d
}
