package dashboard

import (
	"context"

	"elite-paisa-backend/internal/domain/apperr"
	applicationDomain "elite-paisa-backend/internal/domain/application"
	"elite-paisa-backend/internal/domain/authz"
	loantypeDomain "elite-paisa-backend/internal/domain/loantype"
	userDomain "elite-paisa-backend/internal/domain/user"
)

// defaultRecentLimit applies when the caller does not ask for a specific
// number of recent applications.
const defaultRecentLimit = 5

// Stats is the admin overview: totals plus the per-status breakdown.
type Stats struct {
	TotalClients      int64 `json:"totalClients"`
	TotalLoanTypes    int64 `json:"totalLoanTypes"`
	TotalApplications int64 `json:"totalApplications"`
	PendingCount      int64 `json:"pendingCount"`
	ApprovedCount     int64 `json:"approvedCount"`
	RejectedCount     int64 `json:"rejectedCount"`
	DisbursedCount    int64 `json:"disbursedCount"`
}

type Usecase struct {
	users     userDomain.Repository
	loanTypes loantypeDomain.Repository
	apps      applicationDomain.Repository
}

func NewUsecase(users userDomain.Repository, loanTypes loantypeDomain.Repository, apps applicationDomain.Repository) *Usecase {
	return &Usecase{users: users, loanTypes: loanTypes, apps: apps}
}

func (u *Usecase) Stats(ctx context.Context, p *userDomain.Principal) (*Stats, error) {
	if d := authz.Decide(p, authz.ActionViewDashboard, authz.Resource{}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}

	var s Stats
	var err error
	if s.TotalClients, err = u.users.CountByRole(ctx, userDomain.RoleClient); err != nil {
		return nil, apperr.Internal(err)
	}
	if s.TotalLoanTypes, err = u.loanTypes.Count(ctx); err != nil {
		return nil, apperr.Internal(err)
	}
	if s.TotalApplications, err = u.apps.Count(ctx); err != nil {
		return nil, apperr.Internal(err)
	}
	for status, dst := range map[applicationDomain.Status]*int64{
		applicationDomain.StatusPending:   &s.PendingCount,
		applicationDomain.StatusApproved:  &s.ApprovedCount,
		applicationDomain.StatusRejected:  &s.RejectedCount,
		applicationDomain.StatusDisbursed: &s.DisbursedCount,
	} {
		if *dst, err = u.apps.CountByStatus(ctx, status); err != nil {
			return nil, apperr.Internal(err)
		}
	}
	return &s, nil
}

// Recent returns the latest applications by applied time. A non-positive
// limit falls back to the default.
func (u *Usecase) Recent(ctx context.Context, p *userDomain.Principal, limit int) ([]applicationDomain.LoanApplication, error) {
	if d := authz.Decide(p, authz.ActionViewDashboard, authz.Resource{}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	out, err := u.apps.ListRecent(ctx, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
