package mysql

import (
	"context"

	applicationDomain "elite-paisa-backend/internal/domain/application"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *applicationDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ApplicationRepository) Save(ctx context.Context, a *applicationDomain.LoanApplication) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ApplicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*applicationDomain.LoanApplication, error) {
	var out applicationDomain.LoanApplication
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *ApplicationRepository) List(ctx context.Context, f applicationDomain.ListFilter) ([]applicationDomain.LoanApplication, error) {
	q := r.db.WithContext(ctx).Model(&applicationDomain.LoanApplication{})
	if f.AuthID != "" {
		q = q.Where("auth_id = ?", f.AuthID)
	}
	if f.Status != "" {
		q = q.Where("application_status = ?", f.Status)
	}
	if f.LoanTypeID != "" {
		q = q.Where("loan_type_id = ?", f.LoanTypeID)
	}
	if f.LoanTypeIDs != nil {
		// An empty id set must match nothing, not everything.
		if len(f.LoanTypeIDs) == 0 {
			return []applicationDomain.LoanApplication{}, nil
		}
		q = q.Where("loan_type_id IN ?", f.LoanTypeIDs)
	}
	var out []applicationDomain.LoanApplication
	res := q.Order("applied_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) ListRecent(ctx context.Context, limit int) ([]applicationDomain.LoanApplication, error) {
	var out []applicationDomain.LoanApplication
	res := r.db.WithContext(ctx).
		Order("applied_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}

func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&applicationDomain.LoanApplication{}).Count(&n)
	return n, res.Error
}

func (r *ApplicationRepository) CountByStatus(ctx context.Context, s applicationDomain.Status) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&applicationDomain.LoanApplication{}).
		Where("application_status = ?", s).
		Count(&n)
	return n, res.Error
}
