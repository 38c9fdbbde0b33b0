package mysql

import (
	"context"

	loantypeDomain "elite-paisa-backend/internal/domain/loantype"

	"gorm.io/gorm"
)

type LoanTypeRepository struct{ db *gorm.DB }

func NewLoanTypeRepository(db *gorm.DB) *LoanTypeRepository { return &LoanTypeRepository{db: db} }

func (r *LoanTypeRepository) Create(ctx context.Context, lt *loantypeDomain.LoanType) error {
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *LoanTypeRepository) Save(ctx context.Context, lt *loantypeDomain.LoanType) error {
	return r.db.WithContext(ctx).Save(lt).Error
}

func (r *LoanTypeRepository) GetByLoanTypeID(ctx context.Context, loanTypeID string) (*loantypeDomain.LoanType, error) {
	var out loantypeDomain.LoanType
	res := r.db.WithContext(ctx).Where("loan_type_id = ?", loanTypeID).First(&out)
	return &out, res.Error
}

func (r *LoanTypeRepository) List(ctx context.Context, f loantypeDomain.ListFilter) ([]loantypeDomain.LoanType, error) {
	q := r.db.WithContext(ctx).Model(&loantypeDomain.LoanType{})
	if f.Category != "" {
		q = q.Where("loan_category = ?", f.Category)
	}
	if f.Subcategory != "" {
		q = q.Where("loan_subcategory = ?", f.Subcategory)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var out []loantypeDomain.LoanType
	res := q.Order("created_at DESC").Find(&out)
	return out, res.Error
}

func (r *LoanTypeRepository) Delete(ctx context.Context, loanTypeID string) error {
	res := r.db.WithContext(ctx).
		Where("loan_type_id = ?", loanTypeID).
		Delete(&loantypeDomain.LoanType{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LoanTypeRepository) IDsBySubcategory(ctx context.Context, sub loantypeDomain.Subcategory) ([]string, error) {
	var ids []string
	res := r.db.WithContext(ctx).
		Model(&loantypeDomain.LoanType{}).
		Where("loan_subcategory = ?", sub).
		Pluck("loan_type_id", &ids)
	return ids, res.Error
}

func (r *LoanTypeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).Model(&loantypeDomain.LoanType{}).Count(&n)
	return n, res.Error
}
