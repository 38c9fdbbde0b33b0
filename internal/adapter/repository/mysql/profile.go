package mysql

import (
	"context"

	profileDomain "elite-paisa-backend/internal/domain/profile"

	"gorm.io/gorm"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

func (r *ProfileRepository) Create(ctx context.Context, p *profileDomain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) Save(ctx context.Context, p *profileDomain.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProfileRepository) GetByAuthID(ctx context.Context, authID string) (*profileDomain.Profile, error) {
	var out profileDomain.Profile
	res := r.db.WithContext(ctx).Where("auth_id = ?", authID).First(&out)
	return &out, res.Error
}

func (r *ProfileRepository) DeleteByAuthID(ctx context.Context, authID string) error {
	return r.db.WithContext(ctx).
		Where("auth_id = ?", authID).
		Delete(&profileDomain.Profile{}).Error
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]profileDomain.Profile, error) {
	var out []profileDomain.Profile
	res := r.db.WithContext(ctx).Order("created_at DESC").Find(&out)
	return out, res.Error
}
