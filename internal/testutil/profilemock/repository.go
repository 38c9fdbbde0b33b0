package profilemock

import (
	"context"

	domain "elite-paisa-backend/internal/domain/profile"
)

// Repo is a function-backed mock that satisfies profile.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.Profile) error
	GetByAuthIDFn    func(ctx context.Context, authID string) (*domain.Profile, error)
	SaveFn           func(ctx context.Context, p *domain.Profile) error
	DeleteByAuthIDFn func(ctx context.Context, authID string) error
	ListAllFn        func(ctx context.Context) ([]domain.Profile, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Profile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByAuthID(ctx context.Context, authID string) (*domain.Profile, error) {
	if m.GetByAuthIDFn != nil {
		return m.GetByAuthIDFn(ctx, authID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, p *domain.Profile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) DeleteByAuthID(ctx context.Context, authID string) error {
	if m.DeleteByAuthIDFn != nil {
		return m.DeleteByAuthIDFn(ctx, authID)
	}
	return nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Profile, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}
