package profile

import "context"

type Repository interface {
	// Create relies on the unique index on auth_id to reject a second
	// profile for the same identity, racing writers included.
	Create(ctx context.Context, p *Profile) error
	GetByAuthID(ctx context.Context, authID string) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	DeleteByAuthID(ctx context.Context, authID string) error
	ListAll(ctx context.Context) ([]Profile, error)
}
