package profile

import (
	"context"
	"errors"

	"elite-paisa-backend/internal/domain/apperr"
	"elite-paisa-backend/internal/domain/authz"
	domain "elite-paisa-backend/internal/domain/profile"
	userDomain "elite-paisa-backend/internal/domain/user"
	"elite-paisa-backend/pkg/id"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Storage is the object-store capability profile pictures need.
type Storage interface {
	Upload(ctx context.Context, folder, subfolder, filename, contentType string, body []byte) (string, error)
	Delete(ctx context.Context, objectURL string) error
}

type Usecase struct {
	profiles domain.Repository
	storage  Storage
	log      *zap.Logger
}

func NewUsecase(profiles domain.Repository, storage Storage, log *zap.Logger) *Usecase {
	return &Usecase{profiles: profiles, storage: storage, log: log}
}

// CreateOrUpdate writes the caller's KYC profile. The first call creates it,
// later calls overwrite it in place; auth_id and profile_id never change.
func (u *Usecase) CreateOrUpdate(ctx context.Context, p *userDomain.Principal, in UpsertInput) (*domain.Profile, error) {
	if p == nil {
		return nil, apperr.Authentication("Not authorized, no token")
	}

	prof, err := u.profiles.GetByAuthID(ctx, p.ID)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		prof = &domain.Profile{ProfileID: id.NewID32(), AuthID: p.ID}
	default:
		return nil, apperr.Internal(err)
	}

	prof.FullName = in.FullName
	prof.PanNo = in.PanNo
	prof.AdharNo = in.AdharNo
	prof.Pincode = in.Pincode
	prof.PhoneNo = in.PhoneNo
	prof.PhoneNo2 = in.PhoneNo2
	prof.Email = in.Email
	prof.Address = in.Address
	prof.Age = in.Age
	prof.EmploymentDetails = in.EmploymentDetails
	prof.BankDetails = in.BankDetails

	if prof.ID == 0 {
		err = u.profiles.Create(ctx, prof)
	} else {
		err = u.profiles.Save(ctx, prof)
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return prof, nil
}

func (u *Usecase) GetOwn(ctx context.Context, p *userDomain.Principal) (*domain.Profile, error) {
	if p == nil {
		return nil, apperr.Authentication("Not authorized, no token")
	}
	prof, err := u.profiles.GetByAuthID(ctx, p.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Profile not found")
		}
		return nil, apperr.Internal(err)
	}
	return prof, nil
}

// GetByAuthID returns the profile attached to an identity. Clients may only
// read their own; admins may read any.
func (u *Usecase) GetByAuthID(ctx context.Context, p *userDomain.Principal, authID string) (*domain.Profile, error) {
	if d := authz.Decide(p, authz.ActionViewProfileByID, authz.Resource{OwnerID: authID}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}
	prof, err := u.profiles.GetByAuthID(ctx, authID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Profile not found")
		}
		return nil, apperr.Internal(err)
	}
	return prof, nil
}

func (u *Usecase) ListAll(ctx context.Context, p *userDomain.Principal) ([]domain.Profile, error) {
	if d := authz.Decide(p, authz.ActionViewAllProfiles, authz.Resource{}); !d.Allowed {
		return nil, apperr.Denied(string(d.Reason), d.Message())
	}
	out, err := u.profiles.ListAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

// Delete removes the caller's profile. The stored picture is deleted best
// effort: a storage failure is logged and the profile row still goes away.
func (u *Usecase) Delete(ctx context.Context, p *userDomain.Principal) error {
	if p == nil {
		return apperr.Authentication("Not authorized, no token")
	}
	prof, err := u.profiles.GetByAuthID(ctx, p.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Profile not found")
		}
		return apperr.Internal(err)
	}
	if prof.ProfilePic != "" {
		if derr := u.storage.Delete(ctx, prof.ProfilePic); derr != nil {
			u.log.Warn("profile picture cleanup failed",
				zap.String("authId", p.ID), zap.Error(derr))
		}
	}
	if err := u.profiles.DeleteByAuthID(ctx, p.ID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// UploadPicture stores a new profile picture and returns its URL. When the
// caller already has a profile the URL is swapped onto it and the previous
// picture is deleted best effort; without a profile the upload still succeeds
// and the URL can be attached on a later profile create.
func (u *Usecase) UploadPicture(ctx context.Context, p *userDomain.Principal, filename, contentType string, data []byte) (string, error) {
	if p == nil {
		return "", apperr.Authentication("Not authorized, no token")
	}

	url, err := u.storage.Upload(ctx, "profile-pics", p.ID, filename, contentType, data)
	if err != nil {
		return "", apperr.Dependency("profile picture upload failed", err)
	}

	prof, err := u.profiles.GetByAuthID(ctx, p.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return url, nil
		}
		return "", apperr.Internal(err)
	}

	oldPic := prof.ProfilePic
	prof.ProfilePic = url
	if err := u.profiles.Save(ctx, prof); err != nil {
		return "", apperr.Internal(err)
	}
	if oldPic != "" {
		if derr := u.storage.Delete(ctx, oldPic); derr != nil {
			u.log.Warn("old profile picture cleanup failed",
				zap.String("authId", p.ID), zap.Error(derr))
		}
	}
	return url, nil
}
