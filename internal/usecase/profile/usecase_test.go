package profile

import (
	"context"
	"errors"
	"testing"

	"elite-paisa-backend/internal/domain/apperr"
	domain "elite-paisa-backend/internal/domain/profile"
	userDomain "elite-paisa-backend/internal/domain/user"
	"elite-paisa-backend/internal/testutil/profilemock"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	admin  = &userDomain.Principal{ID: "admin-1", Role: userDomain.RoleAdmin}
	client = &userDomain.Principal{ID: "client-1", Role: userDomain.RoleClient}
)

type fakeStorage struct {
	uploadFn func(ctx context.Context, folder, subfolder, filename, contentType string, body []byte) (string, error)
	deleteFn func(ctx context.Context, objectURL string) error
}

func (s *fakeStorage) Upload(ctx context.Context, folder, subfolder, filename, contentType string, body []byte) (string, error) {
	if s.uploadFn != nil {
		return s.uploadFn(ctx, folder, subfolder, filename, contentType, body)
	}
	return "https://bucket.s3.ap-south-1.amazonaws.com/new-pic", nil
}

func (s *fakeStorage) Delete(ctx context.Context, objectURL string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, objectURL)
	}
	return nil
}

func validUpsert() UpsertInput {
	return UpsertInput{
		FullName: "Asha Verma",
		PanNo:    "ABCDE1234F",
		AdharNo:  "123412341234",
		Pincode:  "560001",
		PhoneNo:  "9876543210",
		Address:  "12 MG Road, Bengaluru",
		Age:      31,
	}
}

func newUsecase(repo *profilemock.Repo, st Storage) *Usecase {
	return NewUsecase(repo, st, zap.NewNop())
}

func TestCreateOrUpdate_CreatesOnFirstCall(t *testing.T) {
	var created *domain.Profile
	repo := &profilemock.Repo{
		GetByAuthIDFn: func(ctx context.Context, authID string) (*domain.Profile, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, p *domain.Profile) error {
			created = p
			return nil
		},
		SaveFn: func(ctx context.Context, p *domain.Profile) error {
			t.Fatal("Save must not be called on first write")
			return nil
		},
	}
	uc := newUsecase(repo, &fakeStorage{})

	prof, err := uc.CreateOrUpdate(context.Background(), client, validUpsert())
	if err != nil {
		t.Fatalf("CreateOrUpdate: %v", err)
	}
	if created == nil {
		t.Fatal("profile was not created")
	}
	if len(prof.ProfileID) != 32 {
		t.Fatalf("ProfileID length = %d", len(prof.ProfileID))
	}
	if prof.AuthID != client.ID {
		t.Fatalf("authID = %s", prof.AuthID)
	}
}

func TestCreateOrUpdate_UpdatesInPlace(t *testing.T) {
	existing := &domain.Profile{ID: 7, ProfileID: "prof-1", AuthID: client.ID, FullName: "Old Name"}
	var saved *domain.Profile
	repo := &profilemock.Repo{
		GetByAuthIDFn: func(ctx context.Context, authID string) (*domain.Profile, error) {
			return existing, nil
		},
		CreateFn: func(ctx context.Context, p *domain.Profile) error {
			t.Fatal("Create must not be called for an existing profile")
			return nil
		},
		SaveFn: func(ctx context.Context, p *domain.Profile) error {
			saved = p
			return nil
		},
	}
	uc := newUsecase(repo, &fakeStorage{})

	prof, err := uc.CreateOrUpdate(context.Background(), client, validUpsert())
	if err != nil {
		t.Fatalf("CreateOrUpdate: %v", err)
	}
	if saved == nil || saved.FullName != "Asha Verma" {
		t.Fatalf("saved = %+v", saved)
	}
	// Identity fields survive the overwrite.
	if prof.ProfileID != "prof-1" || prof.AuthID != client.ID {
		t.Fatalf("identity changed: %+v", prof)
	}
}

func TestCreateOrUpdate_NoToken(t *testing.T) {
	uc := newUsecase(&profilemock.Repo{}, &fakeStorage{})

	_, err := uc.CreateOrUpdate(context.Background(), nil, validUpsert())
	if apperr.KindOf(err) != apperr.KindAuthentication {
		t.Fatalf("kind = %v, want authentication", apperr.KindOf(err))
	}
}

func TestGetByAuthID_OwnershipEnforced(t *testing.T) {
	uc := newUsecase(&profilemock.Repo{}, &fakeStorage{})

	_, err := uc.GetByAuthID(context.Background(), client, "someone-else")
	if apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("kind = %v, want authorization", apperr.KindOf(err))
	}
}

func TestGetByAuthID_AdminSeesAny(t *testing.T) {
	repo := &profilemock.Repo{
		GetByAuthIDFn: func(ctx context.Context, authID string) (*domain.Profile, error) {
			return &domain.Profile{ProfileID: "prof-1", AuthID: authID}, nil
		},
	}
	uc := newUsecase(repo, &fakeStorage{})

	prof, err := uc.GetByAuthID(context.Background(), admin, "someone-else")
	if err != nil {
		t.Fatalf("GetByAuthID: %v", err)
	}
	if prof.AuthID != "someone-else" {
		t.Fatalf("authID = %s", prof.AuthID)
	}
}

func TestListAll_AdminOnly(t *testing.T) {
	uc := newUsecase(&profilemock.Repo{}, &fakeStorage{})

	if _, err := uc.ListAll(context.Background(), client); apperr.KindOf(err) != apperr.KindAuthorization {
		t.Fatalf("kind = %v, want authorization", apperr.KindOf(err))
	}
}

func TestDelete_PictureCleanupIsBestEffort(t *testing.T) {
	var deletedRow, deletedPic bool
	repo := &profilemock.Repo{
		GetByAuthIDFn: func(ctx context.Context, authID string) (*domain.Profile, error) {
			return &domain.Profile{ProfileID: "prof-1", AuthID: authID, ProfilePic: "https://bucket/pic"}, nil
		},
		DeleteByAuthIDFn: func(ctx context.Context, authID string) error {
			deletedRow = true
			return nil
		},
	}
	st := &fakeStorage{
		deleteFn: func(ctx context.Context, objectURL string) error {
			deletedPic = true
			return errors.New("s3 unavailable")
		},
	}
	uc := newUsecase(repo, st)

	if err := uc.Delete(context.Background(), client); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deletedPic || !deletedRow {
		t.Fatalf("deletedPic=%v deletedRow=%v, want both attempted", deletedPic, deletedRow)
	}
}

func TestUploadPicture_SwapsAndCleansOld(t *testing.T) {
	prof := &domain.Profile{ID: 3, ProfileID: "prof-1", AuthID: client.ID, ProfilePic: "https://bucket/old"}
	var savedPic, deletedURL string
	repo := &profilemock.Repo{
		GetByAuthIDFn: func(ctx context.Context, authID string) (*domain.Profile, error) {
			return prof, nil
		},
		SaveFn: func(ctx context.Context, p *domain.Profile) error {
			savedPic = p.ProfilePic
			return nil
		},
	}
	st := &fakeStorage{
		deleteFn: func(ctx context.Context, objectURL string) error {
			deletedURL = objectURL
			return nil
		},
	}
	uc := newUsecase(repo, st)

	out, err := uc.UploadPicture(context.Background(), client, "me.jpg", "image/jpeg", []byte("img"))
	if err != nil {
		t.Fatalf("UploadPicture: %v", err)
	}
	if savedPic == "" || savedPic == "https://bucket/old" {
		t.Fatalf("saved pic = %q", savedPic)
	}
	if deletedURL != "https://bucket/old" {
		t.Fatalf("deleted = %q, want the previous picture", deletedURL)
	}
	if out != savedPic {
		t.Fatalf("returned pic = %q", out)
	}
}

func TestUploadPicture_WorksWithoutProfile(t *testing.T) {
	var uploaded bool
	repo := &profilemock.Repo{
		GetByAuthIDFn: func(ctx context.Context, authID string) (*domain.Profile, error) {
			return nil, gorm.ErrRecordNotFound
		},
		SaveFn: func(ctx context.Context, p *domain.Profile) error {
			t.Fatal("Save must not be called when no profile exists")
			return nil
		},
	}
	st := &fakeStorage{
		uploadFn: func(ctx context.Context, folder, subfolder, filename, contentType string, body []byte) (string, error) {
			uploaded = true
			return "https://bucket/orphan-pic", nil
		},
	}
	uc := newUsecase(repo, st)

	// The URL comes back even before the profile is created, so it can be
	// attached on the later profile write.
	url, err := uc.UploadPicture(context.Background(), client, "me.jpg", "image/jpeg", []byte("img"))
	if err != nil {
		t.Fatalf("UploadPicture: %v", err)
	}
	if !uploaded {
		t.Fatal("upload was never attempted")
	}
	if url != "https://bucket/orphan-pic" {
		t.Fatalf("url = %q", url)
	}
}

func TestUploadPicture_StorageFailure(t *testing.T) {
	st := &fakeStorage{
		uploadFn: func(ctx context.Context, folder, subfolder, filename, contentType string, body []byte) (string, error) {
			return "", errors.New("s3 unavailable")
		},
	}
	uc := newUsecase(&profilemock.Repo{}, st)

	_, err := uc.UploadPicture(context.Background(), client, "me.jpg", "image/jpeg", []byte("img"))
	if apperr.KindOf(err) != apperr.KindDependency {
		t.Fatalf("kind = %v, want dependency", apperr.KindOf(err))
	}
}
