package mysql

import (
	"context"
	"errors"
	"testing"

	profileDomain "elite-paisa-backend/internal/domain/profile"
	"elite-paisa-backend/pkg/id"

	"gorm.io/gorm"
)

func makeProfile(authID string) *profileDomain.Profile {
	return &profileDomain.Profile{
		ProfileID: id.NewID32(),
		AuthID:    authID,
		FullName:  "Asha Verma",
		PanNo:     "ABCDE1234F",
		AdharNo:   "123412341234",
		Pincode:   "560001",
		PhoneNo:   "9876543210",
		Address:   "12 MG Road, Bengaluru",
		Age:       31,
		BankDetails: []profileDomain.BankDetail{
			{BankName: "HDFC", AccountNo: "0012345678", AccountHolderName: "Asha Verma", IFSCCode: "HDFC0000123"},
		},
	}
}

func TestProfileCreateAndGetByAuthID(t *testing.T) {
	repo := NewProfileRepository(openTestDB(t))
	ctx := context.Background()

	authID := id.NewID32()
	if err := repo.Create(ctx, makeProfile(authID)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByAuthID(ctx, authID)
	if err != nil {
		t.Fatalf("GetByAuthID: %v", err)
	}
	if got.FullName != "Asha Verma" {
		t.Fatalf("fullName = %s", got.FullName)
	}
	// JSON-serialized bank details survive the round trip.
	if len(got.BankDetails) != 1 || got.BankDetails[0].IFSCCode != "HDFC0000123" {
		t.Fatalf("bankDetails = %+v", got.BankDetails)
	}
}

func TestProfileUniqueAuthID(t *testing.T) {
	repo := NewProfileRepository(openTestDB(t))
	ctx := context.Background()

	authID := id.NewID32()
	if err := repo.Create(ctx, makeProfile(authID)); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	// The unique index is the authority for one-profile-per-identity.
	if err := repo.Create(ctx, makeProfile(authID)); err == nil {
		t.Fatal("second profile for the same identity must fail")
	}
}

func TestProfileDeleteByAuthID(t *testing.T) {
	repo := NewProfileRepository(openTestDB(t))
	ctx := context.Background()

	authID := id.NewID32()
	if err := repo.Create(ctx, makeProfile(authID)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.DeleteByAuthID(ctx, authID); err != nil {
		t.Fatalf("DeleteByAuthID: %v", err)
	}
	if _, err := repo.GetByAuthID(ctx, authID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("after delete err = %v", err)
	}
}

func TestProfileListAll(t *testing.T) {
	repo := NewProfileRepository(openTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, makeProfile(id.NewID32())); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}
	all, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
}
