// Package password implements the forgot/reset flow. Reset state lives only
// in the OTP store; the identity record is untouched until the new hash is
// written.
package password

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"elite-paisa-backend/internal/domain/apperr"
	userDomain "elite-paisa-backend/internal/domain/user"
	"elite-paisa-backend/internal/infrastructure/cache"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type OTPStore interface {
	Set(ctx context.Context, email, otp string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type Usecase struct {
	users  userDomain.Repository
	otps   OTPStore
	mailer Mailer
}

func NewUsecase(users userDomain.Repository, otps OTPStore, mailer Mailer) *Usecase {
	return &Usecase{users: users, otps: otps, mailer: mailer}
}

// generateOTP draws a 6-digit code from crypto/rand. Leading zeros are kept,
// so the code space is the full 000000-999999.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Forgot issues a reset code for a registered email and mails it. An unknown
// email is reported as not found rather than silently accepted, matching the
// established API contract.
func (u *Usecase) Forgot(ctx context.Context, email string) error {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("No account found with this email")
		}
		return apperr.Internal(err)
	}

	otp, err := generateOTP()
	if err != nil {
		return apperr.Internal(err)
	}
	if err := u.otps.Set(ctx, usr.Email, otp); err != nil {
		return apperr.Internal(err)
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your password reset code is <b>%s</b>. It expires in 5 minutes.</p>"+
			"<p>If you did not request this, you can ignore this email.</p>",
		usr.FullName, otp)
	if err := u.mailer.Send(ctx, usr.Email, "Your password reset code", body); err != nil {
		// A code the user never received must not stay redeemable.
		_ = u.otps.Delete(ctx, usr.Email)
		return apperr.Dependency("could not send reset email", err)
	}
	return nil
}

// Reset redeems a code and writes the new password hash. The code is single
// use; it is deleted before the hash is saved.
func (u *Usecase) Reset(ctx context.Context, email, otp, newPassword string) error {
	if len(newPassword) < 6 {
		return apperr.Validation("Password must be at least 6 characters",
			apperr.FieldError{Field: "newPassword", Message: "must be at least 6 characters"})
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("No account found with this email")
		}
		return apperr.Internal(err)
	}

	stored, err := u.otps.Get(ctx, usr.Email)
	if err != nil {
		if errors.Is(err, cache.ErrOTPNotFound) {
			return apperr.Validation("Invalid or expired OTP")
		}
		return apperr.Internal(err)
	}
	if stored != otp {
		return apperr.Validation("Invalid or expired OTP")
	}
	if err := u.otps.Delete(ctx, usr.Email); err != nil {
		return apperr.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal(err)
	}
	usr.PasswordHash = string(hash)
	if err := u.users.Save(ctx, usr); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
