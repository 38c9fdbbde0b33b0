package auth

import (
	"context"
	"errors"

	"elite-paisa-backend/internal/domain/apperr"
	userDomain "elite-paisa-backend/internal/domain/user"
	"elite-paisa-backend/pkg/id"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenIssuer signs session tokens carrying only the subject id.
type TokenIssuer interface {
	Generate(userID string) (string, error)
}

// BootstrapPolicy holds the out-of-band admin credential pair. Matching it at
// login is the only path by which an identity acquires the admin role.
type BootstrapPolicy struct {
	Email    string
	Password string
}

func (p BootstrapPolicy) Matches(email, password string) bool {
	return p.Email != "" && email == p.Email && password == p.Password
}

type Usecase struct {
	users     userDomain.Repository
	tokens    TokenIssuer
	bootstrap BootstrapPolicy
}

func NewUsecase(users userDomain.Repository, tokens TokenIssuer, bootstrap BootstrapPolicy) *Usecase {
	return &Usecase{users: users, tokens: tokens, bootstrap: bootstrap}
}

func userDTO(u *userDomain.User) UserDTO {
	return UserDTO{
		ID:       u.UserID,
		FullName: u.FullName,
		Email:    u.Email,
		PhoneNo:  u.PhoneNo,
		Role:     string(u.Role),
	}
}

func (u *Usecase) issue(usr *userDomain.User) (*AuthResult, error) {
	tok, err := u.tokens.Generate(usr.UserID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResult{Token: tok, User: userDTO(usr)}, nil
}

// Register creates a client identity. Self-service admin signup is refused;
// duplicate email keeps its historical 400 mapping (conflict kind).
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Role == string(userDomain.RoleAdmin) {
		return nil, apperr.Authorization("Admin registration is not allowed. Admin access is controlled via environment variables.")
	}
	if in.Role != "" && !userDomain.ValidRole(userDomain.Role(in.Role)) {
		return nil, apperr.Validation("Invalid role. Must be either admin or client")
	}

	_, err := u.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, apperr.Conflict("User already exists with this email")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.Internal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	usr := &userDomain.User{
		UserID:       id.NewID32(),
		FullName:     in.FullName,
		Email:        in.Email,
		PhoneNo:      in.PhoneNo,
		PasswordHash: string(hash),
		Role:         userDomain.RoleClient,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, apperr.Internal(err)
	}
	return u.issue(usr)
}

// Login authenticates a credential pair. The bootstrap pair is checked first
// and idempotently provisions (or promotes) the admin identity.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if u.bootstrap.Matches(in.Email, in.Password) {
		return u.loginBootstrapAdmin(ctx)
	}

	usr, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Authentication("Invalid credentials")
		}
		return nil, apperr.Internal(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return nil, apperr.Authentication("Invalid credentials")
	}
	return u.issue(usr)
}

func (u *Usecase) loginBootstrapAdmin(ctx context.Context) (*AuthResult, error) {
	usr, err := u.users.GetByEmail(ctx, u.bootstrap.Email)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, herr := bcrypt.GenerateFromPassword([]byte(u.bootstrap.Password), bcrypt.DefaultCost)
		if herr != nil {
			return nil, apperr.Internal(herr)
		}
		usr = &userDomain.User{
			UserID:       id.NewID32(),
			FullName:     "Admin User",
			Email:        u.bootstrap.Email,
			PhoneNo:      "0000000000",
			PasswordHash: string(hash),
			Role:         userDomain.RoleAdmin,
		}
		if cerr := u.users.Create(ctx, usr); cerr != nil {
			return nil, apperr.Internal(cerr)
		}
	case err != nil:
		return nil, apperr.Internal(err)
	case usr.Role != userDomain.RoleAdmin:
		usr.Role = userDomain.RoleAdmin
		if serr := u.users.Save(ctx, usr); serr != nil {
			return nil, apperr.Internal(serr)
		}
	}
	return u.issue(usr)
}

// Principal resolves a verified token subject to a live principal. The role
// comes from the store, never from the token, so revoked or promoted roles
// take effect immediately.
func (u *Usecase) Principal(ctx context.Context, userID string) (*userDomain.Principal, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Authentication("Not authorized, user not found")
		}
		return nil, apperr.Internal(err)
	}
	p := usr.Principal()
	return &p, nil
}
