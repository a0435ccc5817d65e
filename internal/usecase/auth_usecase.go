package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
)

// TokenIssuer signs access tokens; the concrete JWT issuer lives in main.
type TokenIssuer interface {
	Issue(userID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

type AuthUsecase struct {
	users  repo.UserRepository
	issuer TokenIssuer
}

func NewAuthUsecase(users repo.UserRepository, issuer TokenIssuer) *AuthUsecase {
	return &AuthUsecase{users: users, issuer: issuer}
}

type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (u *AuthUsecase) Login(ctx context.Context, email, password string) (LoginOutput, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return LoginOutput{}, apperr.Unauthorized()
	}

	usr, err := u.users.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		return LoginOutput{}, apperr.Unauthorized()
	}
	if err != nil {
		return LoginOutput{}, apperr.Internal()
	}

	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)) != nil {
		return LoginOutput{}, apperr.Unauthorized()
	}

	token, exp, err := u.issuer.Issue(usr.ID, usr.Role, time.Now())
	if err != nil {
		return LoginOutput{}, apperr.Internal()
	}
	return LoginOutput{Token: token, ExpiresAt: exp}, nil
}

// EnsureAdmin seeds the admin account on startup when it does not exist yet.
func (u *AuthUsecase) EnsureAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if err != repo.ErrNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	_, err = u.users.Create(ctx, model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	})
	return err
}
