package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"schoolsite/internal/apperr"
	"schoolsite/internal/domain/model"
	repo "schoolsite/internal/repository"
	"schoolsite/internal/usecase"
)

type issuerStub struct{}

func (issuerStub) Issue(userID int64, role model.Role, now time.Time) (string, time.Time, error) {
	return "signed-token", now.Add(time.Hour), nil
}

func adminUser(t *testing.T, password string) model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return model.User{ID: 1, Email: "admin@school.test", PasswordHash: string(hash), Role: model.RoleAdmin}
}

func TestAuthUsecase_Login_Success(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(users, issuerStub{})

	users.On("FindByEmail", mock.Anything, "admin@school.test").
		Return(adminUser(t, "correct horse"), nil)

	out, err := uc.Login(context.Background(), "  Admin@School.Test ", "correct horse")
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.False(t, out.ExpiresAt.IsZero())
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(users, issuerStub{})

	users.On("FindByEmail", mock.Anything, "admin@school.test").
		Return(adminUser(t, "correct horse"), nil)

	_, err := uc.Login(context.Background(), "admin@school.test", "wrong")
	assertCode(t, err, apperr.CodeUnauthorized, "")
}

func TestAuthUsecase_Login_UnknownEmailLooksTheSame(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(users, issuerStub{})

	users.On("FindByEmail", mock.Anything, "nobody@school.test").
		Return(model.User{}, repo.ErrNotFound)

	_, err := uc.Login(context.Background(), "nobody@school.test", "whatever")
	assertCode(t, err, apperr.CodeUnauthorized, "")
}

func TestAuthUsecase_EnsureAdmin_SeedsOnce(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(users, issuerStub{})

	users.On("FindByEmail", mock.Anything, "admin@school.test").
		Return(model.User{}, repo.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "admin@school.test" && u.Role == model.RoleAdmin &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
	})).Return(model.User{ID: 1}, nil)

	err := uc.EnsureAdmin(context.Background(), "admin@school.test", "s3cret")
	assert.NoError(t, err)
	users.AssertExpectations(t)
}

func TestAuthUsecase_EnsureAdmin_SkipsWhenPresent(t *testing.T) {
	users := new(UserRepoMock)
	uc := usecase.NewAuthUsecase(users, issuerStub{})

	users.On("FindByEmail", mock.Anything, "admin@school.test").
		Return(adminUser(t, "x"), nil)

	err := uc.EnsureAdmin(context.Background(), "admin@school.test", "x")
	assert.NoError(t, err)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
