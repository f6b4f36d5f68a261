// Copyright (c) 2026 Foodgram

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
	"github.com/IvanZabelin/foodgram/internal/platform/sec"
	"github.com/IvanZabelin/foodgram/internal/users/auth"
)

// # Fakes

type fakeUserRepo struct {
	users  map[int64]*auth.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*auth.User{}, nextID: 1}
}

func (repo *fakeUserRepo) Create(_ context.Context, user *auth.User) error {
	user.ID = repo.nextID
	repo.nextID++
	repo.users[user.ID] = user
	return nil
}

func (repo *fakeUserRepo) FindByID(_ context.Context, id int64) (*auth.User, error) {
	user, ok := repo.users[id]
	if !ok {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

func (repo *fakeUserRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range repo.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperr.NotFound("user")
}

func (repo *fakeUserRepo) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	for _, user := range repo.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, apperr.NotFound("user")
}

func (repo *fakeUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	user, ok := repo.users[id]
	if !ok {
		return apperr.NotFound("user")
	}
	user.PasswordHash = passwordHash
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]bool{}}
}

func (repo *fakeSessionRepo) Create(_ context.Context, sessionKey string, _ time.Duration) error {
	repo.sessions[sessionKey] = true
	return nil
}

func (repo *fakeSessionRepo) Exists(_ context.Context, sessionKey string) (bool, error) {
	return repo.sessions[sessionKey], nil
}

func (repo *fakeSessionRepo) Delete(_ context.Context, sessionKey string) error {
	delete(repo.sessions, sessionKey)
	return nil
}

func newTestService(t *testing.T) (*auth.Service, *fakeUserRepo, *fakeSessionRepo) {
	t.Helper()

	tokenService, err := sec.NewTokenService("test-secret-at-least-32-characters", "foodgram.test")
	require.NoError(t, err)

	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	service := auth.NewService(users, sessions, tokenService, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return service, users, sessions
}

func validRegistration() auth.RegisterInput {
	return auth.RegisterInput{
		Username:  "ivan",
		Email:     "ivan@example.com",
		FirstName: "Ivan",
		LastName:  "Zabelin",
		Password:  "correct horse battery",
	}
}

// # Tests

/*
TestRegister covers enrollment: hashing, role assignment, duplicate
identities and field validation.
*/
func TestRegister(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		service, _, _ := newTestService(t)

		user, err := service.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		assert.Equal(t, "ivan", user.Username)
		assert.Equal(t, sec.RoleMember, user.Role)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		again := validRegistration()
		again.Username = "other"
		_, err = service.Register(context.Background(), again)
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})

	t.Run("duplicate_username", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.Register(context.Background(), validRegistration())
		require.NoError(t, err)

		again := validRegistration()
		again.Email = "other@example.com"
		_, err = service.Register(context.Background(), again)
		require.Error(t, err)
		assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	})

	t.Run("invalid_fields", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*auth.RegisterInput)
		}{
			{"reserved_username", func(in *auth.RegisterInput) { in.Username = "me" }},
			{"username_bad_chars", func(in *auth.RegisterInput) { in.Username = "ivan z" }},
			{"bad_email", func(in *auth.RegisterInput) { in.Email = "not-an-email" }},
			{"short_password", func(in *auth.RegisterInput) { in.Password = "short" }},
			{"missing_first_name", func(in *auth.RegisterInput) { in.FirstName = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				service, _, _ := newTestService(t)

				input := validRegistration()
				tt.mutate(&input)

				_, err := service.Register(context.Background(), input)
				require.Error(t, err)
				assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			})
		}
	})
}

/*
TestLoginLogout drives the token lifecycle: login issues a verifiable
token, logout revokes it even though the JWT itself is still unexpired.
*/
func TestLoginLogout(t *testing.T) {
	service, _, sessions := newTestService(t)

	_, err := service.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	t.Run("wrong_password", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email: "ivan@example.com", Password: "wrong",
		})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("unknown_email", func(t *testing.T) {
		_, err := service.Login(context.Background(), auth.LoginInput{
			Email: "ghost@example.com", Password: "whatever",
		})
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	token, err := service.Login(context.Background(), auth.LoginInput{
		Email: "ivan@example.com", Password: "correct horse battery",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, sessions.sessions, 1)

	claims, err := service.VerifyAccess(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "ivan", claims.Username)

	require.NoError(t, service.Logout(context.Background(), claims))

	_, err = service.VerifyAccess(context.Background(), token)
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)

	// Logging out twice is idempotent.
	assert.NoError(t, service.Logout(context.Background(), claims))
}

/*
TestChangePassword verifies the current password gate and that the new
credential takes effect.
*/
func TestChangePassword(t *testing.T) {
	service, _, _ := newTestService(t)

	user, err := service.Register(context.Background(), validRegistration())
	require.NoError(t, err)

	t.Run("wrong_current", func(t *testing.T) {
		err := service.ChangePassword(context.Background(), user.ID, "wrong", "new password 123")
		require.Error(t, err)
		assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
	})

	t.Run("short_new", func(t *testing.T) {
		err := service.ChangePassword(context.Background(), user.ID, "correct horse battery", "tiny")
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	require.NoError(t, service.ChangePassword(context.Background(), user.ID, "correct horse battery", "new password 123"))

	_, err = service.Login(context.Background(), auth.LoginInput{
		Email: "ivan@example.com", Password: "new password 123",
	})
	assert.NoError(t, err)
}
