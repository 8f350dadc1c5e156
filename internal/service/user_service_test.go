package service

import (
	"context"
	"testing"

	dom "Assistant/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	byEmail map[string]dom.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]dom.User{}, nextID: 1}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *fakeUserRepo) Create(_ context.Context, name, email, passwordHash string) (dom.User, error) {
	u := dom.User{ID: r.nextID, Name: name, Email: email, PasswordHash: passwordHash}
	r.nextID++
	r.byEmail[email] = u
	return u, nil
}

func TestUserService_RegisterAndValidate(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	u, err := svc.Register(context.Background(), "Ada", "  Ada@Example.COM ", "s3cretpw")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email, "email is stored lowercased")
	assert.NotEqual(t, "s3cretpw", u.PasswordHash, "password must be hashed")

	got, err := svc.ValidateCredentials(context.Background(), "ADA@example.com", "s3cretpw")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserService_ValidateCredentials_WrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "s3cretpw")
	require.NoError(t, err)

	_, err = svc.ValidateCredentials(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_ValidateCredentials_UnknownEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.ValidateCredentials(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_Register_EmptyFields(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), "", "a@b.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "Ada", "", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Register(context.Background(), "Ada", "a@b.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
