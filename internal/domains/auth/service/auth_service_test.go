package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/internal/domains/auth/model"
	"github.com/KaramAbuGhaboush/Tasami-Website-sub002/pkg/jwt"
)

type fakeAuthRepo struct {
	admins map[string]*model.Admin
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{admins: make(map[string]*model.Admin)}
}

func (r *fakeAuthRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	admin, ok := r.admins[email]
	if !ok {
		return nil, model.ErrInvalidCredentials
	}
	return admin, nil
}

func (r *fakeAuthRepo) addAdmin(t *testing.T, email, password string) *model.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &model.Admin{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Admin",
		PasswordHash: string(hash),
	}
	r.admins[email] = admin
	return admin
}

func TestLoginIssuesToken(t *testing.T) {
	repo := newFakeAuthRepo()
	admin := repo.addAdmin(t, "admin@tasami.co", "s3cret-pass")

	manager := jwt.NewManager("test-secret", 60)
	svc := NewAuthService(repo, manager)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "Admin@Tasami.co",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, admin.ID, resp.Admin.ID)

	claims, err := manager.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.AdminID)
	assert.Equal(t, admin.Email, claims.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := newFakeAuthRepo()
	repo.addAdmin(t, "admin@tasami.co", "s3cret-pass")

	svc := NewAuthService(repo, jwt.NewManager("test-secret", 60))

	_, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "admin@tasami.co",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	// unknown accounts fail with the same error as bad passwords
	_, err = svc.Login(context.Background(), &model.LoginRequest{
		Email:    "nobody@tasami.co",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), jwt.NewManager("test-secret", 60))

	_, err := svc.Login(context.Background(), &model.LoginRequest{Email: "not-an-email", Password: "x"})
	assert.Error(t, err)

	_, err = svc.Login(context.Background(), &model.LoginRequest{Email: "admin@tasami.co"})
	assert.Error(t, err)
}
