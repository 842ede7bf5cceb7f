package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	userRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/user"
	"github.com/quickcourt/QC-BookingService/internal/service/users/models"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, userRepo.ErrEmailTaken
	}
	f.nextID++
	u.ID = f.nextID
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(userID int64, role, _ string) (string, error) {
	return "token-for-user", nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     "Priya",
		Email:    "priya@example.com",
		Password: "correct horse",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeIssuer{}, nopLogger{})

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "token-for-user", resp.Token)
	assert.Equal(t, "priya@example.com", resp.User.Email)
	assert.Equal(t, string(domain.RoleCustomer), resp.User.Role)

	// Пароль хранится только в виде bcrypt хеша
	stored := repo.byEmail["priya@example.com"]
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))
}

func TestRegister_NormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeIssuer{}, nopLogger{})

	req := registerRequest()
	req.Email = "  Priya@Example.COM "

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", resp.User.Email)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeIssuer{}, nopLogger{})

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_Validation(t *testing.T) {
	svc := NewService(newFakeUserRepo(), fakeIssuer{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*models.RegisterRequest)
	}{
		{"empty name", func(r *models.RegisterRequest) { r.Name = "" }},
		{"empty email", func(r *models.RegisterRequest) { r.Email = "" }},
		{"malformed email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *models.RegisterRequest) { r.Password = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := registerRequest()
			tt.mutate(req)
			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeIssuer{}, nopLogger{})

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "priya@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for-user", resp.Token)
	assert.Equal(t, int64(1), resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, fakeIssuer{}, nopLogger{})

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "priya@example.com",
		Password: "wrong horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), fakeIssuer{}, nopLogger{})

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	// Неизвестный email даёт ту же ошибку, что и неверный пароль
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
