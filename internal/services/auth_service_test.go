package services

import (
	"context"
	"testing"
	"time"

	"tripbuilder/internal/domain"
	"tripbuilder/internal/domain/models"
	"tripbuilder/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var userColumns = []string{"id", "name", "username", "email", "password_hash", "role", "status"}

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return AuthService{
		Users:    repositories.UserRepository{DB: db},
		Secret:   []byte("test-secret"),
		TTL:      time.Hour,
		HashCost: bcrypt.MinCost,
	}, mock
}

func TestRegister(t *testing.T) {
	svc, mock := newAuthService(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\)\\s+FROM users").WithArgs("ana@example.com", "ana").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("INSERT INTO users").
		WithArgs("Ana", "ana", "ana@example.com", sqlmock.AnyArg(), domain.RoleUser, domain.StatusActive).
		WillReturnResult(sqlmock.NewResult(4, 1))

	u, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Ana", Username: "ana", Email: "Ana@Example.com", Password: "password1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), u.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password1")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterRejectsDuplicatesAndShortPasswords(t *testing.T) {
	svc, mock := newAuthService(t)

	_, err := svc.Register(context.Background(), RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "short"})
	assert.True(t, domain.IsValidation(err), "got %v", err)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\)\\s+FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))
	_, err = svc.Register(context.Background(), RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "password1"})
	assert.True(t, domain.IsConflict(err), "got %v", err)
}

func TestLoginAndTokenRoundTrip(t *testing.T) {
	svc, mock := newAuthService(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery("FROM users WHERE email = \\? OR username = \\?").WithArgs("ana", "ana").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(4, "Ana", "ana", "ana@example.com", string(hash), domain.RoleAdmin, domain.StatusActive))

	res, err := svc.Login(context.Background(), "ana", "password1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "ana", res.User.Username)

	claims, err := svc.ParseToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(4), claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)

	mock.ExpectQuery("FROM users WHERE email = \\? OR username = \\?").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(4, "Ana", "ana", "ana@example.com", string(hash), domain.RoleUser, domain.StatusActive))
	_, err = svc.Login(context.Background(), "ana", "wrong-password")
	assert.True(t, domain.IsUnauthorized(err), "got %v", err)

	mock.ExpectQuery("FROM users WHERE email = \\? OR username = \\?").
		WillReturnRows(sqlmock.NewRows(userColumns))
	_, err = svc.Login(context.Background(), "nobody", "password1")
	assert.True(t, domain.IsUnauthorized(err), "got %v", err)
}

func TestParseTokenRejectsExpiredAndForeignTokens(t *testing.T) {
	svc, _ := newAuthService(t)
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.Now = func() time.Time { return issued }

	token, _, err := svc.IssueToken(models.User{ID: 1, Username: "ana", Role: domain.RoleUser})
	require.NoError(t, err)

	later := svc
	later.Now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = later.ParseToken(token)
	assert.True(t, domain.IsUnauthorized(err), "got %v", err)

	other := svc
	other.Secret = []byte("another-secret")
	_, err = other.ParseToken(token)
	assert.True(t, domain.IsUnauthorized(err), "got %v", err)

	_, err = svc.ParseToken("not-a-token")
	assert.True(t, domain.IsUnauthorized(err), "got %v", err)
}
