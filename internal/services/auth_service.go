package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tripbuilder/internal/domain"
	"tripbuilder/internal/domain/models"
	"tripbuilder/internal/repositories"
	"tripbuilder/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

var errBadCredentials = domain.UnauthorizedError{Msg: "invalid username/email or password"}

// Claims is the session token payload.
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService struct {
	Users     repositories.UserRepository
	Secret    []byte
	TTL       time.Duration
	HashCost  int
	Now       func() time.Time
	RequestID string
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	User      models.PublicUser `json:"user"`
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s AuthService) cost() int {
	if s.HashCost > 0 {
		return s.HashCost
	}
	return bcrypt.DefaultCost
}

func (s AuthService) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	return s.createUser(ctx, req, domain.RoleUser)
}

// CreateAdmin registers a user holding the admin role.
func (s AuthService) CreateAdmin(ctx context.Context, req RegisterRequest) (models.User, error) {
	return s.createUser(ctx, req, domain.RoleAdmin)
}

func (s AuthService) createUser(ctx context.Context, req RegisterRequest, role string) (models.User, error) {
	u := models.User{
		Name:     utils.NormalizeSpace(req.Name),
		Username: strings.TrimSpace(req.Username),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Role:     role,
		Status:   domain.StatusActive,
	}
	if u.Username == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "required"}
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "invalid email"}
	}
	if len(req.Password) < minPasswordLen {
		return models.User{}, domain.ValidationError{Field: "password", Msg: fmt.Sprintf("must be at least %d characters", minPasswordLen)}
	}
	if u.Name == "" {
		u.Name = u.Username
	}

	n, err := s.Users.CountByEmailOrUsername(ctx, u.Email, u.Username)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	if n > 0 {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email or username already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost())
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}
	u.PasswordHash = string(hash)

	if err := s.Users.Create(ctx, &u); err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "register", "user registered", "user_id", u.ID, "role", u.Role)
	return u, nil
}

// Login checks credentials by email or username and issues a session token.
func (s AuthService) Login(ctx context.Context, identifier, password string) (LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return LoginResult{}, errBadCredentials
	}

	u, err := s.Users.GetByLogin(ctx, identifier)
	if err != nil {
		if domain.IsNotFound(err) {
			return LoginResult{}, errBadCredentials
		}
		return LoginResult{}, domain.InternalError{Err: err}
	}
	if u.Status != domain.StatusActive {
		return LoginResult{}, domain.UnauthorizedError{Msg: "account is not active"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, errBadCredentials
	}

	token, exp, err := s.IssueToken(u)
	if err != nil {
		return LoginResult{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user logged in", "user_id", u.ID)
	return LoginResult{Token: token, ExpiresAt: exp, User: u.ToPublic()}, nil
}

func (s AuthService) IssueToken(u models.User) (string, time.Time, error) {
	if len(s.Secret) == 0 {
		return "", time.Time{}, domain.InternalError{Msg: "jwt secret is not configured"}
	}
	now := s.now()
	exp := now.Add(s.TTL)
	claims := Claims{
		UserID: u.ID,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
	if err != nil {
		return "", time.Time{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	return signed, exp, nil
}

// ParseToken verifies signature and expiry and returns the claims.
func (s AuthService) ParseToken(raw string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, domain.UnauthorizedError{Msg: "session expired", Err: err}
		}
		return Claims{}, domain.UnauthorizedError{Msg: "invalid session token", Err: err}
	}
	if !token.Valid || claims.UserID <= 0 {
		return Claims{}, domain.UnauthorizedError{Msg: "invalid session token"}
	}
	return claims, nil
}

// Authenticate resolves a session token into the caller identity.
func (s AuthService) Authenticate(raw string) (domain.RequestContext, error) {
	claims, err := s.ParseToken(raw)
	if err != nil {
		return domain.RequestContext{}, err
	}
	return domain.RequestContext{UserID: claims.UserID, Role: claims.Role}, nil
}

// ListUsers returns every account without password hashes.
func (s AuthService) ListUsers(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].ToPublic())
	}
	return out, nil
}
