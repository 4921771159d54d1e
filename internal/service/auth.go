package service

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"expedientes/internal/auth"
	"expedientes/internal/model"
	"expedientes/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// AuthService authenticates users and issues session tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token.
	// Unknown users and wrong passwords are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

type authService struct {
	users  repository.UserRepository
	issuer *auth.TokenIssuer
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, issuer *auth.TokenIssuer) AuthService {
	return &authService{users: users, issuer: issuer}
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := s.issuer.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: *user}, nil
}
