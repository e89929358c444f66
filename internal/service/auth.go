package service

import (
	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/failure"
	"github.com/gahette/judo-library/internal/repository"
)

// AuthService drives the login flow: credential check then token issuance.
type AuthService struct {
	users  repository.UserRepository
	hasher *PasswordHasher
	tokens *TokenService
	logger *zap.Logger
}

func NewAuthService(users repository.UserRepository, hasher *PasswordHasher, tokens *TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Login verifies the credentials and returns a signed access token.
func (s *AuthService) Login(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", failure.ErrBadCredentials
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", failure.FromStorage(err)
	}
	if user == nil {
		return "", failure.ErrAccountNotFound
	}

	ok, err := s.hasher.Check(password, user.Password)
	if err != nil {
		return "", failure.Wrap(failure.Unclassified, "Login process failed", err)
	}
	if !ok {
		return "", failure.ErrWrongPassword
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to sign access token", zap.Error(err))
		return "", failure.Wrap(failure.Unclassified, "Login process failed", err)
	}

	s.logger.Info("User logged in", zap.Int64("id", user.ID), zap.String("email", user.Email))
	return token, nil
}
