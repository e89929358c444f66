package service

import (
	"errors"
	"net/mail"

	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/failure"
	"github.com/gahette/judo-library/internal/models"
	"github.com/gahette/judo-library/internal/repository"
)

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	LastName  *string `json:"lastName"`
	FirstName *string `json:"firstName"`
	Pseudo    *string `json:"pseudo"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
}

// UserService drives the user lifecycle: create, update, trash, untrash,
// purge. All validation happens here, before any store access.
type UserService struct {
	repo   repository.UserRepository
	hasher *PasswordHasher
	logger *zap.Logger
}

func NewUserService(repo repository.UserRepository, hasher *PasswordHasher, logger *zap.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// List returns every non-purged user, trashed ones included.
func (s *UserService) List() ([]models.User, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, failure.FromStorage(err)
	}
	return users, nil
}

func (s *UserService) Get(id int64) (*models.User, error) {
	if id <= 0 {
		return nil, failure.ErrMissingParameter
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, failure.FromStorage(err)
	}
	if user == nil {
		return nil, failure.ErrUserNotFound
	}
	return user, nil
}

// Create registers a new user. The plaintext password in user.Password is
// replaced by its hash before anything is persisted.
func (s *UserService) Create(user *models.User) error {
	if user.LastName == "" || user.FirstName == "" || user.Pseudo == "" || user.Email == "" || user.Password == "" {
		return failure.ErrMissingData
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return failure.ErrBadEmail
	}

	// Fast-path check for a better message; the unique constraint in the
	// database is the real arbiter under concurrent creates.
	existing, err := s.repo.GetByEmail(user.Email)
	if err != nil {
		return failure.FromStorage(err)
	}
	if existing != nil {
		return failure.UserConflict(user.LastName)
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		return failure.Wrap(failure.Unclassified, "Hash Process Error", err)
	}
	user.Password = hash

	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return failure.UserConflict(user.LastName)
		}
		return failure.FromStorage(err)
	}

	s.logger.Info("User created", zap.Int64("id", user.ID), zap.String("pseudo", user.Pseudo))
	return nil
}

// Update applies a partial update to an existing user, active or trashed.
// A supplied password is hashed before it is stored.
func (s *UserService) Update(id int64, in UserUpdate) error {
	if id <= 0 {
		return failure.ErrMissingParameter
	}

	user, err := s.repo.GetByID(id)
	if err != nil {
		return failure.FromStorage(err)
	}
	if user == nil {
		return failure.ErrUserNotFound
	}

	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.Pseudo != nil {
		user.Pseudo = *in.Pseudo
	}
	if in.Email != nil {
		if _, err := mail.ParseAddress(*in.Email); err != nil {
			return failure.ErrBadEmail
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return failure.Wrap(failure.Unclassified, "Hash Process Error", err)
		}
		user.Password = hash
	}

	if err := s.repo.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return failure.UserConflict(user.LastName)
		}
		return failure.FromStorage(err)
	}
	return nil
}

func (s *UserService) Trash(id int64) error {
	if id <= 0 {
		return failure.ErrMissingParameter
	}
	if err := s.repo.Trash(id); err != nil {
		return failure.FromStorage(err)
	}
	return nil
}

func (s *UserService) Untrash(id int64) error {
	if id <= 0 {
		return failure.ErrMissingParameter
	}
	if err := s.repo.Untrash(id); err != nil {
		return failure.FromStorage(err)
	}
	return nil
}

func (s *UserService) Purge(id int64) error {
	if id <= 0 {
		return failure.ErrMissingParameter
	}
	if err := s.repo.Purge(id); err != nil {
		return failure.FromStorage(err)
	}
	return nil
}
