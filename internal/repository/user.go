package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/models"
)

// UserRepository gives access to user rows. Lookups see active and trashed
// rows alike; purged rows are gone for good.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Trash(id int64) error
	Untrash(id int64) error
	Purge(id int64) error
}

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *sqlx.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

const userColumns = `id, last_name, first_name, pseudo, email, password, created_at, updated_at, deleted_at`

func (r *userRepository) GetAll() ([]models.User, error) {
	users := []models.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	err := r.db.Select(&users, query)
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.db.Get(&user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	err := r.db.Get(&user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(user *models.User) error {
	query := `INSERT INTO users (last_name, first_name, pseudo, email, password)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	err := r.db.QueryRowx(query, user.LastName, user.FirstName, user.Pseudo, user.Email, user.Password).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return err
	}
	return nil
}

func (r *userRepository) Update(user *models.User) error {
	query := `UPDATE users SET last_name = $1, first_name = $2, pseudo = $3, email = $4, password = $5, updated_at = now()
	          WHERE id = $6`
	_, err := r.db.Exec(query, user.LastName, user.FirstName, user.Pseudo, user.Email, user.Password, user.ID)
	if err != nil && isDuplicate(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func (r *userRepository) Trash(id int64) error {
	query := `UPDATE users SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *userRepository) Untrash(id int64) error {
	query := `UPDATE users SET deleted_at = NULL WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *userRepository) Purge(id int64) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
