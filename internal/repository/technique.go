package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/models"
)

type TechniqueRepository interface {
	GetAll() ([]models.Technique, error)
	GetByID(id int64) (*models.Technique, error)
	GetByName(name string) (*models.Technique, error)
	Create(technique *models.Technique) error
	Update(technique *models.Technique) error
	Trash(id int64) error
	Untrash(id int64) error
	Purge(id int64) error
}

type techniqueRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTechniqueRepository(db *sqlx.DB, logger *zap.Logger) TechniqueRepository {
	return &techniqueRepository{db: db, logger: logger}
}

// "group" is quoted because it is a reserved word in SQL.
const techniqueColumns = `id, user_id, name, "group", sub_group, family, kyu_go_kyo_no_waza, go_kyo_no_waza, description, image, youtube_id, created_at, updated_at, deleted_at`

func (r *techniqueRepository) GetAll() ([]models.Technique, error) {
	techniques := []models.Technique{}
	query := `SELECT ` + techniqueColumns + ` FROM techniques ORDER BY id`
	err := r.db.Select(&techniques, query)
	if err != nil {
		return nil, err
	}
	return techniques, nil
}

func (r *techniqueRepository) GetByID(id int64) (*models.Technique, error) {
	var technique models.Technique
	query := `SELECT ` + techniqueColumns + ` FROM techniques WHERE id = $1`
	err := r.db.Get(&technique, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Technique not found
		}
		return nil, err
	}
	return &technique, nil
}

func (r *techniqueRepository) GetByName(name string) (*models.Technique, error) {
	var technique models.Technique
	query := `SELECT ` + techniqueColumns + ` FROM techniques WHERE name = $1`
	err := r.db.Get(&technique, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &technique, nil
}

func (r *techniqueRepository) Create(technique *models.Technique) error {
	query := `INSERT INTO techniques (user_id, name, "group", sub_group, family, kyu_go_kyo_no_waza, go_kyo_no_waza, description, image, youtube_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at`
	err := r.db.QueryRowx(query, technique.UserID, technique.Name, technique.Group, technique.SubGroup,
		technique.Family, technique.KyuGoKyoNoWaza, technique.GoKyoNoWaza, technique.Description,
		technique.Image, technique.YoutubeID).
		Scan(&technique.ID, &technique.CreatedAt, &technique.UpdatedAt)
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w: %v", ErrDuplicate, err)
		}
		return err
	}
	return nil
}

func (r *techniqueRepository) Update(technique *models.Technique) error {
	query := `UPDATE techniques SET user_id = $1, name = $2, "group" = $3, sub_group = $4, family = $5,
	          kyu_go_kyo_no_waza = $6, go_kyo_no_waza = $7, description = $8, image = $9, youtube_id = $10, updated_at = now()
	          WHERE id = $11`
	_, err := r.db.Exec(query, technique.UserID, technique.Name, technique.Group, technique.SubGroup,
		technique.Family, technique.KyuGoKyoNoWaza, technique.GoKyoNoWaza, technique.Description,
		technique.Image, technique.YoutubeID, technique.ID)
	if err != nil && isDuplicate(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

func (r *techniqueRepository) Trash(id int64) error {
	query := `UPDATE techniques SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *techniqueRepository) Untrash(id int64) error {
	query := `UPDATE techniques SET deleted_at = NULL WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

func (r *techniqueRepository) Purge(id int64) error {
	query := `DELETE FROM techniques WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
