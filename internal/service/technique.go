package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/gahette/judo-library/internal/failure"
	"github.com/gahette/judo-library/internal/models"
	"github.com/gahette/judo-library/internal/repository"
)

// TechniqueUpdate carries a partial update; nil fields are left untouched.
type TechniqueUpdate struct {
	UserID         *int64  `json:"user_id"`
	Name           *string `json:"name"`
	Group          *string `json:"group"`
	SubGroup       *string `json:"subGroup"`
	Family         *string `json:"family"`
	KyuGoKyoNoWaza *string `json:"kyuGoKyoNoWaza"`
	GoKyoNoWaza    *string `json:"goKyoNoWaza"`
	Description    *string `json:"description"`
	Image          *string `json:"image"`
	YoutubeID      *string `json:"youtubeId"`
}

// TechniqueService drives the technique lifecycle, the same shape as the
// user one minus the credential handling.
type TechniqueService struct {
	repo   repository.TechniqueRepository
	logger *zap.Logger
}

func NewTechniqueService(repo repository.TechniqueRepository, logger *zap.Logger) *TechniqueService {
	return &TechniqueService{repo: repo, logger: logger}
}

func (s *TechniqueService) List() ([]models.Technique, error) {
	techniques, err := s.repo.GetAll()
	if err != nil {
		return nil, failure.FromStorage(err)
	}
	return techniques, nil
}

func (s *TechniqueService) Get(id int64) (*models.Technique, error) {
	if id <= 0 {
		return nil, failure.ErrMissingParameter
	}
	technique, err := s.repo.GetByID(id)
	if err != nil {
		return nil, failure.FromStorage(err)
	}
	if technique == nil {
		return nil, failure.ErrTechniqueNotFound
	}
	return technique, nil
}

// Create adds a technique to the catalog. user_id, name, group and family
// are mandatory; classification labels and media references are not.
func (s *TechniqueService) Create(technique *models.Technique) error {
	if technique.UserID <= 0 || technique.Name == "" || technique.Group == "" || technique.Family == "" {
		return failure.ErrMissingData
	}

	existing, err := s.repo.GetByName(technique.Name)
	if err != nil {
		return failure.FromStorage(err)
	}
	if existing != nil {
		return failure.TechniqueConflict(technique.Name)
	}

	if err := s.repo.Create(technique); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return failure.TechniqueConflict(technique.Name)
		}
		return failure.FromStorage(err)
	}

	s.logger.Info("Technique created", zap.Int64("id", technique.ID), zap.String("name", technique.Name))
	return nil
}

func (s *TechniqueService) Update(id int64, in TechniqueUpdate) error {
	if id <= 0 {
		return failure.ErrMissingParameter
	}

	technique, err := s.repo.GetByID(id)
	if err != nil {
		return failure.FromStorage(err)
	}
	if technique == nil {
		return failure.ErrTechniqueNotFound
	}

	if in.UserID != nil {
		technique.UserID = *in.UserID
	}
	if in.Name != nil {
		technique.Name = *in.Name
	}
	if in.Group != nil {
		technique.Group = *in.Group
	}
	if in.SubGroup != nil {
		technique.SubGroup = *in.SubGroup
	}
	if in.Family != nil {
		technique.Family = *in.Family
	}
	if in.KyuGoKyoNoWaza != nil {
		technique.KyuGoKyoNoWaza = *in.KyuGoKyoNoWaza
	}
	if in.GoKyoNoWaza != nil {
		technique.GoKyoNoWaza = *in.GoKyoNoWaza
	}
	if in.Description != nil {
		technique.Description = *in.Description
	}
	if in.Image != nil {
		technique.Image = *in.Image
	}
	if in.YoutubeID != nil {
		technique.YoutubeID = *in.YoutubeID
	}

	if err := s.repo.Update(technique); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return failure.TechniqueConflict(technique.Name)
		}
		return failure.FromStorage(err)
	}
	return nil
}

func (s *TechniqueService) Trash(id int64) error {
	if id <= 0 {
		return failure.ErrMissingParameter
	}
	if err := s.repo.Trash(id); err != nil {
		return failure.FromStorage(err)
	}
	return nil
}

func (s *TechniqueService) Untrash(id int64) error {
	if id <= 0 {
		return failure.ErrMissingParameter
	}
	if err := s.repo.Untrash(id); err != nil {
		return failure.FromStorage(err)
	}
	return nil
}

func (s *TechniqueService) Purge(id int64) error {
	if id <= 0 {
		return failure.ErrMissingParameter
	}
	if err := s.repo.Purge(id); err != nil {
		return failure.FromStorage(err)
	}
	return nil
}
