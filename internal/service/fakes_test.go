package service

import (
	"testing"
	"time"

	"github.com/gahette/judo-library/internal/models"
	"github.com/gahette/judo-library/internal/repository"
)

// fakeUserRepo is an in-memory repository.UserRepository.
type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
	err    error // when set, every call fails with it
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.User{}
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) GetByID(id int64) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email || u.Pseudo == user.Pseudo {
			return repository.ErrDuplicate
		}
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.ID != user.ID && (u.Email == user.Email || u.Pseudo == user.Pseudo) {
			return repository.ErrDuplicate
		}
	}
	copied := *user
	copied.UpdatedAt = time.Now()
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Trash(id int64) error {
	if r.err != nil {
		return r.err
	}
	if u, ok := r.users[id]; ok && u.DeletedAt == nil {
		now := time.Now()
		u.DeletedAt = &now
	}
	return nil
}

func (r *fakeUserRepo) Untrash(id int64) error {
	if r.err != nil {
		return r.err
	}
	if u, ok := r.users[id]; ok {
		u.DeletedAt = nil
	}
	return nil
}

func (r *fakeUserRepo) Purge(id int64) error {
	if r.err != nil {
		return r.err
	}
	delete(r.users, id)
	return nil
}

// fakeTechniqueRepo is an in-memory repository.TechniqueRepository.
type fakeTechniqueRepo struct {
	techniques map[int64]*models.Technique
	nextID     int64
	err        error
}

func newFakeTechniqueRepo() *fakeTechniqueRepo {
	return &fakeTechniqueRepo{techniques: map[int64]*models.Technique{}, nextID: 1}
}

func (r *fakeTechniqueRepo) GetAll() ([]models.Technique, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Technique{}
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.techniques[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTechniqueRepo) GetByID(id int64) (*models.Technique, error) {
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.techniques[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTechniqueRepo) GetByName(name string) (*models.Technique, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, t := range r.techniques {
		if t.Name == name {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTechniqueRepo) Create(technique *models.Technique) error {
	if r.err != nil {
		return r.err
	}
	for _, t := range r.techniques {
		if t.Name == technique.Name {
			return repository.ErrDuplicate
		}
	}
	technique.ID = r.nextID
	technique.CreatedAt = time.Now()
	technique.UpdatedAt = technique.CreatedAt
	r.nextID++
	copied := *technique
	r.techniques[technique.ID] = &copied
	return nil
}

func (r *fakeTechniqueRepo) Update(technique *models.Technique) error {
	if r.err != nil {
		return r.err
	}
	for _, t := range r.techniques {
		if t.ID != technique.ID && t.Name == technique.Name {
			return repository.ErrDuplicate
		}
	}
	copied := *technique
	copied.UpdatedAt = time.Now()
	r.techniques[technique.ID] = &copied
	return nil
}

func (r *fakeTechniqueRepo) Trash(id int64) error {
	if r.err != nil {
		return r.err
	}
	if t, ok := r.techniques[id]; ok && t.DeletedAt == nil {
		now := time.Now()
		t.DeletedAt = &now
	}
	return nil
}

func (r *fakeTechniqueRepo) Untrash(id int64) error {
	if r.err != nil {
		return r.err
	}
	if t, ok := r.techniques[id]; ok {
		t.DeletedAt = nil
	}
	return nil
}

func (r *fakeTechniqueRepo) Purge(id int64) error {
	if r.err != nil {
		return r.err
	}
	delete(r.techniques, id)
	return nil
}

// explodingUserRepo fails the test on any access. Used to prove that
// invalid ids are rejected before the store is consulted.
type explodingUserRepo struct {
	t *testing.T
}

func (r explodingUserRepo) fail() {
	r.t.Helper()
	r.t.Error("store was accessed")
}

func (r explodingUserRepo) GetAll() ([]models.User, error) { r.fail(); return nil, nil }

func (r explodingUserRepo) GetByID(int64) (*models.User, error) { r.fail(); return nil, nil }

func (r explodingUserRepo) GetByEmail(string) (*models.User, error) { r.fail(); return nil, nil }

func (r explodingUserRepo) Create(*models.User) error { r.fail(); return nil }

func (r explodingUserRepo) Update(*models.User) error { r.fail(); return nil }

func (r explodingUserRepo) Trash(int64) error { r.fail(); return nil }

func (r explodingUserRepo) Untrash(int64) error { r.fail(); return nil }

func (r explodingUserRepo) Purge(int64) error { r.fail(); return nil }
