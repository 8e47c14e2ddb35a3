package repositories

import (
	"ideahub/models"
)

type IdeaRepository interface {
	GetAll() ([]models.Idea, error)
	GetByID(id uint) (*models.Idea, error)
	Create(idea *models.Idea) error
	Modify(id uint, fn func(*models.Idea) error) (*models.Idea, error)
	Delete(id uint) error
}

type ideaRepository struct {
	file jsonFile
}

func NewIdeaRepository(path string) IdeaRepository {
	return &ideaRepository{file: jsonFile{path: path}}
}

// nextIdeaID returns max existing id + 1, so ids are never reused after a
// deletion of the latest idea only; holes from earlier deletions stay holes.
func nextIdeaID(ideas []models.Idea) uint {
	var max uint
	for _, idea := range ideas {
		if idea.ID > max {
			max = idea.ID
		}
	}
	return max + 1
}

func (r *ideaRepository) GetAll() ([]models.Idea, error) {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	var ideas []models.Idea
	if err := r.file.read(&ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

func (r *ideaRepository) GetByID(id uint) (*models.Idea, error) {
	ideas, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range ideas {
		if ideas[i].ID == id {
			return &ideas[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns the next id and appends under the store lock.
func (r *ideaRepository) Create(idea *models.Idea) error {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	var ideas []models.Idea
	if err := r.file.read(&ideas); err != nil {
		return err
	}

	idea.ID = nextIdeaID(ideas)
	ideas = append(ideas, *idea)
	return r.file.write(ideas)
}

// Modify applies fn to the idea with the given id and persists the whole
// collection, all under the store lock. If fn returns an error nothing is
// written.
func (r *ideaRepository) Modify(id uint, fn func(*models.Idea) error) (*models.Idea, error) {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	var ideas []models.Idea
	if err := r.file.read(&ideas); err != nil {
		return nil, err
	}

	for i := range ideas {
		if ideas[i].ID == id {
			if err := fn(&ideas[i]); err != nil {
				return nil, err
			}
			if err := r.file.write(ideas); err != nil {
				return nil, err
			}
			updated := ideas[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (r *ideaRepository) Delete(id uint) error {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	var ideas []models.Idea
	if err := r.file.read(&ideas); err != nil {
		return err
	}

	kept := ideas[:0]
	for _, idea := range ideas {
		if idea.ID != id {
			kept = append(kept, idea)
		}
	}
	if len(kept) == len(ideas) {
		return ErrNotFound
	}
	return r.file.write(kept)
}
