package repositories

import (
	"ideahub/models"
)

type ReportRepository interface {
	GetAll() ([]models.Report, error)
	GetByIdeaID(ideaID uint) ([]models.Report, error)
	Create(report *models.Report) error
	Delete(id uint) error
	DeleteByIdeaID(ideaID uint) error
}

type reportRepository struct {
	file jsonFile
}

func NewReportRepository(path string) ReportRepository {
	return &reportRepository{file: jsonFile{path: path}}
}

func nextReportID(reports []models.Report) uint {
	var max uint
	for _, report := range reports {
		if report.ID > max {
			max = report.ID
		}
	}
	return max + 1
}

func (r *reportRepository) GetAll() ([]models.Report, error) {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	var reports []models.Report
	if err := r.file.read(&reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) GetByIdeaID(ideaID uint) ([]models.Report, error) {
	reports, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	matched := []models.Report{}
	for _, report := range reports {
		if report.IdeaID == ideaID {
			matched = append(matched, report)
		}
	}
	return matched, nil
}

func (r *reportRepository) Create(report *models.Report) error {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	var reports []models.Report
	if err := r.file.read(&reports); err != nil {
		return err
	}

	report.ID = nextReportID(reports)
	reports = append(reports, *report)
	return r.file.write(reports)
}

func (r *reportRepository) Delete(id uint) error {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	var reports []models.Report
	if err := r.file.read(&reports); err != nil {
		return err
	}

	kept := reports[:0]
	for _, report := range reports {
		if report.ID != id {
			kept = append(kept, report)
		}
	}
	if len(kept) == len(reports) {
		return ErrNotFound
	}
	return r.file.write(kept)
}

// DeleteByIdeaID removes every report referencing the idea; deleting an idea
// cascades here. Removing nothing is not an error.
func (r *reportRepository) DeleteByIdeaID(ideaID uint) error {
	r.file.mu.Lock()
	defer r.file.mu.Unlock()

	var reports []models.Report
	if err := r.file.read(&reports); err != nil {
		return err
	}

	kept := reports[:0]
	for _, report := range reports {
		if report.IdeaID != ideaID {
			kept = append(kept, report)
		}
	}
	if len(kept) == len(reports) {
		return nil
	}
	return r.file.write(kept)
}
