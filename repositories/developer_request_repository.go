package repositories

import (
	"gorm.io/gorm"

	"ideahub/models"
)

type DeveloperRequestRepository interface {
	Create(request *models.DeveloperRequest) error
	GetAll() ([]models.DeveloperRequest, error)
	Approve(id uint) error
	Delete(id uint) error
}

type developerRequestRepository struct {
	db *gorm.DB
}

func NewDeveloperRequestRepository(db *gorm.DB) DeveloperRequestRepository {
	return &developerRequestRepository{db: db}
}

func (r *developerRequestRepository) Create(request *models.DeveloperRequest) error {
	return r.db.Create(request).Error
}

func (r *developerRequestRepository) GetAll() ([]models.DeveloperRequest, error) {
	var requests []models.DeveloperRequest
	err := r.db.Order("created_at asc").Find(&requests).Error
	return requests, err
}

// Approve promotes the request's owner to developer and removes the request
// in one transaction, so a crash cannot promote without clearing the row or
// vice versa. Returns gorm.ErrRecordNotFound if the request is gone.
func (r *developerRequestRepository) Approve(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var request models.DeveloperRequest
		if err := tx.First(&request, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).
			Where("id = ?", request.UserID).
			Update("account_type", models.TierDeveloper).Error; err != nil {
			return err
		}
		return tx.Delete(&request).Error
	})
}

// Delete removes the request unconditionally; rejecting an already-processed
// request is not an error.
func (r *developerRequestRepository) Delete(id uint) error {
	return r.db.Delete(&models.DeveloperRequest{}, id).Error
}
