package services

import (
	"errors"

	"gorm.io/gorm"

	"ideahub/models"
	"ideahub/repositories"
)

type RequestService interface {
	Submit(userID uint, email, reason string) error
	List() ([]models.DeveloperRequest, error)
	Approve(requestID uint) error
	Reject(requestID uint) error
}

type requestService struct {
	requestRepo repositories.DeveloperRequestRepository
}

func NewRequestService(requestRepo repositories.DeveloperRequestRepository) RequestService {
	return &requestService{requestRepo: requestRepo}
}

// Submit records one request per call; duplicate submissions by the same
// user accumulate.
func (s *requestService) Submit(userID uint, email, reason string) error {
	request := &models.DeveloperRequest{
		UserID: userID,
		Email:  email,
		Reason: reason,
	}
	return s.requestRepo.Create(request)
}

func (s *requestService) List() ([]models.DeveloperRequest, error) {
	return s.requestRepo.GetAll()
}

func (s *requestService) Approve(requestID uint) error {
	err := s.requestRepo.Approve(requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRequestNotFound
	}
	return err
}

func (s *requestService) Reject(requestID uint) error {
	return s.requestRepo.Delete(requestID)
}
