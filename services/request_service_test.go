package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ideahub/models"
)

type stubRequestRepo struct {
	requests   []models.DeveloperRequest
	approveErr error
}

func (r *stubRequestRepo) Create(request *models.DeveloperRequest) error {
	request.ID = uint(len(r.requests) + 1)
	r.requests = append(r.requests, *request)
	return nil
}

func (r *stubRequestRepo) GetAll() ([]models.DeveloperRequest, error) {
	return r.requests, nil
}

func (r *stubRequestRepo) Approve(id uint) error {
	return r.approveErr
}

func (r *stubRequestRepo) Delete(id uint) error {
	return nil
}

func TestSubmitAccumulatesDuplicates(t *testing.T) {
	repo := &stubRequestRepo{}
	svc := NewRequestService(repo)

	require.NoError(t, svc.Submit(1, "alice@example.com", "please"))
	require.NoError(t, svc.Submit(1, "alice@example.com", "please again"))

	requests, err := svc.List()
	require.NoError(t, err)
	require.Len(t, requests, 2)
}

func TestApproveMapsMissingRequest(t *testing.T) {
	repo := &stubRequestRepo{approveErr: gorm.ErrRecordNotFound}
	svc := NewRequestService(repo)

	require.ErrorIs(t, svc.Approve(99), ErrRequestNotFound)
}
