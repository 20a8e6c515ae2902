package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(request *domain.FeedbackRequest) error {
	return r.db.Create(request).Error
}

func (r *RequestRepository) ListByManager(managerID uuid.UUID) ([]domain.FeedbackRequest, error) {
	var requests []domain.FeedbackRequest
	err := r.db.Preload("Employee").Preload("Manager").
		Where("manager_id = ?", managerID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *RequestRepository) ListByEmployee(employeeID uuid.UUID) ([]domain.FeedbackRequest, error) {
	var requests []domain.FeedbackRequest
	err := r.db.Preload("Employee").Preload("Manager").
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}
