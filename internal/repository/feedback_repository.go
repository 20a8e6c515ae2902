package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// preloadAll attaches subject, author, and the comment thread oldest-first
// (ties broken by id).
func (r *FeedbackRepository) preloadAll(q *gorm.DB) *gorm.DB {
	return q.Preload("Manager").Preload("Employee").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		})
}

func (r *FeedbackRepository) Create(feedback *domain.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *FeedbackRepository) FindByID(id uuid.UUID) (*domain.Feedback, error) {
	var feedback domain.Feedback
	err := r.preloadAll(r.db).Where("id = ? AND deleted_at IS NULL", id).First(&feedback).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

// UpdateContent rewrites the author-editable fields only; acknowledged is
// deliberately untouched so a concurrent acknowledge cannot be lost.
func (r *FeedbackRepository) UpdateContent(id uuid.UUID, strengths, improvements string, sentiment domain.Sentiment) error {
	return r.db.Model(&domain.Feedback{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"strengths":    strengths,
			"improvements": improvements,
			"sentiment":    sentiment,
		}).Error
}

// Acknowledge sets the one-way flag. Writing true over true is a no-op, which
// makes repeat acknowledgements harmless.
func (r *FeedbackRepository) Acknowledge(id uuid.UUID) error {
	return r.db.Model(&domain.Feedback{}).
		Where("id = ?", id).
		Update("acknowledged", true).Error
}

func (r *FeedbackRepository) AddComment(comment *domain.FeedbackComment) error {
	return r.db.Create(comment).Error
}

// ListByManager returns feedback authored by the manager.
func (r *FeedbackRepository) ListByManager(managerID uuid.UUID) ([]domain.Feedback, error) {
	var feedbacks []domain.Feedback
	err := r.preloadAll(r.db).
		Where("manager_id = ? AND deleted_at IS NULL", managerID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

// ListByEmployee returns feedback received by the employee.
func (r *FeedbackRepository) ListByEmployee(employeeID uuid.UUID) ([]domain.Feedback, error) {
	var feedbacks []domain.Feedback
	err := r.preloadAll(r.db).
		Where("employee_id = ? AND deleted_at IS NULL", employeeID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

// ListByEmployeeIDs returns feedback whose subject is any of the given users,
// regardless of author. Backs the team view, which is broader than ListByManager
// on purpose: a manager sees everything their current reports received, even
// feedback written by a previous manager.
func (r *FeedbackRepository) ListByEmployeeIDs(employeeIDs []uuid.UUID) ([]domain.Feedback, error) {
	if len(employeeIDs) == 0 {
		return []domain.Feedback{}, nil
	}
	var feedbacks []domain.Feedback
	err := r.preloadAll(r.db).
		Where("employee_id IN ? AND deleted_at IS NULL", employeeIDs).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}
