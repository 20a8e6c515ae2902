package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *domain.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ? AND deleted_at IS NULL", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.User{}).
		Where("email = ? AND deleted_at IS NULL", email).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Update(user *domain.User) error {
	return r.db.Save(user).Error
}

// ListTeam returns the manager's direct reports, i.e. every user whose
// manager_id equals managerID right now.
func (r *UserRepository) ListTeam(managerID uuid.UUID) ([]domain.User, error) {
	var users []domain.User
	err := r.db.Where("manager_id = ? AND deleted_at IS NULL", managerID).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) ListByRole(role domain.UserRole) ([]domain.User, error) {
	var users []domain.User
	err := r.db.Where("role = ? AND deleted_at IS NULL", role).
		Order("name ASC").
		Find(&users).Error
	return users, err
}
