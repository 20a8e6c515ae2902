package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enum types
type UserRole string

const (
	RoleManager  UserRole = "manager"
	RoleEmployee UserRole = "employee"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type RequestStatus string

const (
	RequestStatusPending RequestStatus = "pending"
	// Reserved for a future fulfillment workflow; nothing transitions into
	// these states yet.
	RequestStatusFulfilled RequestStatus = "fulfilled"
	RequestStatusDeclined  RequestStatus = "declined"
)

// Base model
type BaseModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"-"`
}

// User. ManagerID points at another users row; null for top-level managers and
// employees without an assigned manager. A manager's team is the set of users
// whose manager_id equals the manager's id - always a derived query, never a
// stored list.
type User struct {
	BaseModel
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;index" json:"manager_id,omitempty"`
	Manager      *User      `gorm:"foreignKey:ManagerID;references:ID" json:"manager,omitempty"`
}

func (User) TableName() string { return "users" }

// Feedback. ManagerID is the authoring manager, snapshotted at creation time;
// authorization for later edits is re-evaluated against this field, not against
// the employee's current manager.
type Feedback struct {
	BaseModel
	ManagerID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"manager_id"`
	EmployeeID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"employee_id"`
	Strengths    string            `gorm:"type:text;not null" json:"strengths"`
	Improvements string            `gorm:"type:text;not null" json:"improvements"`
	Sentiment    Sentiment         `gorm:"type:varchar(20);not null" json:"sentiment"`
	Acknowledged bool              `gorm:"not null;default:false" json:"acknowledged"`
	// references:ID pins these as belongs-to; without it gorm resolves
	// ManagerID against User.ManagerID and the preload comes back nil.
	Manager      *User             `gorm:"foreignKey:ManagerID;references:ID" json:"manager,omitempty"`
	Employee     *User             `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Comments     []FeedbackComment `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"comments"`
}

func (Feedback) TableName() string { return "feedback" }

// FeedbackComment - append-only, owned by its Feedback.
type FeedbackComment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FeedbackID  uuid.UUID `gorm:"type:uuid;not null;index" json:"feedback_id"`
	CommenterID uuid.UUID `gorm:"type:uuid;not null" json:"commenter_id"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Commenter   *User     `gorm:"foreignKey:CommenterID" json:"commenter,omitempty"`
}

func (FeedbackComment) TableName() string { return "feedback_comments" }

// FeedbackRequest - employee-initiated ask for feedback from a named manager.
// Fire-and-forget: only pending is produced today.
type FeedbackRequest struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	EmployeeID uuid.UUID     `gorm:"type:uuid;not null;index" json:"employee_id"`
	ManagerID  uuid.UUID     `gorm:"type:uuid;not null;index" json:"manager_id"`
	Status     RequestStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	Employee   *User         `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Manager    *User         `gorm:"foreignKey:ManagerID;references:ID" json:"manager,omitempty"`
}

func (FeedbackRequest) TableName() string { return "feedback_requests" }

// RefreshToken - opaque rotating token, stored hashed
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string    `gorm:"type:varchar(64);not null;uniqueIndex" json:"-"`
	IsRevoked bool      `gorm:"not null;default:false" json:"is_revoked"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }

func setUUIDIfEmpty(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// BaseModel Hook
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	setUUIDIfEmpty(&b.ID)
	return nil
}

// FeedbackComment Hook
func (m *FeedbackComment) BeforeCreate(tx *gorm.DB) error {
	setUUIDIfEmpty(&m.ID)
	return nil
}

// FeedbackRequest Hook
func (m *FeedbackRequest) BeforeCreate(tx *gorm.DB) error {
	setUUIDIfEmpty(&m.ID)
	return nil
}

// RefreshToken Hook
func (m *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	setUUIDIfEmpty(&m.ID)
	return nil
}
