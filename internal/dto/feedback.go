package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
)

// Requests

type CreateFeedbackRequest struct {
	EmployeeID   uuid.UUID `json:"employee_id" validate:"required"`
	Strengths    string    `json:"strengths" validate:"required"`
	Improvements string    `json:"improvements" validate:"required"`
	Sentiment    string    `json:"sentiment" validate:"required,oneof=positive neutral negative"`
}

type UpdateFeedbackRequest struct {
	Strengths    string `json:"strengths" validate:"required"`
	Improvements string `json:"improvements" validate:"required"`
	Sentiment    string `json:"sentiment" validate:"required,oneof=positive neutral negative"`
}

type CommentRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

type CreateFeedbackRequestRequest struct {
	ManagerID uuid.UUID `json:"manager_id" validate:"required"`
}

// Responses

type FeedbackResponse struct {
	ID           uuid.UUID         `json:"id"`
	ManagerID    uuid.UUID         `json:"manager_id"`
	EmployeeID   uuid.UUID         `json:"employee_id"`
	Strengths    string            `json:"strengths"`
	Improvements string            `json:"improvements"`
	Sentiment    string            `json:"sentiment"`
	Acknowledged bool              `json:"acknowledged"`
	Manager      *UserDTO          `json:"manager,omitempty"`
	Employee     *UserDTO          `json:"employee,omitempty"`
	Comments     []CommentResponse `json:"comments"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type CommentResponse struct {
	ID          uuid.UUID `json:"id"`
	CommenterID uuid.UUID `json:"commenter_id"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type FeedbackRequestResponse struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employee_id"`
	ManagerID  uuid.UUID `json:"manager_id"`
	Status     string    `json:"status"`
	Employee   *UserDTO  `json:"employee,omitempty"`
	Manager    *UserDTO  `json:"manager,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToFeedbackResponse(f *domain.Feedback) FeedbackResponse {
	resp := FeedbackResponse{
		ID:           f.ID,
		ManagerID:    f.ManagerID,
		EmployeeID:   f.EmployeeID,
		Strengths:    f.Strengths,
		Improvements: f.Improvements,
		Sentiment:    string(f.Sentiment),
		Acknowledged: f.Acknowledged,
		Comments:     make([]CommentResponse, 0, len(f.Comments)),
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
	if f.Manager != nil {
		m := ToUserDTO(f.Manager)
		resp.Manager = &m
	}
	if f.Employee != nil {
		e := ToUserDTO(f.Employee)
		resp.Employee = &e
	}
	for _, c := range f.Comments {
		resp.Comments = append(resp.Comments, CommentResponse{
			ID:          c.ID,
			CommenterID: c.CommenterID,
			Body:        c.Body,
			CreatedAt:   c.CreatedAt,
		})
	}
	return resp
}

func ToFeedbackResponses(feedbacks []domain.Feedback) []FeedbackResponse {
	out := make([]FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, ToFeedbackResponse(&feedbacks[i]))
	}
	return out
}

func ToFeedbackRequestResponse(r *domain.FeedbackRequest) FeedbackRequestResponse {
	resp := FeedbackRequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		ManagerID:  r.ManagerID,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
	if r.Employee != nil {
		e := ToUserDTO(r.Employee)
		resp.Employee = &e
	}
	if r.Manager != nil {
		m := ToUserDTO(r.Manager)
		resp.Manager = &m
	}
	return resp
}

func ToFeedbackRequestResponses(requests []domain.FeedbackRequest) []FeedbackRequestResponse {
	out := make([]FeedbackRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, ToFeedbackRequestResponse(&requests[i]))
	}
	return out
}
