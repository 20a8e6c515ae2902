package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
	"github.com/lakhoreJanvi/feedback-system/internal/dto"
	"github.com/lakhoreJanvi/feedback-system/internal/policy"
	"github.com/lakhoreJanvi/feedback-system/internal/repository"
	"github.com/lakhoreJanvi/feedback-system/internal/validation"
)

type RequestHandler struct {
	requestRepo *repository.RequestRepository
	userRepo    *repository.UserRepository
}

func NewRequestHandler(requestRepo *repository.RequestRepository, userRepo *repository.UserRepository) *RequestHandler {
	return &RequestHandler{
		requestRepo: requestRepo,
		userRepo:    userRepo,
	}
}

// Create - POST /feedback-requests (employee only). The named manager is not
// checked against the employee's actual manager; any manager id is accepted.
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userRepo)
	if user == nil {
		return err
	}

	if err := policy.RequireEmployee(user); err != nil {
		return forbidden(c, err)
	}

	var req dto.CreateFeedbackRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Invalid request body",
		))
	}

	if details := validation.Struct(req); details != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Request failed validation", details...,
		))
	}

	request := &domain.FeedbackRequest{
		EmployeeID: user.ID,
		ManagerID:  req.ManagerID,
		Status:     domain.RequestStatusPending,
	}

	if err := h.requestRepo.Create(request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to create feedback request",
		))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(
		dto.ToFeedbackRequestResponse(request), "Feedback request created",
	))
}

// List - GET /feedback-requests. Managers see requests addressed to them,
// employees see requests they made.
func (h *RequestHandler) List(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userRepo)
	if user == nil {
		return err
	}

	var requests []domain.FeedbackRequest
	if user.Role == domain.RoleManager {
		requests, err = h.requestRepo.ListByManager(user.ID)
	} else {
		requests, err = h.requestRepo.ListByEmployee(user.ID)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to fetch feedback requests",
		))
	}

	return c.JSON(dto.SuccessResponse(dto.ToFeedbackRequestResponses(requests), ""))
}
