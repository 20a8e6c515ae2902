package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
	"github.com/lakhoreJanvi/feedback-system/internal/dto"
	"github.com/lakhoreJanvi/feedback-system/internal/policy"
	"github.com/lakhoreJanvi/feedback-system/internal/repository"
	"github.com/lakhoreJanvi/feedback-system/internal/validation"
)

type FeedbackHandler struct {
	feedbackRepo *repository.FeedbackRepository
	userRepo     *repository.UserRepository
}

func NewFeedbackHandler(feedbackRepo *repository.FeedbackRepository, userRepo *repository.UserRepository) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackRepo: feedbackRepo,
		userRepo:     userRepo,
	}
}

// Create - POST /feedback (manager, own team only)
func (h *FeedbackHandler) Create(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userRepo)
	if user == nil {
		return err
	}

	if err := policy.RequireManager(user); err != nil {
		return forbidden(c, err)
	}

	var req dto.CreateFeedbackRequest
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

	employee, err := h.userRepo.FindByID(req.EmployeeID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"NOT_FOUND", "Employee not found",
		))
	}

	if err := policy.RequireManagerOf(user, employee); err != nil {
		return forbidden(c, err)
	}

	feedback := &domain.Feedback{
		ManagerID:    user.ID,
		EmployeeID:   employee.ID,
		Strengths:    req.Strengths,
		Improvements: req.Improvements,
		Sentiment:    domain.Sentiment(req.Sentiment),
	}

	if err := h.feedbackRepo.Create(feedback); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to create feedback",
		))
	}

	created, err := h.feedbackRepo.FindByID(feedback.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to load feedback",
		))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(
		dto.ToFeedbackResponse(created), "Feedback created",
	))
}

// ListGiven - GET /feedback/given (manager; own authored records only)
func (h *FeedbackHandler) ListGiven(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userRepo)
	if user == nil {
		return err
	}

	if err := policy.RequireManager(user); err != nil {
		return forbidden(c, err)
	}

	feedbacks, err := h.feedbackRepo.ListByManager(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to fetch feedback",
		))
	}

	return c.JSON(dto.SuccessResponse(dto.ToFeedbackResponses(feedbacks), ""))
}

// ListReceived - GET /feedback/received (employee)
func (h *FeedbackHandler) ListReceived(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userRepo)
	if user == nil {
		return err
	}

	if err := policy.RequireEmployee(user); err != nil {
		return forbidden(c, err)
	}

	feedbacks, err := h.feedbackRepo.ListByEmployee(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to fetch feedback",
		))
	}

	return c.JSON(dto.SuccessResponse(dto.ToFeedbackResponses(feedbacks), ""))
}

// ListTeam - GET /feedback/team (manager; everything current reports received,
// regardless of author)
func (h *FeedbackHandler) ListTeam(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userRepo)
	if user == nil {
		return err
	}

	if err := policy.RequireManager(user); err != nil {
		return forbidden(c, err)
	}

	team, err := h.userRepo.ListTeam(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to fetch team",
		))
	}

	teamIDs := make([]uuid.UUID, 0, len(team))
	for _, member := range team {
		teamIDs = append(teamIDs, member.ID)
	}

	feedbacks, err := h.feedbackRepo.ListByEmployeeIDs(teamIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to fetch feedback",
		))
	}

	return c.JSON(dto.SuccessResponse(dto.ToFeedbackResponses(feedbacks), ""))
}

// Update - PUT /feedback/:id (author only; survives employee reassignment)
func (h *FeedbackHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Invalid feedback id",
		))
	}

	user, err := currentUser(c, h.userRepo)
	if user == nil {
		return err
	}

	if err := policy.RequireManager(user); err != nil {
		return forbidden(c, err)
	}

	feedback, err := h.feedbackRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"NOT_FOUND", "Feedback not found",
		))
	}

	if err := policy.RequireAuthor(user, feedback); err != nil {
		return forbidden(c, err)
	}

	var req dto.UpdateFeedbackRequest
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

	if err := h.feedbackRepo.UpdateContent(id, req.Strengths, req.Improvements, domain.Sentiment(req.Sentiment)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to update feedback",
		))
	}

	updated, err := h.feedbackRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to load feedback",
		))
	}

	return c.JSON(dto.SuccessResponse(dto.ToFeedbackResponse(updated), "Feedback updated"))
}

// Acknowledge - POST /feedback/:id/acknowledge (subject employee; one-way,
// repeat calls succeed without changing anything)
func (h *FeedbackHandler) Acknowledge(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Invalid feedback id",
		))
	}

	user, err := currentUser(c, h.userRepo)
	if user == nil {
		return err
	}

	if err := policy.RequireEmployee(user); err != nil {
		return forbidden(c, err)
	}

	feedback, err := h.feedbackRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"NOT_FOUND", "Feedback not found",
		))
	}

	if err := policy.RequireSubject(user, feedback); err != nil {
		return forbidden(c, err)
	}

	if err := h.feedbackRepo.Acknowledge(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to acknowledge feedback",
		))
	}

	updated, err := h.feedbackRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to load feedback",
		))
	}

	return c.JSON(dto.SuccessResponse(dto.ToFeedbackResponse(updated), "Feedback acknowledged"))
}

// Comment - POST /feedback/:id/comments (subject employee; append-only,
// allowed whether or not the feedback is acknowledged)
func (h *FeedbackHandler) Comment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse(
			"VALIDATION_ERROR", "Invalid feedback id",
		))
	}

	user, err := currentUser(c, h.userRepo)
	if user == nil {
		return err
	}

	feedback, err := h.feedbackRepo.FindByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse(
			"NOT_FOUND", "Feedback not found",
		))
	}

	if err := policy.RequireSubject(user, feedback); err != nil {
		return forbidden(c, err)
	}

	var req dto.CommentRequest
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

	comment := &domain.FeedbackComment{
		FeedbackID:  feedback.ID,
		CommenterID: user.ID,
		Body:        req.Body,
	}

	if err := h.feedbackRepo.AddComment(comment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to add comment",
		))
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse(dto.CommentResponse{
		ID:          comment.ID,
		CommenterID: comment.CommenterID,
		Body:        comment.Body,
		CreatedAt:   comment.CreatedAt,
	}, "Comment added"))
}
