package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
	"github.com/lakhoreJanvi/feedback-system/internal/dto"
	"github.com/lakhoreJanvi/feedback-system/internal/policy"
	"github.com/lakhoreJanvi/feedback-system/internal/repository"
)

type UserHandler struct {
	userRepo *repository.UserRepository
}

func NewUserHandler(userRepo *repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// ListTeam - GET /users/team (manager only)
func (h *UserHandler) ListTeam(c *fiber.Ctx) error {
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

	return c.JSON(dto.SuccessResponse(dto.ToUserDTOs(team), ""))
}

// ListEmployees - GET /users/employees (manager only)
func (h *UserHandler) ListEmployees(c *fiber.Ctx) error {
	user, err := currentUser(c, h.userRepo)
	if user == nil {
		return err
	}

	if err := policy.RequireManager(user); err != nil {
		return forbidden(c, err)
	}

	employees, err := h.userRepo.ListByRole(domain.RoleEmployee)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to fetch employees",
		))
	}

	return c.JSON(dto.SuccessResponse(dto.ToUserDTOs(employees), ""))
}

// ListManagers - GET /users/managers
func (h *UserHandler) ListManagers(c *fiber.Ctx) error {
	managers, err := h.userRepo.ListByRole(domain.RoleManager)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse(
			"INTERNAL_ERROR", "Failed to fetch managers",
		))
	}

	return c.JSON(dto.SuccessResponse(dto.ToUserDTOs(managers), ""))
}
