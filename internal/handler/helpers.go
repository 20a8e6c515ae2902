package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lakhoreJanvi/feedback-system/internal/domain"
	"github.com/lakhoreJanvi/feedback-system/internal/dto"
	"github.com/lakhoreJanvi/feedback-system/internal/middleware"
	"github.com/lakhoreJanvi/feedback-system/internal/repository"
)

// currentUser reloads the authenticated user from storage on every request so
// that role and manager assignment reflect the directory as it is now, not as
// it was when the token was issued. On failure the response has already been
// written; callers should return the error as-is when user is nil.
func currentUser(c *fiber.Ctx, users *repository.UserRepository) (*domain.User, error) {
	userID := middleware.GetUserID(c)
	if userID == nil {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse(
			"UNAUTHORIZED", "Not authenticated",
		))
	}

	user, err := users.FindByID(*userID)
	if err != nil {
		return nil, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse(
			"UNAUTHORIZED", "User not found",
		))
	}
	return user, nil
}

func forbidden(c *fiber.Ctx, err error) error {
	msg := strings.TrimPrefix(err.Error(), "forbidden: ")
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse("FORBIDDEN", msg))
}
