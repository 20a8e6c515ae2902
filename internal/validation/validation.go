package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lakhoreJanvi/feedback-system/internal/dto"
)

var validate = validator.New()

// Struct validates a request DTO and converts failures into per-field details
// for the error envelope. Returns nil when the value is valid.
func Struct(v interface{}) []dto.ErrorDetail {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.ErrorDetail{{Field: "", Message: err.Error()}}
	}

	details := make([]dto.ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, dto.ErrorDetail{
			Field:   strings.ToLower(fe.Field()),
			Message: messageFor(fe),
		})
	}
	return details
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed validation rule: " + fe.Tag()
	}
}
