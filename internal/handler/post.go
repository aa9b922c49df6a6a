package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/draftpost/api/internal/draft"
	"github.com/draftpost/api/internal/model"
	"github.com/draftpost/api/internal/service"
	"github.com/draftpost/api/pkg/response"
)

type PostHandler struct {
	service   *service.PostService
	validator *validator.Validate
	allowed   draft.Allowed
}

func NewPostHandler(svc *service.PostService, v *validator.Validate) *PostHandler {
	return &PostHandler{
		service:   svc,
		validator: v,
		allowed:   draft.DefaultAllowed(),
	}
}

// Generate handles POST /api/generate
func (h *PostHandler) Generate(c *fiber.Ctx) error {
	// Body is JSON whatever the Content-Type says
	var raw model.RawGenerationRequest
	if err := c.App().Config().JSONDecoder(c.Body(), &raw); err != nil {
		return response.BadRequest(c, "Bad request")
	}

	req, err := draft.Normalize(raw, h.allowed)
	if err != nil {
		return response.ValidationError(c, "Invalid topic", nil)
	}

	// Normalize already guarantees these; a failure here is a bug
	if err := h.validator.Struct(&req); err != nil {
		return response.Error(c, fiber.StatusInternalServerError, response.CodeServiceError,
			"Normalized request failed validation", formatValidationErrors(err))
	}

	return response.OK(c, h.service.Generate(c.Context(), req))
}

// formatValidationErrors formats validator errors for response
func formatValidationErrors(err error) interface{} {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		errors := make(map[string]string)
		for _, e := range validationErrors {
			errors[e.Field()] = e.Tag()
		}
		return errors
	}
	return nil
}
