package middleware

import (
	"leadpath/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by ValidationMiddleware.
const (
	LocalPathID     = "validated_path_id"
	LocalPathFilter = "validated_path_filter"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidatePathID parses the :id route parameter into an int64
func (vm *ValidationMiddleware) ValidatePathID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, errs := vm.validator.ValidatePathID(c.Params("id"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(LocalPathID, id)
		return c.Next()
	}
}

// ValidatePathFilter parses the role and difficulty query parameters
func (vm *ValidationMiddleware) ValidatePathFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter, errs := vm.validator.ValidatePathFilter(c.Query("role"), c.Query("difficulty"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(LocalPathFilter, filter)
		return c.Next()
	}
}
