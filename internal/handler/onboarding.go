package handler

import (
	"leadpath/internal/domain"
	"leadpath/internal/dto"
	"leadpath/internal/logger"
	"leadpath/internal/service"
	"leadpath/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OnboardingHandler handles the onboarding flow endpoints
type OnboardingHandler struct {
	service   service.OnboardingService
	validator *validation.Validator
}

// NewOnboardingHandler creates a new OnboardingHandler instance
func NewOnboardingHandler(service service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service, validator: validation.NewValidator()}
}

// Complete godoc
// @Summary Complete onboarding
// @Description Validates the onboarding answers and returns the leader profile. The selected path must be one of the recommendations for the submitted role and goals.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body dto.OnboardingRequest true "Onboarding answers"
// @Success 201 {object} domain.LeaderProfile
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /onboarding/complete [post]
func (h *OnboardingHandler) Complete(c *fiber.Ctx) error {
	var req dto.OnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse onboarding request", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateOnboardingRequest(req); len(errs) > 0 {
		return errs
	}

	profile, err := h.service.Complete(c.UserContext(), req.ToSubmission())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

// PasswordStrength godoc
// @Summary Rate a password
// @Description Scores a candidate password against five rules. The password is not stored or logged.
// @Tags onboarding
// @Accept json
// @Produce json
// @Param request body dto.PasswordStrengthRequest true "Candidate password"
// @Success 200 {object} domain.PasswordStrength
// @Failure 400 {object} middleware.ErrorResponse
// @Router /onboarding/password-strength [post]
func (h *OnboardingHandler) PasswordStrength(c *fiber.Ctx) error {
	var req dto.PasswordStrengthRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	return c.JSON(h.service.PasswordStrength(req.Password))
}

// TimeCommitments godoc
// @Summary List daily time commitments
// @Tags onboarding
// @Produce json
// @Success 200 {object} dto.TimeCommitmentsResponse
// @Router /onboarding/time-commitments [get]
func (h *OnboardingHandler) TimeCommitments(c *fiber.Ctx) error {
	return c.JSON(dto.TimeCommitmentsResponse{
		Options: h.service.TimeCommitments(),
		Default: domain.DefaultDailyMinutes,
	})
}
