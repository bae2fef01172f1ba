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

// RecommendationHandler ranks learning paths for onboarding
type RecommendationHandler struct {
	service   service.RecommendationService
	validator *validation.Validator
}

// NewRecommendationHandler creates a new RecommendationHandler instance
func NewRecommendationHandler(service service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: service, validator: validation.NewValidator()}
}

// Recommend godoc
// @Summary Recommend learning paths
// @Description Ranks the paths open to a role by how many of the chosen goals they match. At most four are returned.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Role and goals"
// @Success 200 {object} dto.RecommendationResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /recommendations [post]
func (h *RecommendationHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse recommendation request", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateRecommendationRequest(req); len(errs) > 0 {
		return errs
	}

	scored, err := h.service.Recommend(c.UserContext(), domain.RecommendationQuery{Role: req.Role, Goals: req.Goals})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRecommendationResponse(req.Role, scored))
}
