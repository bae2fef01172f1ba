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

// QuizHandler handles chapter quiz result requests
type QuizHandler struct {
	service              service.QuizService
	validator            *validation.Validator
	defaultPassThreshold int
}

// NewQuizHandler creates a new QuizHandler instance. defaultPassThreshold
// applies when a request carries no passThreshold.
func NewQuizHandler(service service.QuizService, defaultPassThreshold int) *QuizHandler {
	return &QuizHandler{
		service:              service,
		validator:            validation.NewValidator(),
		defaultPassThreshold: defaultPassThreshold,
	}
}

// SubmitResult godoc
// @Summary Score a chapter quiz
// @Description Computes percentage, pass/fail, stars and bonus points for a finished chapter quiz
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.QuizResultRequest true "Finished quiz"
// @Success 201 {object} dto.QuizResultResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /quiz/results [post]
func (h *QuizHandler) SubmitResult(c *fiber.Ctx) error {
	var req dto.QuizResultRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Failed to parse quiz result request", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateQuizResultRequest(req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.Score(c.UserContext(), req.ToAttempt(h.defaultPassThreshold))
	if err != nil {
		return err
	}
	if result.ResultID != "" {
		c.Location("/api/quiz/results/" + result.ResultID)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetResult godoc
// @Summary Get a scored quiz
// @Tags quiz
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} dto.QuizResultResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/results/{id} [get]
func (h *QuizHandler) GetResult(c *fiber.Ctx) error {
	result, err := h.service.Result(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// DismissResult godoc
// @Summary Dismiss a scored quiz
// @Description Drops the result once the results screen is closed
// @Tags quiz
// @Param id path string true "Result ID"
// @Success 204
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/results/{id} [delete]
func (h *QuizHandler) DismissResult(c *fiber.Ctx) error {
	if err := h.service.Dismiss(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
