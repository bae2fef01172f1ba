package handler

import (
	"leadpath/internal/domain"
	"leadpath/internal/dto"
	"leadpath/internal/middleware"
	"leadpath/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves roles, goals and learning paths
type CatalogHandler struct {
	service service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(service service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GetRoles godoc
// @Summary List leader roles
// @Description Returns the ministry roles offered during onboarding
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.RoleResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /roles [get]
func (h *CatalogHandler) GetRoles(c *fiber.Ctx) error {
	roles, err := h.service.Roles(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewRoleResponses(roles))
}

// GetGoals godoc
// @Summary List goal tags
// @Description Returns the leadership goals a leader can pick
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.GoalsResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /goals [get]
func (h *CatalogHandler) GetGoals(c *fiber.Ctx) error {
	goals, err := h.service.Goals(c.UserContext())
	if err != nil {
		return err
	}
	if goals == nil {
		goals = []string{}
	}
	return c.JSON(dto.GoalsResponse{Goals: goals})
}

// GetPaths godoc
// @Summary Browse learning paths
// @Description Lists learning paths in catalog order, optionally filtered
// @Tags catalog
// @Produce json
// @Param role query string false "Only paths open to this role"
// @Param difficulty query string false "Beginner, Intermediate or Advanced"
// @Success 200 {array} dto.LearningPathResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /paths [get]
func (h *CatalogHandler) GetPaths(c *fiber.Ctx) error {
	filter, _ := c.Locals(middleware.LocalPathFilter).(domain.PathFilter)
	paths, err := h.service.Paths(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLearningPathResponses(paths))
}

// GetPath godoc
// @Summary Get a learning path
// @Tags catalog
// @Produce json
// @Param id path int true "Path ID"
// @Success 200 {object} dto.LearningPathResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /paths/{id} [get]
func (h *CatalogHandler) GetPath(c *fiber.Ctx) error {
	id, _ := c.Locals(middleware.LocalPathID).(int64)
	path, err := h.service.Path(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLearningPathResponse(*path))
}
