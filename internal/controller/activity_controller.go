package controller

import (
	"lead-generator-be/internal/mapper"
	"lead-generator-be/internal/pkg/serverutils"
	"lead-generator-be/internal/service"
	"lead-generator-be/pkg/leads/usage"

	"github.com/gofiber/fiber/v2"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	GetActivity(ctx *fiber.Ctx) error
	GetHealth(ctx *fiber.Ctx) error
}

type activityController struct {
	tracker     *usage.Tracker
	leadService service.ILeadService
}

func NewActivityController(tracker *usage.Tracker, leadService service.ILeadService) IActivityController {
	return &activityController{tracker: tracker, leadService: leadService}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	r.Get("/activity", c.GetActivity)
	r.Get("/health", c.GetHealth)
}

func (c *activityController) GetActivity(ctx *fiber.Ctx) error {
	res := mapper.ToActivityResponse(c.tracker.Stats())
	return ctx.JSON(serverutils.SuccessResponse("Success get activity", res))
}

func (c *activityController) GetHealth(ctx *fiber.Ctx) error {
	res := c.leadService.Health(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("OK", res))
}
