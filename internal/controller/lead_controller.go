package controller

import (
	"lead-generator-be/internal/pkg/serverutils"
	"lead-generator-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
	GetOptions(ctx *fiber.Ctx) error
	GetDashboard(ctx *fiber.Ctx) error
	GetTable(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
}

type leadController struct {
	service service.ILeadService
}

func NewLeadController(service service.ILeadService) ILeadController {
	return &leadController{service: service}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/leads")
	h.Get("/options", c.GetOptions)
	h.Get("/dashboard", c.GetDashboard)
	h.Get("/table", c.GetTable)
	h.Get("/export", c.Export)
}

func (c *leadController) GetOptions(ctx *fiber.Ctx) error {
	res := c.service.Options(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get filter options", res))
}

func (c *leadController) GetDashboard(ctx *fiber.Ctx) error {
	sel, err := selectionFromQuery(ctx, c.service.DefaultSelection())
	if err != nil {
		return err
	}

	res := c.service.Dashboard(ctx.Context(), sel)
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard", res))
}

func (c *leadController) GetTable(ctx *fiber.Ctx) error {
	sel, err := selectionFromQuery(ctx, c.service.DefaultSelection())
	if err != nil {
		return err
	}

	res := c.service.Table(ctx.Context(), sel)
	return ctx.JSON(serverutils.SuccessResponse("Success get leads", res))
}

func (c *leadController) Export(ctx *fiber.Ctx) error {
	sel, err := selectionFromQuery(ctx, c.service.DefaultSelection())
	if err != nil {
		return err
	}

	res, err := c.service.Export(ctx.Context(), sel)
	if err != nil {
		return err
	}
	return sendExport(ctx, res)
}
