package controller

import (
	"lead-generator-be/internal/dto"
	"lead-generator-be/internal/entity"
	"lead-generator-be/internal/mapper"
	"lead-generator-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

// Query parameter names of the three multi-selects.
const (
	queryCountry    = "country"
	queryProduct    = "product"
	queryCompetitor = "competitor"
)

// selectionFromQuery overlays repeated query parameters on def. A missing
// parameter keeps the default; a single empty value (?country=) selects
// nothing.
func selectionFromQuery(ctx *fiber.Ctx, def entity.Selection) (entity.Selection, error) {
	req := dto.SelectionRequest{
		Countries:   queryValues(ctx, queryCountry),
		Products:    queryValues(ctx, queryProduct),
		Competitors: queryValues(ctx, queryCompetitor),
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return entity.Selection{}, err
	}
	return mapper.ApplySelectionRequest(def, req), nil
}

func queryValues(ctx *fiber.Ctx, key string) []string {
	args := ctx.Context().QueryArgs()
	if !args.Has(key) {
		return nil
	}
	raw := args.PeekMulti(key)
	if len(raw) == 1 && len(raw[0]) == 0 {
		return []string{}
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		values = append(values, string(v))
	}
	return values
}

func sendExport(ctx *fiber.Ctx, res *dto.ExportResult) error {
	ctx.Attachment(res.FileName)
	ctx.Set(fiber.HeaderContentType, res.ContentType)
	return ctx.Send(res.Content)
}
