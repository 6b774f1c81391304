package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/peptica/internal/services"
)

func (handler *Handler) ListSubstances(c *fiber.Ctx) error {
	substances := handler.catalogService.Substances(c.Query("q"))
	result := make([]substanceSummaryJSON, 0, len(substances))
	for _, substance := range substances {
		result = append(result, newSubstanceSummaryJSON(substance))
	}
	return c.JSON(fiber.Map{"substances": result})
}

func (handler *Handler) GetSubstance(c *fiber.Ctx) error {
	substance, err := handler.catalogService.Substance(c.Params("slug"))
	if errors.Is(err, services.ErrUnknownSubstance) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load substance")
	}
	return c.JSON(newSubstanceJSON(substance))
}

func (handler *Handler) ListInteractions(c *fiber.Ctx) error {
	view, ok, err := handler.interactionView(c)
	if !ok {
		return err
	}
	return c.JSON(newInteractionsJSON(view))
}
