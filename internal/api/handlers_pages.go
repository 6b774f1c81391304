package api

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/peptica/internal/catalog"
	"github.com/terraincognita07/peptica/internal/content"
	"github.com/terraincognita07/peptica/internal/services"
	"go.uber.org/zap"
)

var referenceCodeRegex = regexp.MustCompile(`^PEP-[A-Z0-9]{4}-[A-Z0-9]{4}$`)

func (handler *Handler) ShowIndex(c *fiber.Ctx) error {
	messages := currentMessages(c)
	query := c.Query("q")
	substances := handler.catalogService.Substances(query)

	return handler.render(c, "index", fiber.Map{
		"Title":      localizedPageTitle(messages, "meta.title.index", "Peptica"),
		"Query":      query,
		"Substances": substances,
	})
}

// ShowSubstance renders the detail page. An unknown category in the query
// string leaves the filter on "All", the same as the HTMX control would.
func (handler *Handler) ShowSubstance(c *fiber.Ctx) error {
	slug := c.Params("slug")
	view, err := handler.catalogService.Interactions(slug, c.Query("q"), strings.TrimSpace(c.Query("category")))
	if errors.Is(err, catalog.ErrInvalidCategory) {
		view, err = handler.catalogService.Interactions(slug, c.Query("q"), "")
	}
	if errors.Is(err, services.ErrUnknownSubstance) {
		return handler.NotFound(c)
	}
	if err != nil {
		handler.logger.Error("load substance", zap.String("slug", slug), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to load substance")
	}
	handler.metrics.FilterEvaluated(view.Substance.Slug, len(view.Records))

	messages := currentMessages(c)
	substance := view.Substance
	reported := ""
	if candidate := strings.TrimSpace(c.Query("reported")); referenceCodeRegex.MatchString(candidate) {
		reported = candidate
	}

	return handler.render(c, "substance", fiber.Map{
		"Title":     localizedPageTitle(messages, "meta.title.substance", "Peptica", substance.Name),
		"Substance": substance,
		"View":      view,
		"Panels": []panelView{
			groupedPanel(content.PanelEvidence, substance.Evidence, catalog.AllEvidenceTiers()),
			groupedPanel(content.PanelMechanisms, substance.Mechanisms, catalog.AllEvidenceTiers()),
			groupedPanel(content.PanelSafety, substance.Safety, catalog.AllInteractionTiers()),
		},
		"FeedbackEntries": feedbackEntries(substance),
		"Reported":        reported,
	})
}

// InteractionsPartial re-renders only the interactions list for the HTMX
// search box and category buttons.
func (handler *Handler) InteractionsPartial(c *fiber.Ctx) error {
	view, ok, err := handler.interactionView(c)
	if !ok {
		return err
	}
	return handler.renderPartial(c, "interactions_partial", fiber.Map{
		"Substance": view.Substance,
		"View":      view,
	})
}

// interactionView evaluates the filter for the request. When ok is false the
// error response has already been written and err must be returned as is.
func (handler *Handler) interactionView(c *fiber.Ctx) (services.InteractionView, bool, error) {
	slug := c.Params("slug")
	view, err := handler.catalogService.Interactions(slug, c.Query("q"), strings.TrimSpace(c.Query("category")))
	switch {
	case errors.Is(err, services.ErrUnknownSubstance):
		if isHTMX(c) || acceptsJSON(c) || strings.HasPrefix(c.Path(), "/api/") {
			return view, false, apiError(c, fiber.StatusNotFound, "not found")
		}
		return view, false, handler.NotFound(c)
	case errors.Is(err, catalog.ErrInvalidCategory):
		return view, false, apiError(c, fiber.StatusBadRequest, "invalid category")
	case err != nil:
		handler.logger.Error("filter interactions", zap.String("slug", slug), zap.Error(err))
		return view, false, apiError(c, fiber.StatusInternalServerError, "failed to filter interactions")
	}
	handler.metrics.FilterEvaluated(view.Substance.Slug, len(view.Records))
	return view, true, nil
}
