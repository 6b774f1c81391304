package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "substances": len(handler.library.List())})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		handler.logger.Error("render page", zap.String("page", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	handler.metrics.PageRendered(name)
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) renderPartial(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.partials[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("partial not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, name, payload); err != nil {
		handler.logger.Error("render partial", zap.String("partial", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render partial")
	}
	handler.metrics.PageRendered(name)
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}
