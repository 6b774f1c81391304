package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func (handler *Handler) metricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(handler.metrics.Handler())
}
