package api

import (
	"github.com/terraincognita07/peptica/internal/db"
	"github.com/terraincognita07/peptica/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.catalogService = services.NewCatalogService(handler.library)
	handler.feedbackService = services.NewFeedbackService(handler.repositories.Feedback, handler.library, handler.secretKey)
	handler.tokenService = services.NewTokenService(handler.secretKey, handler.adminTokenTTL)
	return handler
}
