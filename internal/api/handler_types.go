package api

import (
	"html/template"
	"time"

	"github.com/terraincognita07/peptica/internal/content"
	"github.com/terraincognita07/peptica/internal/db"
	"github.com/terraincognita07/peptica/internal/i18n"
	"github.com/terraincognita07/peptica/internal/metrics"
	"github.com/terraincognita07/peptica/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	library         *content.Library
	secretKey       string
	cookieSecure    bool
	adminTokenTTL   time.Duration
	i18n            *i18n.Manager
	metrics         *metrics.Recorder
	logger          *zap.Logger
	templates       map[string]*template.Template
	partials        map[string]*template.Template
	feedbackLimiter *attemptLimiter

	repositories    *db.Repositories
	catalogService  *services.CatalogService
	feedbackService *services.FeedbackService
	tokenService    *services.TokenService
}

// Options carries everything NewHandler needs. Database, Library and I18n
// are required.
type Options struct {
	Database      *gorm.DB
	Library       *content.Library
	I18n          *i18n.Manager
	Metrics       *metrics.Recorder
	Logger        *zap.Logger
	SecretKey     string
	CookieSecure  bool
	AdminTokenTTL time.Duration
}

const (
	feedbackLimit  = 5
	feedbackWindow = time.Hour
)
