package api

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/peptica/internal/content"
	"github.com/terraincognita07/peptica/internal/metrics"
	"go.uber.org/zap"
)

var pageTemplates = []string{"index", "substance", "not_found"}

var partialTemplates = []string{"interactions_partial.html", "feedback_result_partial.html"}

func NewHandler(options Options) (*Handler, error) {
	if options.Database == nil {
		return nil, errors.New("database is required")
	}
	if options.Library == nil {
		return nil, errors.New("substance library is required")
	}
	if options.I18n == nil {
		return nil, errors.New("i18n manager is required")
	}
	if options.Metrics == nil {
		options.Metrics = metrics.NewRecorder()
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	funcMap := newTemplateFuncMap(content.NewMarkdown())

	templates, err := parsePageTemplates(embeddedTemplates, funcMap, pageTemplates, partialTemplates)
	if err != nil {
		return nil, err
	}
	partials, err := parsePartialTemplates(embeddedTemplates, funcMap, partialTemplates)
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}

	handler := &Handler{
		library:         options.Library,
		secretKey:       options.SecretKey,
		cookieSecure:    options.CookieSecure,
		adminTokenTTL:   options.AdminTokenTTL,
		i18n:            options.I18n,
		metrics:         options.Metrics,
		logger:          options.Logger,
		templates:       templates,
		partials:        partials,
		feedbackLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies(options.Database), nil
}
