package api

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/peptica/internal/metrics"
	"github.com/terraincognita07/peptica/internal/models"
	"github.com/terraincognita07/peptica/internal/services"
	"go.uber.org/zap"
)

type feedbackInput struct {
	Entry    string `json:"entry" form:"entry"`
	Panel    string `json:"panel" form:"panel"`
	RecordID string `json:"record_id" form:"record_id"`
	Message  string `json:"message" form:"message"`
}

// target resolves the reported record. The form sends "panel/id" in entry;
// API clients may send panel and record_id instead.
func (input feedbackInput) target() (string, string) {
	if entry := strings.TrimSpace(input.Entry); entry != "" {
		if panel, recordID, ok := strings.Cut(entry, "/"); ok {
			return panel, recordID
		}
		return "", entry
	}
	return input.Panel, input.RecordID
}

type feedbackJSON struct {
	Reference     string    `json:"reference"`
	SubstanceSlug string    `json:"substance"`
	Panel         string    `json:"panel"`
	RecordID      string    `json:"record_id"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

func newFeedbackJSON(report models.Feedback) feedbackJSON {
	return feedbackJSON{
		Reference:     report.Reference,
		SubstanceSlug: report.SubstanceSlug,
		Panel:         report.Panel,
		RecordID:      report.RecordID,
		Message:       report.Message,
		CreatedAt:     report.CreatedAt,
	}
}

func (handler *Handler) SubmitFeedback(c *fiber.Ctx) error {
	limiterKey := "feedback:" + requestLimiterKey(c)
	now := time.Now()
	if handler.feedbackLimiter.tooManyRecent(limiterKey, now, feedbackLimit, feedbackWindow) {
		handler.metrics.FeedbackSubmitted(metrics.OutcomeRateLimited)
		return apiError(c, fiber.StatusTooManyRequests, "too many feedback reports")
	}

	input := feedbackInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.metrics.FeedbackSubmitted(metrics.OutcomeRejected)
		return apiError(c, fiber.StatusBadRequest, "invalid feedback message")
	}
	panel, recordID := input.target()

	report, err := handler.feedbackService.Submit(c.UserContext(), services.FeedbackInput{
		SubstanceSlug: c.Params("slug"),
		Panel:         panel,
		RecordID:      recordID,
		Message:       input.Message,
		ClientIP:      requestLimiterKey(c),
	})
	if err != nil {
		return handler.feedbackError(c, err)
	}

	handler.feedbackLimiter.record(limiterKey, now, feedbackWindow)
	handler.metrics.FeedbackSubmitted(metrics.OutcomeAccepted)
	handler.logger.Info("feedback received",
		zap.String("reference", report.Reference),
		zap.String("substance", report.SubstanceSlug),
		zap.String("panel", report.Panel),
		zap.String("record", report.RecordID),
	)

	if isHTMX(c) {
		c.Status(fiber.StatusCreated)
		return handler.renderPartial(c, "feedback_result_partial", fiber.Map{"Reference": report.Reference})
	}
	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"reference": report.Reference})
	}
	return c.Redirect("/substances/"+url.PathEscape(report.SubstanceSlug)+"?reported="+url.QueryEscape(report.Reference)+"#feedback", fiber.StatusSeeOther)
}

func (handler *Handler) feedbackError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUnknownSubstance):
		handler.metrics.FeedbackSubmitted(metrics.OutcomeRejected)
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrUnknownRecord):
		handler.metrics.FeedbackSubmitted(metrics.OutcomeRejected)
		return apiError(c, fiber.StatusBadRequest, "unknown record")
	case errors.Is(err, services.ErrInvalidFeedbackMessage):
		handler.metrics.FeedbackSubmitted(metrics.OutcomeRejected)
		return apiError(c, fiber.StatusBadRequest, "invalid feedback message")
	default:
		handler.metrics.FeedbackSubmitted(metrics.OutcomeFailed)
		handler.logger.Error("store feedback", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to save feedback")
	}
}

func (handler *Handler) ListFeedback(c *fiber.Ctx) error {
	limit := 0
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	reports, err := handler.feedbackService.List(c.UserContext(), limit)
	if err != nil {
		handler.logger.Error("list feedback", zap.String("admin", currentAdmin(c)), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list feedback")
	}

	result := make([]feedbackJSON, 0, len(reports))
	for _, report := range reports {
		result = append(result, newFeedbackJSON(report))
	}
	return c.JSON(fiber.Map{"feedback": result})
}

func (handler *Handler) FeedbackCounts(c *fiber.Ctx) error {
	counts, err := handler.feedbackService.Counts(c.UserContext())
	if err != nil {
		handler.logger.Error("count feedback", zap.String("admin", currentAdmin(c)), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to list feedback")
	}
	return c.JSON(fiber.Map{"counts": counts})
}
