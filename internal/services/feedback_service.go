package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/peptica/internal/content"
	"github.com/terraincognita07/peptica/internal/models"
	"github.com/terraincognita07/peptica/internal/security"
)

var (
	ErrUnknownRecord          = errors.New("unknown record")
	ErrInvalidFeedbackMessage = errors.New("invalid feedback message")
	ErrCreateFeedbackFailed   = errors.New("create feedback failed")
	ErrListFeedbackFailed     = errors.New("list feedback failed")
)

const (
	minFeedbackMessageLength = 10
	maxFeedbackMessageLength = 1000
	defaultFeedbackListLimit = 50
	maxFeedbackListLimit     = 200
	feedbackReferencePrefix  = "PEP"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListRecent(ctx context.Context, limit int) ([]models.Feedback, error)
	CountBySubstance(ctx context.Context, slug string) (int64, error)
}

type FeedbackInput struct {
	SubstanceSlug string
	Panel         string
	RecordID      string
	Message       string
	ClientIP      string
}

type FeedbackService struct {
	reports       FeedbackRepository
	library       SubstanceLibrary
	pseudonymizer *security.Pseudonymizer
	now           func() time.Time
	newReference  func() (string, error)
}

func NewFeedbackService(reports FeedbackRepository, library SubstanceLibrary, secret string) *FeedbackService {
	return &FeedbackService{
		reports:       reports,
		library:       library,
		pseudonymizer: security.NewPseudonymizer(secret),
		now:           time.Now,
		newReference: func() (string, error) {
			return security.ReferenceCode(feedbackReferencePrefix)
		},
	}
}

func (service *FeedbackService) Submit(ctx context.Context, input FeedbackInput) (models.Feedback, error) {
	slug := strings.TrimSpace(input.SubstanceSlug)
	substance, ok := service.library.Get(slug)
	if !ok {
		return models.Feedback{}, fmt.Errorf("%w %q", ErrUnknownSubstance, slug)
	}

	panel := strings.TrimSpace(input.Panel)
	if panel == "" {
		panel = content.PanelInteractions
	}
	recordID := strings.TrimSpace(input.RecordID)
	if !substance.HasRecord(panel, recordID) {
		return models.Feedback{}, fmt.Errorf("%w %s/%s", ErrUnknownRecord, panel, recordID)
	}

	message := strings.TrimSpace(input.Message)
	length := utf8.RuneCountInString(message)
	if length < minFeedbackMessageLength || length > maxFeedbackMessageLength {
		return models.Feedback{}, ErrInvalidFeedbackMessage
	}

	reporter, err := service.pseudonymizer.Digest(strings.TrimSpace(input.ClientIP))
	if err != nil {
		return models.Feedback{}, fmt.Errorf("%w: %v", ErrCreateFeedbackFailed, err)
	}
	reference, err := service.newReference()
	if err != nil {
		return models.Feedback{}, fmt.Errorf("%w: %v", ErrCreateFeedbackFailed, err)
	}

	report := models.Feedback{
		Reference:     reference,
		SubstanceSlug: substance.Slug,
		Panel:         panel,
		RecordID:      recordID,
		Message:       message,
		ReporterHash:  reporter,
		CreatedAt:     service.now().UTC(),
	}
	if err := service.reports.Create(ctx, &report); err != nil {
		return models.Feedback{}, fmt.Errorf("%w: %v", ErrCreateFeedbackFailed, err)
	}
	return report, nil
}

// List returns the newest reports. Non-positive limits fall back to the
// default and large ones are capped.
func (service *FeedbackService) List(ctx context.Context, limit int) ([]models.Feedback, error) {
	if limit <= 0 {
		limit = defaultFeedbackListLimit
	}
	if limit > maxFeedbackListLimit {
		limit = maxFeedbackListLimit
	}
	reports, err := service.reports.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListFeedbackFailed, err)
	}
	return reports, nil
}

// Counts returns the number of stored reports for every substance in the
// library, zero counts included.
func (service *FeedbackService) Counts(ctx context.Context) (map[string]int64, error) {
	substances := service.library.List()
	counts := make(map[string]int64, len(substances))
	for _, substance := range substances {
		count, err := service.reports.CountBySubstance(ctx, substance.Slug)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrListFeedbackFailed, err)
		}
		counts[substance.Slug] = count
	}
	return counts, nil
}
