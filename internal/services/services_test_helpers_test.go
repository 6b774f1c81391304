package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/terraincognita07/peptica/internal/content"
	"github.com/terraincognita07/peptica/internal/models"
)

func mustLoadLibrary(t *testing.T) *content.Library {
	t.Helper()
	library, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded content: %v", err)
	}
	return library
}

type stubFeedbackRepository struct {
	mu        sync.Mutex
	reports   []models.Feedback
	createErr error
	lastLimit int
}

func (repo *stubFeedbackRepository) Create(_ context.Context, feedback *models.Feedback) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.createErr != nil {
		return repo.createErr
	}
	feedback.ID = uint(len(repo.reports) + 1)
	repo.reports = append(repo.reports, *feedback)
	return nil
}

func (repo *stubFeedbackRepository) ListRecent(_ context.Context, limit int) ([]models.Feedback, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.lastLimit = limit
	result := make([]models.Feedback, 0, len(repo.reports))
	for index := len(repo.reports) - 1; index >= 0 && len(result) < limit; index-- {
		result = append(result, repo.reports[index])
	}
	return result, nil
}

func (repo *stubFeedbackRepository) CountBySubstance(_ context.Context, slug string) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	var count int64
	for _, report := range repo.reports {
		if report.SubstanceSlug == slug {
			count++
		}
	}
	return count, nil
}

var errStubStorage = errors.New("disk full")
