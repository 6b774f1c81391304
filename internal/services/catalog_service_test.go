package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/peptica/internal/catalog"
)

func TestCatalogServiceInteractionsDefaultsToAll(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(mustLoadLibrary(t))
	view, err := service.Interactions("cagrilintide", "", "")
	if err != nil {
		t.Fatalf("interactions: %v", err)
	}
	if view.Category != catalog.AllCategories {
		t.Fatalf("expected All category, got %q", view.Category)
	}
	if view.Total != 9 || len(view.Records) != 9 || view.Empty() {
		t.Fatalf("expected full table, got %d of %d", len(view.Records), view.Total)
	}
	if view.Categories[0] != catalog.AllCategories {
		t.Fatalf("expected categories to start with All, got %v", view.Categories)
	}
}

func TestCatalogServiceInteractionsFilters(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(mustLoadLibrary(t))
	view, err := service.Interactions("cagrilintide", "whey", "Supplements")
	if err != nil {
		t.Fatalf("interactions: %v", err)
	}
	if len(view.Records) != 1 || view.Records[0].ID != "protein-supplements" {
		t.Fatalf("expected protein-supplements only, got %+v", view.Records)
	}

	empty, err := service.Interactions("cagrilintide", "zzz-not-present", catalog.AllCategories)
	if err != nil {
		t.Fatalf("interactions: %v", err)
	}
	if !empty.Empty() {
		t.Fatalf("expected empty view, got %+v", empty.Records)
	}
}

func TestCatalogServiceInteractionsErrors(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(mustLoadLibrary(t))
	if _, err := service.Interactions("unknown", "", ""); !errors.Is(err, ErrUnknownSubstance) {
		t.Fatalf("expected ErrUnknownSubstance, got %v", err)
	}
	if _, err := service.Interactions("cagrilintide", "", "Devices"); !errors.Is(err, catalog.ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}
