package catalog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterDefaultsToWholeTable(t *testing.T) {
	t.Parallel()

	table := mustCagrilintideTable(t)
	filter := NewFilter(table)
	if filter.Category() != AllCategories {
		t.Fatalf("expected default category %q, got %q", AllCategories, filter.Category())
	}
	if got := len(filter.VisibleRecords()); got != 9 {
		t.Fatalf("expected 9 records, got %d", got)
	}
}

func TestFilterSetQueryAndCategory(t *testing.T) {
	t.Parallel()

	filter := NewFilter(mustCagrilintideTable(t))
	filter.SetQuery("supplement")
	if err := filter.SetCategory("Supplements"); err != nil {
		t.Fatalf("set category: %v", err)
	}
	want := []string{"protein-supplements", "fiber-supplements"}
	if diff := cmp.Diff(want, recordIDs(filter.VisibleRecords())); diff != "" {
		t.Fatalf("unexpected visible records (-want +got):\n%s", diff)
	}

	filter.SetQuery("supplement")
	if diff := cmp.Diff(want, recordIDs(filter.VisibleRecords())); diff != "" {
		t.Fatalf("expected repeated SetQuery to be idempotent (-want +got):\n%s", diff)
	}
}

func TestFilterRejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	filter := NewFilter(mustCagrilintideTable(t))
	if err := filter.SetCategory("Lifestyle"); err != nil {
		t.Fatalf("set category: %v", err)
	}
	if err := filter.SetCategory("Devices"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if filter.Category() != "Lifestyle" {
		t.Fatalf("expected previous category to be kept, got %q", filter.Category())
	}
}

func TestFilterWhitespaceQueryIsLiteral(t *testing.T) {
	t.Parallel()

	filter := NewFilter(mustCagrilintideTable(t))
	filter.SetQuery("   ")
	if got := filter.VisibleRecords(); len(got) != 0 {
		t.Fatalf("expected whitespace-only query to match nothing, got %v", recordIDs(got))
	}
}
