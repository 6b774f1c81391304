package services

import (
	"errors"
	"fmt"

	"github.com/terraincognita07/peptica/internal/catalog"
	"github.com/terraincognita07/peptica/internal/content"
)

var ErrUnknownSubstance = errors.New("unknown substance")

type SubstanceLibrary interface {
	List() []content.Substance
	Get(slug string) (content.Substance, bool)
	Search(query string) []content.Substance
}

type CatalogService struct {
	library SubstanceLibrary
}

// InteractionView is the filtered interactions panel of one substance.
type InteractionView struct {
	Substance  content.Substance
	Query      string
	Category   string
	Categories []string
	Records    []content.InteractionRecord
	Total      int
}

func (view InteractionView) Empty() bool {
	return len(view.Records) == 0
}

func NewCatalogService(library SubstanceLibrary) *CatalogService {
	return &CatalogService{library: library}
}

func (service *CatalogService) Substances(query string) []content.Substance {
	return service.library.Search(query)
}

func (service *CatalogService) Substance(slug string) (content.Substance, error) {
	substance, ok := service.library.Get(slug)
	if !ok {
		return content.Substance{}, fmt.Errorf("%w %q", ErrUnknownSubstance, slug)
	}
	return substance, nil
}

// Interactions applies query and category to the substance's interactions
// table. An empty category selects "All"; an unknown one fails with
// catalog.ErrInvalidCategory.
func (service *CatalogService) Interactions(slug string, query string, category string) (InteractionView, error) {
	substance, err := service.Substance(slug)
	if err != nil {
		return InteractionView{}, err
	}

	filter := catalog.NewFilter(substance.Interactions)
	filter.SetQuery(query)
	if category != "" {
		if err := filter.SetCategory(category); err != nil {
			return InteractionView{}, err
		}
	}

	return InteractionView{
		Substance:  substance,
		Query:      filter.Query(),
		Category:   filter.Category(),
		Categories: substance.Interactions.Categories(),
		Records:    filter.VisibleRecords(),
		Total:      substance.Interactions.Len(),
	}, nil
}
