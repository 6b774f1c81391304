// Package content loads the embedded substance data files into validated
// catalog tables. Content is read once at startup and never mutated.
package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/terraincognita07/peptica/internal/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed substances/*.yaml
var embeddedSubstances embed.FS

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var (
	ErrInvalidSlug   = errors.New("invalid substance slug")
	ErrDuplicateSlug = errors.New("duplicate substance slug")
	ErrMissingName   = errors.New("substance name is required")
	ErrMissingPanel  = errors.New("interactions panel is required")
	ErrNoSubstances  = errors.New("no substance files found")
)

type InteractionTable = catalog.Table[catalog.InteractionTier]
type EvidenceTable = catalog.Table[catalog.EvidenceTier]

type InteractionRecord = catalog.Record[catalog.InteractionTier]
type EvidenceRecord = catalog.Record[catalog.EvidenceTier]

type Substance struct {
	Slug         string
	Name         string
	Class        string
	Summary      string
	Interactions *InteractionTable
	Evidence     *EvidenceTable
	Mechanisms   *EvidenceTable
	Safety       *InteractionTable
}

// Panel names accepted by HasRecord.
const (
	PanelInteractions = "interactions"
	PanelEvidence     = "evidence"
	PanelMechanisms   = "mechanisms"
	PanelSafety       = "safety"
)

// HasRecord reports whether the named panel of the substance holds the
// record id.
func (substance Substance) HasRecord(panel string, id string) bool {
	switch panel {
	case PanelInteractions:
		return hasRecord(substance.Interactions, id)
	case PanelSafety:
		return hasRecord(substance.Safety, id)
	case PanelEvidence:
		return hasRecord(substance.Evidence, id)
	case PanelMechanisms:
		return hasRecord(substance.Mechanisms, id)
	default:
		return false
	}
}

func hasRecord[C catalog.Classification](table *catalog.Table[C], id string) bool {
	if table == nil {
		return false
	}
	_, ok := table.Lookup(id)
	return ok
}

type substanceFile struct {
	Slug         string              `yaml:"slug"`
	Name         string              `yaml:"name"`
	Class        string              `yaml:"class"`
	Summary      string              `yaml:"summary"`
	Interactions []InteractionRecord `yaml:"interactions"`
	Evidence     []EvidenceRecord    `yaml:"evidence"`
	Mechanisms   []EvidenceRecord    `yaml:"mechanisms"`
	Safety       []InteractionRecord `yaml:"safety"`
}

type Library struct {
	substances []Substance
	bySlug     map[string]int
}

func LoadEmbedded() (*Library, error) {
	sub, err := fs.Sub(embeddedSubstances, "substances")
	if err != nil {
		return nil, fmt.Errorf("content: open embedded substances: %w", err)
	}
	return Load(sub)
}

// Load parses every *.yaml file at the root of fsys. Any invalid table
// aborts the load.
func Load(fsys fs.FS) (*Library, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("content: read substances: %w", err)
	}

	library := &Library{bySlug: make(map[string]int, len(entries))}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}

		raw, err := fs.ReadFile(fsys, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("content: read %s: %w", entry.Name(), err)
		}
		substance, err := parseSubstance(raw)
		if err != nil {
			return nil, fmt.Errorf("content: %s: %w", entry.Name(), err)
		}
		if _, exists := library.bySlug[substance.Slug]; exists {
			return nil, fmt.Errorf("content: %s: %w %q", entry.Name(), ErrDuplicateSlug, substance.Slug)
		}
		library.bySlug[substance.Slug] = len(library.substances)
		library.substances = append(library.substances, substance)
	}

	if len(library.substances) == 0 {
		return nil, fmt.Errorf("content: %w", ErrNoSubstances)
	}

	sort.SliceStable(library.substances, func(i, j int) bool {
		return strings.ToLower(library.substances[i].Name) < strings.ToLower(library.substances[j].Name)
	})
	for index, substance := range library.substances {
		library.bySlug[substance.Slug] = index
	}
	return library, nil
}

func parseSubstance(raw []byte) (Substance, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)

	var file substanceFile
	if err := decoder.Decode(&file); err != nil {
		return Substance{}, fmt.Errorf("decode yaml: %w", err)
	}

	slug := strings.TrimSpace(file.Slug)
	if !slugPattern.MatchString(slug) {
		return Substance{}, fmt.Errorf("%w %q", ErrInvalidSlug, file.Slug)
	}
	if strings.TrimSpace(file.Name) == "" {
		return Substance{}, ErrMissingName
	}
	if len(file.Interactions) == 0 {
		return Substance{}, ErrMissingPanel
	}

	interactions, err := catalog.NewTable(file.Interactions)
	if err != nil {
		return Substance{}, fmt.Errorf("interactions: %w", err)
	}
	evidence, err := optionalTable(file.Evidence)
	if err != nil {
		return Substance{}, fmt.Errorf("evidence: %w", err)
	}
	mechanisms, err := optionalTable(file.Mechanisms)
	if err != nil {
		return Substance{}, fmt.Errorf("mechanisms: %w", err)
	}
	safety, err := optionalTable(file.Safety)
	if err != nil {
		return Substance{}, fmt.Errorf("safety: %w", err)
	}

	return Substance{
		Slug:         slug,
		Name:         strings.TrimSpace(file.Name),
		Class:        strings.TrimSpace(file.Class),
		Summary:      strings.TrimSpace(file.Summary),
		Interactions: interactions,
		Evidence:     evidence,
		Mechanisms:   mechanisms,
		Safety:       safety,
	}, nil
}

func optionalTable[C catalog.Classification](records []catalog.Record[C]) (*catalog.Table[C], error) {
	if len(records) == 0 {
		return nil, nil
	}
	return catalog.NewTable(records)
}

// List returns all substances ordered by name.
func (library *Library) List() []Substance {
	result := make([]Substance, len(library.substances))
	copy(result, library.substances)
	return result
}

func (library *Library) Get(slug string) (Substance, bool) {
	index, ok := library.bySlug[slug]
	if !ok {
		return Substance{}, false
	}
	return library.substances[index], true
}

// Search matches substances the way panel records are matched: a
// case-insensitive substring of the name, slug, class or summary.
func (library *Library) Search(query string) []Substance {
	needle := strings.ToLower(query)
	result := make([]Substance, 0, len(library.substances))
	for _, substance := range library.substances {
		if needle == "" ||
			catalog.ContainsFold(substance.Name, needle) ||
			catalog.ContainsFold(substance.Slug, needle) ||
			catalog.ContainsFold(substance.Class, needle) ||
			catalog.ContainsFold(substance.Summary, needle) {
			result = append(result, substance)
		}
	}
	return result
}

// Stats counts records per panel, keyed by substance slug.
type Stats struct {
	Slug         string
	Interactions int
	Evidence     int
	Mechanisms   int
	Safety       int
}

func (library *Library) Stats() []Stats {
	result := make([]Stats, 0, len(library.substances))
	for _, substance := range library.substances {
		result = append(result, Stats{
			Slug:         substance.Slug,
			Interactions: tableLen(substance.Interactions),
			Evidence:     tableLen(substance.Evidence),
			Mechanisms:   tableLen(substance.Mechanisms),
			Safety:       tableLen(substance.Safety),
		})
	}
	return result
}

func tableLen[C catalog.Classification](table *catalog.Table[C]) int {
	if table == nil {
		return 0
	}
	return table.Len()
}
