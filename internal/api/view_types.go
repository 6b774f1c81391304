package api

import (
	"github.com/terraincognita07/peptica/internal/catalog"
	"github.com/terraincognita07/peptica/internal/content"
	"github.com/terraincognita07/peptica/internal/services"
)

type recordJSON struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Aliases        []string      `json:"aliases,omitempty"`
	Category       string        `json:"category"`
	Classification string        `json:"classification"`
	Style          catalog.Style `json:"style"`
	Summary        string        `json:"summary,omitempty"`
	Detail         string        `json:"detail,omitempty"`
	Steps          []string      `json:"steps,omitempty"`
}

type substanceSummaryJSON struct {
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Class        string   `json:"class"`
	Summary      string   `json:"summary"`
	Interactions int      `json:"interactions"`
	Categories   []string `json:"categories"`
}

type substanceJSON struct {
	substanceSummaryJSON
	Panels map[string][]recordJSON `json:"panels"`
}

type interactionsJSON struct {
	Substance  string       `json:"substance"`
	Query      string       `json:"query"`
	Category   string       `json:"category"`
	Categories []string     `json:"categories"`
	Total      int          `json:"total"`
	Visible    int          `json:"visible"`
	Records    []recordJSON `json:"records"`
}

// panelView is one grouped panel of the detail page.
type panelView struct {
	Key    string
	Groups any
	Empty  bool
}

func newRecordJSON[C catalog.Classification](record catalog.Record[C]) recordJSON {
	return recordJSON{
		ID:             record.ID,
		Name:           record.Name,
		Aliases:        record.Aliases,
		Category:       record.Category,
		Classification: record.Class.String(),
		Style:          record.Class.Style(),
		Summary:        record.Summary,
		Detail:         record.Detail,
		Steps:          record.Steps,
	}
}

func newRecordsJSON[C catalog.Classification](records []catalog.Record[C]) []recordJSON {
	result := make([]recordJSON, 0, len(records))
	for _, record := range records {
		result = append(result, newRecordJSON(record))
	}
	return result
}

func tableRecordsJSON[C catalog.Classification](table *catalog.Table[C]) []recordJSON {
	if table == nil {
		return []recordJSON{}
	}
	return newRecordsJSON(table.Records())
}

func newSubstanceSummaryJSON(substance content.Substance) substanceSummaryJSON {
	return substanceSummaryJSON{
		Slug:         substance.Slug,
		Name:         substance.Name,
		Class:        substance.Class,
		Summary:      substance.Summary,
		Interactions: substance.Interactions.Len(),
		Categories:   substance.Interactions.Categories(),
	}
}

func newSubstanceJSON(substance content.Substance) substanceJSON {
	return substanceJSON{
		substanceSummaryJSON: newSubstanceSummaryJSON(substance),
		Panels: map[string][]recordJSON{
			content.PanelInteractions: tableRecordsJSON(substance.Interactions),
			content.PanelEvidence:     tableRecordsJSON(substance.Evidence),
			content.PanelMechanisms:   tableRecordsJSON(substance.Mechanisms),
			content.PanelSafety:       tableRecordsJSON(substance.Safety),
		},
	}
}

func newInteractionsJSON(view services.InteractionView) interactionsJSON {
	return interactionsJSON{
		Substance:  view.Substance.Slug,
		Query:      view.Query,
		Category:   view.Category,
		Categories: view.Categories,
		Total:      view.Total,
		Visible:    len(view.Records),
		Records:    newRecordsJSON(view.Records),
	}
}

// groupedPanel groups a secondary panel by tier, strongest first.
func groupedPanel[C catalog.Classification](key string, table *catalog.Table[C], order []C) panelView {
	if table == nil {
		return panelView{Key: key, Groups: []catalog.ClassGroup[C]{}, Empty: true}
	}
	groups := catalog.GroupByClass(table.Records(), order)
	return panelView{Key: key, Groups: groups, Empty: len(groups) == 0}
}

// feedbackEntry is one selectable record in the report form.
type feedbackEntry struct {
	Value string
	Label string
}

type feedbackEntryGroup struct {
	PanelKey string
	Entries  []feedbackEntry
}

func feedbackEntries(substance content.Substance) []feedbackEntryGroup {
	groups := make([]feedbackEntryGroup, 0, 4)
	groups = appendFeedbackGroup(groups, content.PanelInteractions, substance.Interactions)
	groups = appendFeedbackGroup(groups, content.PanelEvidence, substance.Evidence)
	groups = appendFeedbackGroup(groups, content.PanelMechanisms, substance.Mechanisms)
	groups = appendFeedbackGroup(groups, content.PanelSafety, substance.Safety)
	return groups
}

func appendFeedbackGroup[C catalog.Classification](groups []feedbackEntryGroup, panel string, table *catalog.Table[C]) []feedbackEntryGroup {
	if table == nil || table.Len() == 0 {
		return groups
	}
	entries := make([]feedbackEntry, 0, table.Len())
	for _, record := range table.Records() {
		entries = append(entries, feedbackEntry{Value: panel + "/" + record.ID, Label: record.Name})
	}
	return append(groups, feedbackEntryGroup{PanelKey: "panel." + panel, Entries: entries})
}
