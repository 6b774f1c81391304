package catalog

import "fmt"

// Classification is a closed set of tags that drive a record's visual tier.
type Classification interface {
	comparable
	Valid() bool
	Style() Style
	String() string
}

// Style is the presentation tuple attached to a classification.
// LabelKey is a translation key, resolved by the renderer.
type Style struct {
	Background string `json:"background"`
	Border     string `json:"border"`
	LabelKey   string `json:"label_key"`
	LabelColor string `json:"label_color"`
}

type InteractionTier string

const (
	TierFlag  InteractionTier = "flag"
	TierWatch InteractionTier = "watch"
	TierLow   InteractionTier = "low"
)

func AllInteractionTiers() []InteractionTier {
	return []InteractionTier{TierFlag, TierWatch, TierLow}
}

func (tier InteractionTier) Valid() bool {
	switch tier {
	case TierFlag, TierWatch, TierLow:
		return true
	default:
		return false
	}
}

func (tier InteractionTier) String() string {
	return string(tier)
}

// Style panics on a tier outside the enumeration. NewTable rejects such
// tiers, so loaded content never reaches the panic.
func (tier InteractionTier) Style() Style {
	switch tier {
	case TierFlag:
		return Style{Background: "#fdecec", Border: "#e5484d", LabelKey: "tier.flag", LabelColor: "#b42318"}
	case TierWatch:
		return Style{Background: "#fff7e6", Border: "#f5a524", LabelKey: "tier.watch", LabelColor: "#9a5b00"}
	case TierLow:
		return Style{Background: "#ecfdf3", Border: "#3fb37f", LabelKey: "tier.low", LabelColor: "#067647"}
	}
	panic(fmt.Sprintf("catalog: unmapped interaction tier %q", string(tier)))
}

type EvidenceTier string

const (
	EvidenceStrong   EvidenceTier = "strong"
	EvidenceModerate EvidenceTier = "moderate"
	EvidenceNone     EvidenceTier = "none"
)

func AllEvidenceTiers() []EvidenceTier {
	return []EvidenceTier{EvidenceStrong, EvidenceModerate, EvidenceNone}
}

func (tier EvidenceTier) Valid() bool {
	switch tier {
	case EvidenceStrong, EvidenceModerate, EvidenceNone:
		return true
	default:
		return false
	}
}

func (tier EvidenceTier) String() string {
	return string(tier)
}

func (tier EvidenceTier) Style() Style {
	switch tier {
	case EvidenceStrong:
		return Style{Background: "#eef4ff", Border: "#3b6fd8", LabelKey: "evidence.strong", LabelColor: "#1d3f8f"}
	case EvidenceModerate:
		return Style{Background: "#f4f0ff", Border: "#8a63d2", LabelKey: "evidence.moderate", LabelColor: "#5b3a9e"}
	case EvidenceNone:
		return Style{Background: "#f4f4f5", Border: "#a1a1aa", LabelKey: "evidence.none", LabelColor: "#52525b"}
	}
	panic(fmt.Sprintf("catalog: unmapped evidence tier %q", string(tier)))
}
