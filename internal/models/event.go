package models

import "time"

// Category identifies one of the DONKI event feeds. The set is closed.
type Category string

const (
	CategoryGST Category = "GST" // geomagnetic storm
	CategoryCME Category = "CME" // coronal mass ejection
	CategoryFLR Category = "FLR" // solar flare
	CategorySEP Category = "SEP" // solar energetic particles
	CategoryHSS Category = "HSS" // high speed stream
)

// Categories lists every category in fetch and report order.
var Categories = []Category{CategoryGST, CategoryCME, CategoryFLR, CategorySEP, CategoryHSS}

// Severity is only meaningful for GST events; everything else is SeverityUndefined.
type Severity string

const (
	SeverityHigh      Severity = "alta"
	SeverityModerate  Severity = "moderada"
	SeverityUndefined Severity = "indefinida"
)

// SeverityRank orders severities for "most significant first" listings.
// Unknown values rank with SeverityUndefined.
func SeverityRank(s Severity) int {
	switch s {
	case "crítica":
		return 4
	case SeverityHigh:
		return 3
	case SeverityModerate:
		return 2
	case "baixa":
		return 1
	default:
		return 0
	}
}

// SolarEvent is the canonical, normalized form of one feed record.
// It is built once by events.Normalize and never mutated afterwards;
// derived values are always recomputed from RawText.
type SolarEvent struct {
	ID            string         `json:"id"`
	Category      Category       `json:"category"`
	OccurredAt    time.Time      `json:"occurredAt"`
	Severity      Severity       `json:"severity"`
	Description   string         `json:"description"`
	AffectedAreas []string       `json:"affectedAreas"`
	Link          string         `json:"link"`
	RawText       string         `json:"-"`
	Raw           RawEventRecord `json:"-"`
}

// FilterByCategory returns the events of one category, preserving order.
func FilterByCategory(events []SolarEvent, category Category) []SolarEvent {
	var out []SolarEvent
	for _, e := range events {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// CountByCategory counts events per category. Categories with no events are absent.
func CountByCategory(events []SolarEvent) map[Category]int {
	counts := make(map[Category]int)
	for _, e := range events {
		counts[e.Category]++
	}
	return counts
}
