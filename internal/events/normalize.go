// Package events turns raw DONKI records into canonical solar events and
// derives every secondary attribute the reports, menu and alerts show.
// All functions are pure apart from reading the package clock.
package events

import (
	"strings"
	"time"

	"solarwatch/internal/models"
)

const (
	DefaultLink        = "https://ccmc.gsfc.nasa.gov/donki/"
	noDescription      = "Sem descrição detalhada."
	unknownID          = "N/A"
	gstIDField         = "gstID"
	kpHighSeverityEdge = 7
)

var defaultAffectedAreas = []string{"América do Norte", "Europa", "Ásia"}

var idKeys = []string{"activityID", "flrID", "sepID", "hssID"}

// categoryTimeKeys are consulted after startTime and eventTime.
var categoryTimeKeys = map[models.Category][]string{
	models.CategoryGST: nil,
	models.CategoryCME: {"cmeStartTime"},
	models.CategoryFLR: {"beginTime", "flrStartTime"},
	models.CategorySEP: {"hssStartTime"},
	models.CategoryHSS: {"hssStartTime"},
}

var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTime parses the timestamp layouts seen in the feed.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Normalize maps one raw record of the given category into a SolarEvent.
// It never fails: missing or unparseable fields fall back to defaults.
func Normalize(raw models.RawEventRecord, category models.Category) models.SolarEvent {
	note, ok := raw.String("note")
	if !ok {
		note = noDescription
	}

	link, ok := raw.String("link")
	if !ok {
		link = DefaultLink
	}

	areas := make([]string, len(defaultAffectedAreas))
	copy(areas, defaultAffectedAreas)

	return models.SolarEvent{
		ID:            resolveID(raw),
		Category:      category,
		OccurredAt:    resolveOccurredAt(raw, category),
		Severity:      resolveSeverity(raw, category),
		Description:   "Evento solar (" + string(category) + "): " + note,
		AffectedAreas: areas,
		Link:          link,
		RawText:       raw.Text,
		Raw:           raw,
	}
}

// NormalizeAll normalizes a category batch, preserving feed order.
func NormalizeAll(raws []models.RawEventRecord, category models.Category) []models.SolarEvent {
	out := make([]models.SolarEvent, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw, category))
	}
	return out
}

// resolveID lets a present gstID win even when it is null or empty.
func resolveID(raw models.RawEventRecord) string {
	if raw.Has(gstIDField) {
		if id, ok := raw.String(gstIDField); ok {
			return id
		}
		return unknownID
	}
	for _, key := range idKeys {
		if id, ok := raw.String(key); ok {
			return id
		}
	}
	return unknownID
}

// TimeKeys returns the timestamp fields of a category in resolution order.
func TimeKeys(category models.Category) []string {
	keys := []string{"startTime", "eventTime"}
	return append(keys, categoryTimeKeys[category]...)
}

func resolveOccurredAt(raw models.RawEventRecord, category models.Category) time.Time {
	for _, key := range TimeKeys(category) {
		s, ok := raw.String(key)
		if !ok {
			continue
		}
		if t, ok := ParseTime(s); ok {
			return t
		}
	}
	return clock.Now().UTC()
}

func resolveSeverity(raw models.RawEventRecord, category models.Category) models.Severity {
	if category != models.CategoryGST {
		return models.SeverityUndefined
	}
	if kp, ok := raw.MaxKpSample(); ok && kp > kpHighSeverityEdge {
		return models.SeverityHigh
	}
	return models.SeverityModerate
}

// rawTime reads one timestamp field of the raw record.
func rawTime(e models.SolarEvent, keys ...string) (time.Time, bool) {
	for _, key := range keys {
		if s, ok := e.Raw.String(key); ok {
			if t, ok := ParseTime(s); ok {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
