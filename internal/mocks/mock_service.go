package mocks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"solarwatch/internal/events"
	"solarwatch/internal/fetchers"
	"solarwatch/internal/models"
)

// MockService serves DONKI fixtures from disk in place of the live API.
type MockService struct {
	mocksDir string
	// Rebase shifts every event so the newest one happened an hour ago,
	// which keeps "recent" windows and daily summaries populated.
	Rebase bool
}

// NewMockService creates a new mock service reading {dir}/{CAT}.json.
func NewMockService(mocksDir string) *MockService {
	return &MockService{mocksDir: mocksDir}
}

// FetchEvents loads every category fixture. A missing or malformed fixture
// is reported for that category only, like a failing live request.
func (m *MockService) FetchEvents(ctx context.Context, from, to time.Time) fetchers.FetchResult {
	res := fetchers.FetchResult{
		Events: []models.SolarEvent{},
		Errors: map[models.Category]error{},
	}

	for _, cat := range models.Categories {
		if err := ctx.Err(); err != nil {
			res.Errors[cat] = err
			continue
		}
		evts, err := m.LoadCategory(cat)
		if err != nil {
			res.Errors[cat] = err
			continue
		}
		res.Events = append(res.Events, evts...)
	}

	if m.Rebase {
		rebase(res.Events, events.Now().Add(-time.Hour))
	}
	return res
}

// LoadCategory loads and normalizes a single category fixture.
func (m *MockService) LoadCategory(cat models.Category) ([]models.SolarEvent, error) {
	filePath := filepath.Join(m.mocksDir, string(cat)+".json")
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read mock %s data: %w", cat, err)
	}

	raws, err := models.ParseRawEventArray(content)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal mock %s data: %w", cat, err)
	}
	return events.NormalizeAll(raws, cat), nil
}

// rebase moves all events by the same offset so the latest lands on newest.
func rebase(evts []models.SolarEvent, newest time.Time) {
	var latest time.Time
	for _, e := range evts {
		if e.OccurredAt.After(latest) {
			latest = e.OccurredAt
		}
	}
	if latest.IsZero() {
		return
	}
	shift := newest.Sub(latest)
	for i := range evts {
		evts[i].OccurredAt = evts[i].OccurredAt.Add(shift).UTC()
	}
}
