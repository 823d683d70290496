package reports

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	gauges "solarwatch/internal/charts"
	"solarwatch/internal/events"
	"solarwatch/internal/llm"
	"solarwatch/internal/models"
)

// Names of the files of a report bundle. IndexFile marks a folder as a report.
const (
	IndexFile    = "index.html"
	EventsFile   = "events.json"
	PromptFile   = "llm_prompt.txt"
	AnalysisFile = "analysis.md"
	ChartFile    = "activity.png"
	TimelineFile = "kp_timeline.png"
)

// BundleFile is one artifact of a report bundle.
type BundleFile struct {
	Name string
	Data []byte
}

// BuildBundle renders everything a stored report consists of: the event
// list, the prompt sent to the LLM, the narrative, the HTML page and both
// charts. days is the span of the Kp timeline.
func BuildBundle(evts []models.SolarEvent, an models.Analysis, now time.Time, days int) ([]BundleFile, error) {
	eventsJSON, err := json.MarshalIndent(events.Views(evts), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal events: %w", err)
	}

	page, err := NewHTMLBuilder().BuildReportPage(evts, an, now)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTML report: %w", err)
	}

	var chart bytes.Buffer
	if err := RenderActivityChart(&chart, evts); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	if days < 2 {
		days = 7
	}
	var timeline bytes.Buffer
	if err := gauges.RenderKpTimeline(&timeline, gauges.DailyKp(evts, now, days, now.Location())); err != nil {
		return nil, fmt.Errorf("failed to render timeline: %w", err)
	}

	return []BundleFile{
		{Name: IndexFile, Data: []byte(page)},
		{Name: EventsFile, Data: eventsJSON},
		{Name: PromptFile, Data: []byte(llm.BuildPrompt(evts))},
		{Name: AnalysisFile, Data: []byte(an.Summary)},
		{Name: ChartFile, Data: chart.Bytes()},
		{Name: TimelineFile, Data: timeline.Bytes()},
	}, nil
}
