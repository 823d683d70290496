package charts

import (
	"fmt"
	"io"
	"math"
	"time"

	"solarwatch/internal/events"
	"solarwatch/internal/models"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DailyPoint is the strongest storm of one day.
type DailyPoint struct {
	Day time.Time
	Kp  float64
}

// DailyKp buckets GST events into the days of [to-days+1, to] in loc and keeps
// the highest Kp per day. Days without storms are 0.
func DailyKp(evts []models.SolarEvent, to time.Time, days int, loc *time.Location) []DailyPoint {
	if loc == nil {
		loc = time.UTC
	}
	end := to.In(loc)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)

	points := make([]DailyPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := last.AddDate(0, 0, i-days+1)
		points[i] = DailyPoint{Day: day}
		index[day.Format("2006-01-02")] = i
	}

	for _, e := range models.FilterByCategory(evts, models.CategoryGST) {
		if e.OccurredAt.IsZero() {
			continue
		}
		i, ok := index[e.OccurredAt.In(loc).Format("2006-01-02")]
		if !ok {
			continue
		}
		kp, ok := e.Raw.MaxKpSample()
		if !ok {
			kp = float64(events.ExtractKp(e))
		}
		points[i].Kp = math.Max(points[i].Kp, kp)
	}
	return points
}

// RenderKpTimeline writes a PNG line chart of the daily maximum Kp with the
// G1 threshold marked.
func RenderKpTimeline(w io.Writer, points []DailyPoint) error {
	if len(points) < 2 {
		return fmt.Errorf("need at least two days, got %d", len(points))
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	threshold := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.Day
		yValues[i] = p.Kp
		threshold[i] = 5
	}

	red := drawing.Color{R: 220, G: 53, B: 69, A: 255}
	graph := chart.Chart{
		Title:      "Kp máximo diário",
		TitleStyle: chart.Style{FontSize: 16, FontColor: drawing.ColorBlack},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 50, Right: 30, Bottom: 40},
		},
		Height: 360,
		Width:  800,
		XAxis: chart.XAxis{
			Name:           "Dia",
			Style:          chart.Style{FontSize: 9},
			ValueFormatter: chart.TimeValueFormatterWithFormat("02/01"),
		},
		YAxis: chart.YAxis{
			Name:  "Kp",
			Style: chart.Style{FontSize: 10},
			Range: &chart.ContinuousRange{Min: 0, Max: 9},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Kp",
				Style: chart.Style{
					StrokeColor: red,
					StrokeWidth: 3,
					DotColor:    red,
					DotWidth:    5,
				},
				XValues: xValues,
				YValues: yValues,
			},
			chart.TimeSeries{
				Name: "G1",
				Style: chart.Style{
					StrokeColor:     drawing.Color{R: 255, G: 165, B: 0, A: 255},
					StrokeWidth:     1,
					StrokeDashArray: []float64{5, 5},
				},
				XValues: xValues,
				YValues: threshold,
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render Kp timeline: %w", err)
	}
	return nil
}
