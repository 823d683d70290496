package reports

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"solarwatch/internal/models"
)

var categoryColors = map[models.Category]drawing.Color{
	models.CategoryGST: drawing.ColorFromHex("c0392b"),
	models.CategoryCME: drawing.ColorFromHex("e67e22"),
	models.CategoryFLR: drawing.ColorFromHex("f1c40f"),
	models.CategorySEP: drawing.ColorFromHex("8e44ad"),
	models.CategoryHSS: drawing.ColorFromHex("2980b9"),
}

// RenderActivityChart writes a PNG bar chart of event counts per category.
func RenderActivityChart(w io.Writer, evts []models.SolarEvent) error {
	counts := models.CountByCategory(evts)

	maxCount := 1
	bars := make([]chart.Value, 0, len(models.Categories))
	for _, cat := range models.Categories {
		n := counts[cat]
		if n > maxCount {
			maxCount = n
		}
		bars = append(bars, chart.Value{
			Value: float64(n),
			Label: string(cat),
			Style: chart.Style{
				FillColor:   categoryColors[cat],
				StrokeColor: categoryColors[cat],
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title: "Eventos solares por categoria",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Height:   400,
		Width:    600,
		BarWidth: 60,
		Bars:     bars,
		XAxis: chart.Style{
			FontSize: 12,
		},
		YAxis: chart.YAxis{
			Name: "Eventos",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
			Range: &chart.ContinuousRange{
				Min: 0,
				Max: float64(maxCount),
			},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render activity chart: %w", err)
	}
	return nil
}
