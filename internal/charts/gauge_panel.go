package charts

import (
	"fmt"
	"strings"

	"solarwatch/internal/models"
)

// GaugePanel combines the Kp gauge and the South American aurora gauges into
// one block with a single library tag.
func GaugePanel(ind models.AstronomyIndicators) (ChartSnippet, error) {
	kp, err := KpGauge(clampKp(ind.KpMax))
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("failed to generate Kp gauge: %w", err)
	}
	gauges := []ChartSnippet{kp}

	regions := []struct {
		name   string
		chance int
	}{
		{"Brasil", ind.Aurora.Brasil},
		{"Argentina", ind.Aurora.Argentina},
		{"Uruguai", ind.Aurora.Uruguai},
	}
	for _, r := range regions {
		g, err := AuroraGauge(r.name, r.chance)
		if err != nil {
			return ChartSnippet{}, fmt.Errorf("failed to generate %s aurora gauge: %w", r.name, err)
		}
		gauges = append(gauges, g)
	}

	items := make([]string, 0, len(gauges))
	scripts := make([]string, 0, len(gauges))
	for _, g := range gauges {
		items = append(items, g.Div)
		scripts = append(scripts, scriptBody(g.Script))
	}

	div := fmt.Sprintf("<div class=\"gauge-panel\">\n<h3>Condições atuais</h3>\n<div class=\"gauge-container\">\n%s\n</div>\n</div>", strings.Join(items, "\n"))
	script := "<script>\n" + strings.Join(scripts, "\n") + "\n</script>"

	return ChartSnippet{
		ID:     "chart-gauge-panel",
		Title:  "Condições atuais",
		Div:    div,
		Script: script,
		HTML:   echartsCDN + "\n" + div + "\n" + script,
	}, nil
}

func clampKp(kp int) int {
	switch {
	case kp < 0:
		return 0
	case kp > 9:
		return 9
	default:
		return kp
	}
}
