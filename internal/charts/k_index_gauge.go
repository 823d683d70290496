package charts

import (
	"fmt"

	"solarwatch/internal/events"
)

// kpStatus names the storm scale reached by kp.
func kpStatus(kp int) string {
	switch {
	case kp <= 2:
		return "Calmo"
	case kp <= 4:
		return "Instável"
	default:
		return events.StormLevel(kp)
	}
}

// KpGauge builds a 0-9 gauge for the planetary Kp index, banded by G-scale.
func KpGauge(kp int) (ChartSnippet, error) {
	if kp < 0 || kp > 9 {
		return ChartSnippet{}, fmt.Errorf("kp out of range: %d", kp)
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{
			"formatter": "{a} <br/>{b} : {c}",
		},
		"series": []interface{}{
			map[string]interface{}{
				"name":        "Kp",
				"type":        "gauge",
				"min":         0,
				"max":         9,
				"splitNumber": 9,
				"radius":      "80%",
				"axisLine": map[string]interface{}{
					"lineStyle": map[string]interface{}{
						"width": 20,
						"color": [][]interface{}{
							{0.44, "#28a745"}, // 0-4 quiet
							{0.56, "#ffc107"}, // G1
							{0.67, "#fd7e14"}, // G2
							{0.89, "#dc3545"}, // G3-G4
							{1.0, "#6f42c1"},  // G5
						},
					},
				},
				"pointer": map[string]interface{}{
					"itemStyle": map[string]interface{}{"color": "auto"},
				},
				"axisLabel": map[string]interface{}{
					"color":    "inherit",
					"fontSize": 14,
					"distance": 35,
				},
				"detail": map[string]interface{}{
					"formatter":    fmt.Sprintf("%d\n%s", kp, kpStatus(kp)),
					"color":        "inherit",
					"fontSize":     14,
					"fontWeight":   "bold",
					"offsetCenter": []interface{}{0, "60%"},
				},
				"data": []interface{}{
					map[string]interface{}{"value": kp, "name": "Kp"},
				},
			},
		},
	}

	return newSnippet("chart-kp-gauge", "Índice Kp", 250, option)
}
