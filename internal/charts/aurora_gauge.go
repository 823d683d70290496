package charts

import (
	"fmt"
	"strings"
)

// AuroraGauge builds a 0-100% gauge for the aurora chance in one region.
func AuroraGauge(region string, chance int) (ChartSnippet, error) {
	if chance < 0 || chance > 100 {
		return ChartSnippet{}, fmt.Errorf("aurora chance out of range: %d", chance)
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{
			"formatter": "{a} <br/>{b} : {c}%",
		},
		"series": []interface{}{
			map[string]interface{}{
				"name":        "Aurora",
				"type":        "gauge",
				"min":         0,
				"max":         100,
				"splitNumber": 5,
				"axisLine": map[string]interface{}{
					"lineStyle": map[string]interface{}{
						"width": 10,
						"color": [][]interface{}{
							{0.3, "#67e0e3"},
							{0.6, "#37a2da"},
							{0.8, "#ffdb5c"},
							{1.0, "#ff9f7f"},
						},
					},
				},
				"pointer": map[string]interface{}{"width": 6},
				"detail": map[string]interface{}{
					"formatter":    fmt.Sprintf("%d%%", chance),
					"fontSize":     16,
					"fontWeight":   "bold",
					"offsetCenter": []string{"0%", "40%"},
				},
				"data": []interface{}{
					map[string]interface{}{"value": chance, "name": region},
				},
			},
		},
	}

	id := "chart-aurora-" + strings.ToLower(region)
	return newSnippet(id, "Aurora "+region, 220, option)
}
