package reports

import (
	"fmt"
	"strings"
	"time"

	"solarwatch/internal/analysis"
	"solarwatch/internal/models"
)

const maxHeadlines = 3

// EventsOn keeps the events whose local calendar date matches day.
func EventsOn(evts []models.SolarEvent, day time.Time) []models.SolarEvent {
	y, m, d := day.Date()
	out := []models.SolarEvent{}
	for _, e := range evts {
		ey, em, ed := e.OccurredAt.In(day.Location()).Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}

// DailySummary scores today's events. Up to three bulletin headlines are
// appended when the feed returned any.
func DailySummary(evts []models.SolarEvent, now time.Time, headlines []string) string {
	today := EventsOn(evts, now)
	score := analysis.RiskScore(today)

	var b strings.Builder
	fmt.Fprintf(&b, "🌞 RESUMO DIÁRIO - %s\n\n", now.Format(dateLayoutBR))
	fmt.Fprintf(&b, "📊 Eventos hoje: %d\n", len(today))
	fmt.Fprintf(&b, "⚡ Nível de risco: %s\n", strings.ToUpper(string(score.Level)))
	fmt.Fprintf(&b, "📈 Score: %d/100\n\n", score.Score)
	b.WriteString(analysis.RiskDescription(score.Level))
	b.WriteString("\n\n")

	if len(headlines) > 0 {
		b.WriteString("📰 BOLETINS RECENTES:\n")
		for i, h := range headlines {
			if i == maxHeadlines {
				break
			}
			fmt.Fprintf(&b, "• %s\n", h)
		}
		b.WriteString("\n")
	}

	b.WriteString("🤖 Relatório automático do SolarWatch")
	return b.String()
}
