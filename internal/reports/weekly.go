package reports

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"solarwatch/internal/analysis"
	"solarwatch/internal/llm"
	"solarwatch/internal/models"
)

const detailedEventsLimit = 10

var sectorEmojis = map[models.Sector]string{
	models.SectorTelecommunications: "📡",
	models.SectorPowerGrid:          "⚡",
	models.SectorAviation:           "✈️",
	models.SectorSatellites:         "🛰️",
	models.SectorGPS:                "🧭",
	models.SectorGeneral:            "🌍",
}

var sectorNames = map[models.Sector]string{
	models.SectorTelecommunications: "Telecomunicações",
	models.SectorPowerGrid:          "Energia Elétrica",
	models.SectorAviation:           "Aviação Civil",
	models.SectorSatellites:         "Satélites",
	models.SectorGPS:                "GPS/Navegação",
}

// recommendation section titles, in analysis.RecommendationSectors order
var recommendationTitles = map[models.Sector]string{
	models.SectorTelecommunications: "📡 TELECOMUNICAÇÕES:",
	models.SectorPowerGrid:          "⚡ ENERGIA ELÉTRICA:",
	models.SectorAviation:           "✈️ AVIAÇÃO:",
	models.SectorSatellites:         "🛰️ SATÉLITES:",
	models.SectorGeneral:            "🌍 GERAL:",
}

var categoryEmojis = map[models.Category]string{
	models.CategoryGST: "🌪️",
	models.CategoryCME: "⚡",
	models.CategoryFLR: "🌞",
	models.CategorySEP: "☢️",
	models.CategoryHSS: "💨",
}

var severityIcons = map[models.Severity]string{
	"crítica":                "🔴",
	models.SeverityHigh:      "🟠",
	models.SeverityModerate:  "🟡",
	"baixa":                  "🟢",
	models.SeverityUndefined: "⚪",
}

// WeeklyReport builds the ordered message sequence of the weekly report.
// The AI message is included only when the analysis was generated and the
// detailed list only when there are events.
func WeeklyReport(evts []models.SolarEvent, an models.Analysis, now time.Time) []string {
	msgs := []string{
		ReportHeader(evts, now),
		ExecutiveSummary(evts),
	}
	if an.Generated {
		msgs = append(msgs, AIAnalysisMessage(an))
	}
	msgs = append(msgs,
		PredictiveReport(evts),
		SectorReport(evts),
		RecommendationsReport(evts),
	)
	if len(evts) > 0 {
		msgs = append(msgs, DetailedEventsReport(evts))
	}
	return append(msgs, ReportFooter())
}

// ReportHeader opens the weekly report.
func ReportHeader(evts []models.SolarEvent, now time.Time) string {
	weekAgo := now.AddDate(0, 0, -7)
	return fmt.Sprintf(`🌞 RELATÓRIO SEMANAL DE ATIVIDADE SOLAR 🤖

📅 Período: %s - %s
🔬 Análise com Inteligência Artificial
⏰ Gerado em: %s

%s

🌍 EVENTOS DETECTADOS: %d`,
		weekAgo.Format(dateLayoutBR), now.Format(dateLayoutBR), now.Format(stampLayoutBR), ruler, len(evts))
}

// ExecutiveSummary counts events per category with the overall risk score.
func ExecutiveSummary(evts []models.SolarEvent) string {
	if len(evts) == 0 {
		return `📊 RESUMO EXECUTIVO

✅ Nenhum evento solar significativo foi detectado na última semana.
🌤️ Condições do clima espacial: ESTÁVEIS
⚡ Status geral: NORMAL

A ausência de eventos solares indica um período de baixa atividade solar.`
	}

	counts := models.CountByCategory(evts)
	gst, cme, flr := counts[models.CategoryGST], counts[models.CategoryCME], counts[models.CategoryFLR]
	score := analysis.RiskScore(evts)

	return fmt.Sprintf(`📊 RESUMO EXECUTIVO

🔴 Tempestades Geomagnéticas (GST): %d
⚡ Ejeções de Massa Coronal (CME): %d
🌞 Explosões Solares (FLR): %d
📡 Outros eventos: %d

⚡ NÍVEL DE RISCO GERAL: %s
📊 Score de Risco: %d/100

%s`,
		gst, cme, flr, len(evts)-gst-cme-flr,
		strings.ToUpper(string(score.Level)), score.Score,
		analysis.RiskDescription(score.Level))
}

// AIAnalysisMessage wraps the analysis narrative. LLM markdown is flattened
// to WhatsApp formatting; the offline narrative is already plain text.
func AIAnalysisMessage(an models.Analysis) string {
	body := an.Summary
	if an.Mode == models.ModeGroq || an.Mode == models.ModeOpenAI {
		body = FlattenForWhatsApp(body)
	}
	return fmt.Sprintf("🤖 ANÁLISE DE INTELIGÊNCIA ARTIFICIAL\nPowered by: %s\n\n%s\n\n%s",
		llm.PoweredBy(an.Mode), body, ruler)
}

// PredictiveReport shows the trend and temporal pattern.
func PredictiveReport(evts []models.SolarEvent) string {
	trend := analysis.AnalyzeTrends(evts)
	temporal := analysis.AnalyzeTemporalPatterns(evts)

	interval := ""
	if temporal.TotalEvents > 1 {
		interval = fmt.Sprintf("⏱️ Intervalo Médio: %.1f horas", temporal.AverageIntervalHours)
	}

	return fmt.Sprintf(`📈 ANÁLISE PREDITIVA E TENDÊNCIAS

🔄 Tendência: %s
🎯 Predição: %s
📊 Confiança: %.0f%%
📈 Score de Atividade: %s

⏰ Padrão Temporal: %s
📝 %s
%s

%s`,
		strings.ToUpper(trend.Trend), trend.Prediction, trend.Confidence*100,
		formatScore(trend.ActivityScore),
		strings.ToUpper(temporal.Pattern), temporal.Description, interval, ruler)
}

// SectorReport lists the predicted impact per infrastructure sector.
func SectorReport(evts []models.SolarEvent) string {
	impacts := analysis.PredictSectorImpacts(evts)

	var b strings.Builder
	b.WriteString("🏢 IMPACTOS POR SETOR DA ECONOMIA\n\n")
	for _, sector := range models.ImpactSectors {
		impact := impacts[sector]
		fmt.Fprintf(&b, "%s %s: %s %s (%d%%)\n",
			sectorEmojis[sector], sectorNames[sector], levelColor(impact.Level),
			strings.ToUpper(string(impact.Level)), impact.Risk)
		for i, detail := range impact.Details {
			if i == 2 {
				break
			}
			fmt.Fprintf(&b, "   • %s\n", detail)
		}
		b.WriteString("\n")
	}
	b.WriteString(ruler)
	return b.String()
}

// RecommendationsReport lists advice grouped by sector.
func RecommendationsReport(evts []models.SolarEvent) string {
	recs := analysis.SpecificRecommendations(evts)

	var b strings.Builder
	b.WriteString("💡 RECOMENDAÇÕES ESPECÍFICAS\n\n")
	for _, sector := range analysis.RecommendationSectors {
		list := recs[sector]
		if len(list) == 0 {
			continue
		}
		b.WriteString(recommendationTitles[sector] + "\n")
		for _, rec := range list {
			fmt.Fprintf(&b, "• %s\n", rec)
		}
		b.WriteString("\n")
	}
	if len(evts) == 0 {
		b.WriteString("✅ Nenhuma ação especial necessária no momento.\n")
		b.WriteString("📊 Continue o monitoramento de rotina.\n\n")
	}
	b.WriteString(ruler)
	return b.String()
}

// TopEvents returns up to n events ordered by severity rank, keeping feed
// order among equals. The input is not modified.
func TopEvents(evts []models.SolarEvent, n int) []models.SolarEvent {
	sorted := make([]models.SolarEvent, len(evts))
	copy(sorted, evts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return models.SeverityRank(sorted[i].Severity) > models.SeverityRank(sorted[j].Severity)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// DetailedEventsReport lists the most significant events.
func DetailedEventsReport(evts []models.SolarEvent) string {
	top := TopEvents(evts, detailedEventsLimit)

	var b strings.Builder
	fmt.Fprintf(&b, "📋 TOP %d EVENTOS MAIS SIGNIFICATIVOS\n\n", len(top))
	for i, e := range top {
		date := "Data desconhecida"
		if !e.OccurredAt.IsZero() {
			date = e.OccurredAt.Format(dateLayoutBR)
		}
		emoji, ok := categoryEmojis[e.Category]
		if !ok {
			emoji = "🌌"
		}
		icon, ok := severityIcons[e.Severity]
		if !ok {
			icon = "⚪"
		}
		fmt.Fprintf(&b, "%d. %s %s %s\n", i+1, emoji, e.Category, icon)
		fmt.Fprintf(&b, "📅 %s\n", date)
		fmt.Fprintf(&b, "📄 %s\n\n", truncate(e.Description, 120))
	}
	if len(evts) > detailedEventsLimit {
		fmt.Fprintf(&b, "... e mais %d eventos registrados.\n\n", len(evts)-detailedEventsLimit)
	}
	b.WriteString(ruler)
	return b.String()
}

// ReportFooter closes the weekly report.
func ReportFooter() string {
	return `🔬 DADOS TÉCNICOS

📡 Fonte: NASA DONKI API
🤖 IA: Groq/OpenAI + Algoritmos ML
⏰ Próximo relatório: 7 dias
🌐 Sistema: SolarWatch

` + ruler + `

🛡️ Este sistema monitora continuamente a atividade solar e fornece alertas automáticos baseados em análise de inteligência artificial.

📞 Sistema desenvolvido para monitoramento científico.`
}

// ErrorNotice is sent when a report could not be completed.
func ErrorNotice(err error) string {
	return fmt.Sprintf("❌ Erro ao gerar relatório automático.\n\nDetalhes: %v\n\nTentarei novamente em breve.", err)
}

func levelColor(level models.RiskLevel) string {
	switch level {
	case models.RiskHigh, models.RiskCritical:
		return "🔴"
	case models.RiskModerate:
		return "🟡"
	default:
		return "🟢"
	}
}

// formatScore prints a score without trailing zeros, the way it reads in chat.
func formatScore(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// truncate cuts s to n runes, adding an ellipsis when something was cut.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
