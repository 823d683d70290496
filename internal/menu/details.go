package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solarwatch/internal/analysis"
	"solarwatch/internal/events"
	"solarwatch/internal/models"
	"solarwatch/internal/reports"
)

// detailLimit is how many events the per-category analyses show.
const detailLimit = 3

var categoryLabels = map[models.Category]string{
	models.CategoryGST: "Tempestades",
	models.CategoryCME: "Ejeções",
	models.CategoryFLR: "Explosões",
	models.CategorySEP: "Partículas",
	models.CategoryHSS: "Ventos",
}

func firstN(evts []models.SolarEvent, n int) []models.SolarEvent {
	if len(evts) > n {
		return evts[:n]
	}
	return evts
}

// CurrentActivity is option 1: counts per category plus the 24h outlook.
func CurrentActivity(evts []models.SolarEvent) string {
	counts := models.CountByCategory(evts)

	var b strings.Builder
	b.WriteString("🌞 *ATIVIDADE SOLAR ATUAL*\n\n📊 *RESUMO GERAL*:\n")
	fmt.Fprintf(&b, "• Total de eventos: %d\n", len(evts))
	for _, cat := range models.Categories {
		fmt.Fprintf(&b, "• %s (%s): %d\n", cat, categoryLabels[cat], counts[cat])
	}
	fmt.Fprintf(&b, "\n📈 *NÍVEL DE ATIVIDADE*:\n%s\n\n", events.OverallActivity(len(evts)))
	fmt.Fprintf(&b, "🎯 *PRÓXIMAS 24H*:\n%s\n\n", events.Forecast24h(evts))
	b.WriteString("Digite um número (2-6) para análise detalhada de cada tipo de evento.")
	return b.String()
}

// GeomagneticStorms is option 2.
func (m *Menu) GeomagneticStorms(evts []models.SolarEvent) string {
	gst := models.FilterByCategory(evts, models.CategoryGST)
	if len(gst) == 0 {
		return quietGST
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌞 *TEMPESTADES GEOMAGNÉTICAS (GST)*\n\n🚨 *EVENTOS ATIVOS*: %d detectados!\n\n", len(gst))
	for i, e := range firstN(gst, detailLimit) {
		kp := events.ExtractKp(e)
		fmt.Fprintf(&b, "⚡ *EVENTO %d*:\n", i+1)
		fmt.Fprintf(&b, "📅 *Início*: %s\n", m.stamp(e.OccurredAt))
		fmt.Fprintf(&b, "📊 *Índice Kp*: %d (%s)\n", kp, events.StormLevel(kp))
		fmt.Fprintf(&b, "⏱️ *Duração*: %s\n", events.EventDuration(e))
		fmt.Fprintf(&b, "🌍 *Chance Aurora Brasil*: %d%%\n\n", events.AuroraChance(kp))
	}
	fmt.Fprintf(&b, "🔬 *ANÁLISE TÉCNICA*:\n%s\n\n🎯 *PARA OBSERVAÇÃO*:\n%s", gstTechnical, gstObservationTips)
	return b.String()
}

// CoronalMassEjections is option 3.
func (m *Menu) CoronalMassEjections(evts []models.SolarEvent) string {
	cmes := models.FilterByCategory(evts, models.CategoryCME)
	if len(cmes) == 0 {
		return quietCME
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌪️ *EJEÇÕES DE MASSA CORONAL (CME)*\n\n🚨 *EVENTOS DETECTADOS*: %d\n\n", len(cmes))
	for i, e := range firstN(cmes, detailLimit) {
		speed := events.ExtractCMESpeed(e)
		fmt.Fprintf(&b, "🌪️ *CME %d*:\n", i+1)
		fmt.Fprintf(&b, "📅 *Erupção*: %s\n", m.stamp(e.OccurredAt))
		fmt.Fprintf(&b, "⚡ *Velocidade*: %s km/s (%s)\n", speed, events.CMESpeedClass(speed))
		fmt.Fprintf(&b, "🧭 *Direção*: %s\n", events.ExtractCMEDirection(e))
		fmt.Fprintf(&b, "🕐 *Chegada estimada*: %s\n", m.date(events.EstimateArrival(e, speed)))
		fmt.Fprintf(&b, "⚠️ *Risco para Terra*: %s\n\n", events.AssessEarthRisk(events.IsEarthDirected(e), speed))
	}
	fmt.Fprintf(&b, "🔬 *ANÁLISE TÉCNICA*:\n%s\n\n🎯 *IMPACTOS ESPERADOS*:\n%s", cmeTechnical, cmeImpactForecast(cmes))
	return b.String()
}

func cmeImpactForecast(cmes []models.SolarEvent) string {
	directed, maxKp := 0, 0
	for _, e := range cmes {
		if !events.IsEarthDirected(e) {
			continue
		}
		directed++
		if kp := events.PredictKp(e); kp > maxKp {
			maxKp = kp
		}
	}
	if directed == 0 {
		return "✅ Nenhuma CME direcionada à Terra - impacto mínimo esperado"
	}
	return fmt.Sprintf("⚠️ %d CME(s) direcionada(s) à Terra\n• Kp previsto até %d (%s)\n• Auroras possíveis em 1-3 dias",
		directed, maxKp, events.StormLevel(maxKp))
}

// SolarFlares is option 4.
func (m *Menu) SolarFlares(evts []models.SolarEvent) string {
	flares := models.FilterByCategory(evts, models.CategoryFLR)
	if len(flares) == 0 {
		return quietFLR
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔥 *EXPLOSÕES SOLARES (SOLAR FLARES)*\n\n⚡ *EVENTOS DETECTADOS*: %d\n\n", len(flares))
	for i, e := range firstN(flares, detailLimit) {
		class := events.ExtractFlareClass(e)
		fmt.Fprintf(&b, "🔥 *FLARE %d*:\n", i+1)
		fmt.Fprintf(&b, "📅 *Detecção*: %s\n", m.stamp(e.OccurredAt))
		fmt.Fprintf(&b, "⚡ *Classe*: %s (%s)\n", class, events.FlareIntensity(class))
		fmt.Fprintf(&b, "🕐 *Pico*: %s\n", events.PeakTime(e))
		fmt.Fprintf(&b, "⏱️ *Duração*: %s\n", events.FlareDuration(e))
		fmt.Fprintf(&b, "🎯 *Região Ativa*: %s\n", events.SourceRegion(e))
		fmt.Fprintf(&b, "📡 *Frequência afetada*: %s\n\n", events.AffectedFrequencies(class))
	}
	fmt.Fprintf(&b, "🔬 *ANÁLISE TÉCNICA*:\n%s\n\n📱 *MONITORAMENTO*:\n%s", flareTechnical, flareMonitoringTips)
	return b.String()
}

// ParticleEvents is option 5.
func (m *Menu) ParticleEvents(evts []models.SolarEvent) string {
	seps := models.FilterByCategory(evts, models.CategorySEP)
	if len(seps) == 0 {
		return quietSEP
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⚡ *PARTÍCULAS ENERGÉTICAS SOLARES (SEP)*\n\n🚨 *EVENTOS ATIVOS*: %d\n\n", len(seps))
	for i, e := range firstN(seps, detailLimit) {
		energy := events.ExtractSEPEnergy(e)
		intensity := events.ExtractSEPIntensity(e)
		fmt.Fprintf(&b, "⚡ *EVENTO SEP %d*:\n", i+1)
		fmt.Fprintf(&b, "📅 *Início*: %s\n", m.stamp(e.OccurredAt))
		fmt.Fprintf(&b, "⚡ *Energia*: %s MeV\n", energy)
		fmt.Fprintf(&b, "📊 *Intensidade*: %s prótons/cm²/s/sr\n", intensity)
		fmt.Fprintf(&b, "🔥 *Fonte*: %s\n", events.SourceFlare(e))
		fmt.Fprintf(&b, "⚠️ *Risco*: %s\n", events.SEPRisk(energy, intensity))
		fmt.Fprintf(&b, "🛰️ *Impacto satélites*: %s\n\n", events.SatelliteImpact(energy))
	}
	b.WriteString(sepTechnical)
	return b.String()
}

// HighSpeedStreams is option 6.
func (m *Menu) HighSpeedStreams(evts []models.SolarEvent) string {
	streams := models.FilterByCategory(evts, models.CategoryHSS)
	if len(streams) == 0 {
		return quietHSS
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌊 *CORRENTES DE VENTO SOLAR RÁPIDO (HSS)*\n\n💨 *EVENTOS DETECTADOS*: %d\n\n", len(streams))
	for i, e := range firstN(streams, detailLimit) {
		speed := events.ExtractHSSSpeed(e)
		fmt.Fprintf(&b, "🌊 *HSS %d*:\n", i+1)
		fmt.Fprintf(&b, "📅 *Início*: %s\n", m.stamp(e.OccurredAt))
		fmt.Fprintf(&b, "💨 *Velocidade*: %s km/s (%s)\n", speed, events.HSSSpeedClass(speed))
		fmt.Fprintf(&b, "⏱️ *Duração prevista*: %s\n", events.HSSDuration())
		fmt.Fprintf(&b, "🕳️ *Fonte*: %s\n", events.CoronalHoleSource())
		fmt.Fprintf(&b, "🌈 *Potencial de Aurora*: %s\n", events.HSSAuroraForecast(speed))
		fmt.Fprintf(&b, "🔄 *Recorrência*: %s\n\n", events.RecurrencePattern())
	}
	b.WriteString(hssTechnical)
	return b.String()
}

// AIAnalysis is option 7. Without an analyst the offline analysis is used.
func (m *Menu) AIAnalysis(ctx context.Context, evts []models.SolarEvent) string {
	var an models.Analysis
	if m.analyst != nil {
		an = m.analyst.Analyze(ctx, evts)
	} else {
		level := analysis.DetermineRiskLevel(evts)
		an = models.Analysis{
			Summary:     analysis.OfflineAnalysis(evts, level),
			RiskLevel:   level,
			Mode:        models.ModeOffline,
			GeneratedAt: events.Now(),
			EventCount:  len(evts),
		}
	}

	summary := an.Summary
	if an.Mode == models.ModeGroq || an.Mode == models.ModeOpenAI {
		summary = reports.FlattenForWhatsApp(summary)
	}

	return fmt.Sprintf(`🤖 *ANÁLISE COMPLETA DE INTELIGÊNCIA ARTIFICIAL*

%s

📊 *MÉTRICAS TÉCNICAS*:
• Eventos processados: %d
• Nível de risco: %s
• Timestamp: %s
• Modo: %s

🔬 *INTERPRETAÇÃO CIENTÍFICA*:
A análise considera correlações entre diferentes tipos de eventos, padrões sazonais e impactos em cascata para fornecer uma visão holística da atividade solar atual.

Digite *7* novamente para análise atualizada.`,
		summary, len(evts), strings.ToUpper(string(an.RiskLevel)),
		an.GeneratedAt.UTC().Format(time.RFC3339), an.Mode)
}

// AuroraForecast is option 8.
func (m *Menu) AuroraForecast(evts []models.SolarEvent) string {
	kp := events.CurrentKp(evts)
	now := events.Now().In(m.loc)

	var b strings.Builder
	b.WriteString("🌈 *PREVISÃO COMPLETA DE AURORAS*\n\n📊 *CONDIÇÕES ATUAIS*:\n")
	fmt.Fprintf(&b, "• Índice Kp atual: %d\n", kp)
	fmt.Fprintf(&b, "• Zona de aurora: %d°N magnético\n", events.AuroraZoneLatitude(kp))
	fmt.Fprintf(&b, "• Visibilidade Brasil: %d%%\n\n", events.BrazilAuroraChance(kp))
	b.WriteString("🗓️ *PRÓXIMAS 72H*:")

	storms := 0
	for _, e := range models.FilterByCategory(evts, models.CategoryCME) {
		predicted := events.PredictKp(e)
		if predicted < 5 {
			continue
		}
		arrival := events.EstimateArrival(e, events.ExtractCMESpeed(e))
		fmt.Fprintf(&b, "\n⚡ *%s às %s*: Kp%d previsto (%s)",
			m.date(arrival), m.clock(arrival), predicted, events.StormLevel(predicted))
		storms++
	}
	if storms == 0 {
		b.WriteString("\n• Nenhuma tempestade prevista por CMEs")
	}

	b.WriteString(`

🔬 *ANÁLISE CIENTÍFICA*:
• Campo magnético interplanetário (IMF): Bz componente: Monitorar inversão sul (favorável para reconexão)
• Pressão dinâmica do vento solar: Pressão atual: Normal (~2 nPa)
• Reconexão magnética favorável: Monitorar rotação do campo magnético interplanetário

🌙 *CONDIÇÕES LUNARES*:
`)
	fmt.Fprintf(&b, "• Fase atual: %s\n", events.MoonPhase(now))
	fmt.Fprintf(&b, "• Interferência lunar: %s\n\n", events.MoonInterference(now))
	fmt.Fprintf(&b, "🌍 *MELHORES LOCAIS NO BRASIL*:\n%s\n\n", bestBrazilLocations)
	fmt.Fprintf(&b, "📷 *CONFIGURAÇÃO DE CÂMERA*:\n%s", auroraCameraSettings)
	return b.String()
}
