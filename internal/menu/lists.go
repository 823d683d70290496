package menu

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"solarwatch/internal/analysis"
	"solarwatch/internal/events"
	"solarwatch/internal/models"
)

// leadingInt parses the leading digits of s, so "400-500" yields 400.
func leadingInt(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

type intStats struct {
	count int
	sum   int
	max   int
}

func (s *intStats) add(v int) {
	if s.count == 0 || v > s.max {
		s.max = v
	}
	s.count++
	s.sum += v
}

func (s intStats) mean() string {
	if s.count == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.0f", float64(s.sum)/float64(s.count))
}

func (s intStats) maximum() string {
	if s.count == 0 {
		return "N/A"
	}
	return strconv.Itoa(s.max)
}

// ListGST is option 13.
func (m *Menu) ListGST(evts []models.SolarEvent) string {
	gst := models.FilterByCategory(evts, models.CategoryGST)
	if len(gst) == 0 {
		return "⚡ *TODOS OS EVENTOS GST*\n\n✅ Nenhuma tempestade geomagnética detectada nos últimos 7 dias.\n\n🔬 *INFORMAÇÃO TÉCNICA*:\nTempestades geomagnéticas são causadas por ventos solares intensos interagindo com a magnetosfera terrestre."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⚡ *TODOS OS EVENTOS GST DETECTADOS*\n\n📊 *TOTAL*: %d tempestades geomagnéticas\n\n", len(gst))

	var kps intStats
	for i, e := range gst {
		kp := events.ExtractKp(e)
		kps.add(kp)

		fmt.Fprintf(&b, "🌪️ *GST %d*:\n", i+1)
		fmt.Fprintf(&b, "📅 *Data/Hora*: %s\n", m.stamp(e.OccurredAt))
		fmt.Fprintf(&b, "⚡ *Índice Kp*: %d (%s)\n", kp, events.StormLevel(kp))
		fmt.Fprintf(&b, "⏱️ *Duração*: %s\n", events.EventDuration(e))
		fmt.Fprintf(&b, "🌈 *Aurora Brasil*: %d%%\n", events.AuroraChance(kp))
		if sample, ok := e.Raw.MaxKpSample(); ok {
			fmt.Fprintf(&b, "📈 *Kp Máximo Real*: %s\n", strconv.FormatFloat(sample, 'f', -1, 64))
		}
		if c, ok := analysis.ClassifyStorm(e); ok {
			fmt.Fprintf(&b, "🎯 *Classificação*: %s (confiança %.0f%%, duração prevista %s)\n",
				c.Severity, c.Confidence*100, c.PredictedDuration)
		}
		if n := e.Raw.LinkedEventCount(); n > 0 {
			fmt.Fprintf(&b, "🔗 *Eventos Relacionados*: %d\n", n)
		}
		b.WriteString("\n")
	}

	b.WriteString("🔬 *ANÁLISE ESTATÍSTICA*:\n")
	fmt.Fprintf(&b, "• *Kp Médio*: %.1f\n", float64(kps.sum)/float64(kps.count))
	fmt.Fprintf(&b, "• *Kp Máximo*: %d\n", kps.max)
	fmt.Fprintf(&b, "• *Intensidade*: %s\n\n", events.StormLevel(kps.max))
	b.WriteString("📱 Digite *2* para análise técnica detalhada")
	return b.String()
}

// ListCME is option 14.
func (m *Menu) ListCME(evts []models.SolarEvent) string {
	cmes := models.FilterByCategory(evts, models.CategoryCME)
	if len(cmes) == 0 {
		return "🌪️ *TODOS OS EVENTOS CME*\n\n✅ Nenhuma ejeção de massa coronal detectada nos últimos 7 dias.\n\n🔬 *INFORMAÇÃO TÉCNICA*:\nCMEs são enormes bolhas de plasma ejetadas pelo Sol que podem causar tempestades geomagnéticas 1-3 dias depois."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌪️ *TODOS OS EVENTOS CME DETECTADOS*\n\n📊 *TOTAL*: %d ejeções de massa coronal\n\n", len(cmes))

	var speeds intStats
	directed := 0
	for i, e := range cmes {
		speed := events.ExtractCMESpeed(e)
		if s, ok := leadingInt(speed); ok {
			speeds.add(s)
		}
		isDirected := events.IsEarthDirected(e)
		if isDirected {
			directed++
		}

		fmt.Fprintf(&b, "🌪️ *CME %d*:\n", i+1)
		fmt.Fprintf(&b, "📅 *Erupção*: %s\n", m.stamp(e.OccurredAt))
		fmt.Fprintf(&b, "⚡ *Velocidade*: %s km/s (%s)\n", speed, events.CMESpeedClass(speed))
		fmt.Fprintf(&b, "🧭 *Direção*: %s\n", events.ExtractCMEDirection(e))
		fmt.Fprintf(&b, "🕐 *Chegada*: %s\n", m.date(events.EstimateArrival(e, speed)))
		fmt.Fprintf(&b, "⚠️ *Risco Terra*: %s\n", events.AssessEarthRisk(isDirected, speed))
		if a, ok := e.Raw.FirstCMEAnalysis(); ok {
			if a.Speed != 0 {
				fmt.Fprintf(&b, "📐 *Velocidade Medida*: %s km/s\n", strconv.FormatFloat(a.Speed, 'f', -1, 64))
			}
			if a.HalfAngle != 0 {
				fmt.Fprintf(&b, "📏 *Ângulo*: %s°\n", strconv.FormatFloat(a.HalfAngle, 'f', -1, 64))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("🔬 *ANÁLISE ESTATÍSTICA*:\n")
	fmt.Fprintf(&b, "• *Velocidade Média*: %s km/s\n", speeds.mean())
	fmt.Fprintf(&b, "• *Velocidade Máxima*: %s km/s\n", speeds.maximum())
	fmt.Fprintf(&b, "• *Direcionadas à Terra*: %d\n\n", directed)
	b.WriteString("📱 Digite *3* para análise técnica detalhada")
	return b.String()
}

// ListFLR is option 15.
func (m *Menu) ListFLR(evts []models.SolarEvent) string {
	flares := models.FilterByCategory(evts, models.CategoryFLR)
	if len(flares) == 0 {
		return "🔥 *TODOS OS EVENTOS FLR*\n\n✅ Nenhuma explosão solar detectada nos últimos 7 dias.\n\n🔬 *INFORMAÇÃO TÉCNICA*:\nExplosões solares liberam energia eletromagnética instantaneamente, chegando à Terra em 8 minutos."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔥 *TODAS AS EXPLOSÕES SOLARES DETECTADAS*\n\n📊 *TOTAL*: %d explosões solares\n\n", len(flares))

	classes := make([]string, 0, len(flares))
	for i, e := range flares {
		class := events.ExtractFlareClass(e)
		classes = append(classes, class)

		fmt.Fprintf(&b, "🔥 *FLARE %d*:\n", i+1)
		fmt.Fprintf(&b, "📅 *Início*: %s\n", m.stamp(e.OccurredAt))
		fmt.Fprintf(&b, "⚡ *Classe*: %s (%s)\n", class, events.FlareIntensity(class))
		fmt.Fprintf(&b, "🕐 *Pico*: %s\n", events.PeakTime(e))
		fmt.Fprintf(&b, "⏱️ *Duração*: %s\n", events.FlareDuration(e))
		fmt.Fprintf(&b, "🎯 *Região Ativa*: %s\n", events.SourceRegion(e))
		fmt.Fprintf(&b, "📡 *Impacto Rádio*: %s\n", events.RadioImpact(class))
		if raw, ok := e.Raw.String("peakTime"); ok {
			if peak, ok := events.ParseTime(raw); ok {
				fmt.Fprintf(&b, "⚡ *Pico Exato*: %s\n", m.clock(peak))
			}
		}
		if classType, ok := e.Raw.String("classType"); ok && classType != "" {
			fmt.Fprintf(&b, "🏷️ *Tipo*: %s\n", classType)
		}
		b.WriteString("\n")
	}

	byLetter := map[string]int{}
	for _, class := range classes {
		byLetter[events.FlareLetter(class)]++
	}
	b.WriteString("🔬 *ANÁLISE ESTATÍSTICA*:\n")
	fmt.Fprintf(&b, "• *Classe X (Extremas)*: %d\n", byLetter["X"])
	fmt.Fprintf(&b, "• *Classe M (Fortes)*: %d\n", byLetter["M"])
	fmt.Fprintf(&b, "• *Classe C (Moderadas)*: %d\n", byLetter["C"])
	fmt.Fprintf(&b, "• *Mais Intensa*: %s\n\n", events.MostIntenseFlare(classes))
	b.WriteString("📱 Digite *4* para análise técnica detalhada")
	return b.String()
}

// ListSEP is option 16.
func (m *Menu) ListSEP(evts []models.SolarEvent) string {
	seps := models.FilterByCategory(evts, models.CategorySEP)
	if len(seps) == 0 {
		return "⚡ *TODOS OS EVENTOS SEP*\n\n✅ Nenhum evento de partículas energéticas detectado nos últimos 7 dias.\n\n🔬 *INFORMAÇÃO TÉCNICA*:\nPartículas energéticas solares são prótons e elétrons acelerados por explosões solares que podem danificar equipamentos eletrônicos."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "⚡ *TODOS OS EVENTOS SEP DETECTADOS*\n\n📊 *TOTAL*: %d eventos de partículas energéticas\n\n", len(seps))

	var energies intStats
	highEnergy := 0
	for i, e := range seps {
		energy := events.ExtractSEPEnergy(e)
		intensity := events.ExtractSEPIntensity(e)
		value, _ := leadingInt(energy)
		energies.add(value)
		if value > 100 {
			highEnergy++
		}

		fmt.Fprintf(&b, "⚡ *SEP %d*:\n", i+1)
		fmt.Fprintf(&b, "📅 *Início*: %s\n", m.stamp(e.OccurredAt))
		fmt.Fprintf(&b, "⚡ *Energia*: %s MeV\n", energy)
		fmt.Fprintf(&b, "📊 *Intensidade*: %s prótons/cm²/s/sr\n", intensity)
		fmt.Fprintf(&b, "🔥 *Fonte*: %s\n", events.SourceFlare(e))
		fmt.Fprintf(&b, "⚠️ *Risco*: %s\n", events.SEPRisk(energy, intensity))
		fmt.Fprintf(&b, "🛰️ *Impacto Satélites*: %s\n", events.SatelliteImpact(energy))
		if name, ok := e.Raw.FirstInstrument(); ok {
			fmt.Fprintf(&b, "🔬 *Detector*: %s\n", name)
		}
		b.WriteString("\n")
	}

	b.WriteString("🔬 *ANÁLISE ESTATÍSTICA*:\n")
	fmt.Fprintf(&b, "• *Energia Média*: %s MeV\n", energies.mean())
	fmt.Fprintf(&b, "• *Energia Máxima*: %s MeV\n", energies.maximum())
	fmt.Fprintf(&b, "• *Eventos >100 MeV*: %d\n\n", highEnergy)
	b.WriteString("📱 Digite *5* para análise técnica detalhada")
	return b.String()
}

// ListHSS is option 17.
func (m *Menu) ListHSS(evts []models.SolarEvent) string {
	streams := models.FilterByCategory(evts, models.CategoryHSS)
	if len(streams) == 0 {
		return "🌊 *TODOS OS EVENTOS HSS*\n\n✅ Nenhuma corrente de vento solar rápido detectada nos últimos 7 dias.\n\n🔬 *INFORMAÇÃO TÉCNICA*:\nVentos solares rápidos originam-se de buracos coronais e podem causar auroras suaves e prolongadas."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌊 *TODAS AS CORRENTES HSS DETECTADAS*\n\n📊 *TOTAL*: %d correntes de vento solar rápido\n\n", len(streams))

	var speeds intStats
	fast := 0
	for i, e := range streams {
		speed := events.ExtractHSSSpeed(e)
		if s, ok := leadingInt(speed); ok {
			speeds.add(s)
			if s > 600 {
				fast++
			}
		}

		fmt.Fprintf(&b, "🌊 *HSS %d*:\n", i+1)
		fmt.Fprintf(&b, "📅 *Início*: %s\n", m.stamp(e.OccurredAt))
		fmt.Fprintf(&b, "💨 *Velocidade*: %s km/s (%s)\n", speed, events.HSSSpeedClass(speed))
		fmt.Fprintf(&b, "⏱️ *Duração*: %s\n", events.HSSDuration())
		fmt.Fprintf(&b, "🕳️ *Fonte*: %s\n", events.CoronalHoleSource())
		fmt.Fprintf(&b, "🌈 *Aurora*: %s\n", events.HSSAuroraForecast(speed))
		fmt.Fprintf(&b, "🔄 *Recorrência*: %s\n", events.RecurrencePattern())
		if name, ok := e.Raw.FirstInstrument(); ok {
			fmt.Fprintf(&b, "🔬 *Monitor*: %s\n", name)
		}
		b.WriteString("\n")
	}

	b.WriteString("🔬 *ANÁLISE ESTATÍSTICA*:\n")
	fmt.Fprintf(&b, "• *Velocidade Média*: %s km/s\n", speeds.mean())
	fmt.Fprintf(&b, "• *Velocidade Máxima*: %s km/s\n", speeds.maximum())
	fmt.Fprintf(&b, "• *Eventos >600 km/s*: %d\n\n", fast)
	b.WriteString("📱 Digite *6* para análise técnica detalhada")
	return b.String()
}

// ListAll is option 18: every event, newest first, with one key attribute each.
func (m *Menu) ListAll(evts []models.SolarEvent) string {
	if len(evts) == 0 {
		return "📋 *LISTA COMPLETA DE EVENTOS*\n\n✅ Nenhum evento solar detectado nos últimos 7 dias.\n\n🌞 Período de atividade solar calma."
	}

	counts := models.CountByCategory(evts)
	var b strings.Builder
	b.WriteString("📋 *LISTA COMPLETA - TODOS OS EVENTOS*\n\n📊 *RESUMO GERAL*:\n")
	for _, cat := range models.Categories {
		fmt.Fprintf(&b, "• %s *%s*: %d eventos\n", events.EventIcon(cat), cat, counts[cat])
	}
	b.WriteString("\n🕐 *CRONOLOGIA COMPLETA*:\n\n")

	sorted := make([]models.SolarEvent, len(evts))
	copy(sorted, evts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.After(sorted[j].OccurredAt)
	})

	for _, e := range sorted {
		fmt.Fprintf(&b, "%s *%s* - %s\n", events.EventIcon(e.Category), e.Category, m.stamp(e.OccurredAt))
		b.WriteString(keyAttribute(e))
		b.WriteString("\n")
	}

	b.WriteString("🔬 *ANÁLISE GLOBAL*:\n")
	fmt.Fprintf(&b, "• *Período*: Últimos %d dias\n", int(m.lookback.Hours()/24))
	fmt.Fprintf(&b, "• *Total de eventos*: %d\n", len(evts))
	fmt.Fprintf(&b, "• *Nível de atividade*: %s\n", events.OverallActivity(len(evts)))
	fmt.Fprintf(&b, "• *Tendência*: %s\n\n", events.ActivityTrend(evts))
	b.WriteString("📱 Digite 1-6 para análises específicas por tipo")
	return b.String()
}

func keyAttribute(e models.SolarEvent) string {
	switch e.Category {
	case models.CategoryGST:
		kp := events.ExtractKp(e)
		return fmt.Sprintf("   ⚡ Kp: %d (%s)\n", kp, events.StormLevel(kp))
	case models.CategoryCME:
		speed := events.ExtractCMESpeed(e)
		return fmt.Sprintf("   💨 %s km/s (%s)\n", speed, events.CMESpeedClass(speed))
	case models.CategoryFLR:
		class := events.ExtractFlareClass(e)
		label, _, _ := strings.Cut(events.FlareIntensity(class), " - ")
		return fmt.Sprintf("   🔥 Classe %s (%s)\n", class, label)
	case models.CategorySEP:
		return fmt.Sprintf("   ⚡ %s MeV\n", events.ExtractSEPEnergy(e))
	case models.CategoryHSS:
		speed := events.ExtractHSSSpeed(e)
		return fmt.Sprintf("   🌊 %s km/s (%s)\n", speed, events.HSSSpeedClass(speed))
	}
	return ""
}
