package analysis

import (
	"solarwatch/internal/events"
	"solarwatch/internal/models"
)

// AstronomyIndicators condenses a batch for hobbyist observers using the shared extractors.
func AstronomyIndicators(evts []models.SolarEvent) models.AstronomyIndicators {
	kpMax := 0
	for _, e := range models.FilterByCategory(evts, models.CategoryGST) {
		if kp := events.ExtractKp(e); kp > kpMax {
			kpMax = kp
		}
	}

	letter := "A"
	if flares := models.FilterByCategory(evts, models.CategoryFLR); len(flares) > 0 {
		class := events.ExtractFlareClass(flares[0])
		if class == events.FlareNotClassified {
			letter = "B"
		} else {
			letter = events.FlareLetter(class)
		}
	}

	directed := 0
	for _, e := range models.FilterByCategory(evts, models.CategoryCME) {
		if events.IsEarthDirected(e) {
			directed++
		}
	}

	now := events.Now()
	ind := models.AstronomyIndicators{
		KpMax:         kpMax,
		FlareLetter:   letter,
		DirectedCMEs:  directed,
		Aurora:        events.AuroraChanceByRegion(kpMax),
		EquipmentRisk: events.EquipmentRisk(kpMax, letter),
		MoonPhase:     events.MoonPhase(now),
		StormLevel:    events.StormLevel(kpMax),
		RecentEvents:  len(evts),
	}
	ind.ObservationTip = ObservationTip(ind, now.Day()%29)
	return ind
}

// ObservationTip picks the tip of the day; lunarDay is days since the approximate new moon.
func ObservationTip(ind models.AstronomyIndicators, lunarDay int) string {
	switch {
	case ind.Aurora.Brasil > 50:
		return "🌈 CONFIGURAÇÃO AURORA: ISO 3200, 15-20s, f/2.8. Olhe para o NORTE!"
	case ind.KpMax <= 3 && lunarDay <= 7:
		return "🌌 NOITE PERFEITA! Lua fraca + atividade calma = ideal para Via Láctea!"
	case ind.FlareLetter == "X":
		return "⚡ FLARE CLASSE X! Pode afetar equipamentos. Teste comunicações de backup."
	default:
		return "⭐ Condições normais. Bom momento para observação geral e fotografia lunar."
	}
}
