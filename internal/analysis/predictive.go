package analysis

import (
	"math"
	"sort"
	"time"

	"solarwatch/internal/models"
)

// AnalyzeTrends weights the category mix into an activity score.
func AnalyzeTrends(evts []models.SolarEvent) models.TrendAnalysis {
	if len(evts) == 0 {
		return models.TrendAnalysis{
			Trend:      "estável",
			Prediction: "Baixa probabilidade de eventos significativos",
			Confidence: 0.5,
		}
	}

	counts := models.CountByCategory(evts)
	weighted := float64(counts[models.CategoryGST])*3 +
		float64(counts[models.CategoryCME])*2 +
		float64(counts[models.CategoryFLR])*1.5
	score := weighted / float64(len(evts))

	trend := models.TrendAnalysis{
		ActivityScore:     math.Round(score*100) / 100,
		EventDistribution: counts,
	}
	switch {
	case score > 2.5:
		trend.Trend = "crescente"
		trend.Prediction = "Alta probabilidade de eventos solares intensos nas próximas 24-48h"
		trend.Confidence = 0.8
	case score > 1.5:
		trend.Trend = "moderada"
		trend.Prediction = "Atividade solar moderada esperada"
		trend.Confidence = 0.7
	default:
		trend.Trend = "decrescente"
		trend.Prediction = "Tendência de redução da atividade solar"
		trend.Confidence = 0.6
	}
	return trend
}

// PredictSectorImpacts accumulates per-sector risk, capped at 100.
func PredictSectorImpacts(evts []models.SolarEvent) map[models.Sector]models.SectorImpact {
	risk := make(map[models.Sector]int, len(models.ImpactSectors))
	details := make(map[models.Sector][]string, len(models.ImpactSectors))

	add := func(s models.Sector, points int, detail string) {
		risk[s] += points
		if detail != "" {
			details[s] = append(details[s], detail)
		}
	}

	for _, e := range evts {
		switch e.Category {
		case models.CategoryGST:
			if e.Severity == models.SeverityHigh {
				add(models.SectorTelecommunications, 40, "Interferência severa em HF/VHF")
				add(models.SectorPowerGrid, 35, "Possíveis flutuações de tensão")
				add(models.SectorGPS, 45, "Degradação significativa de precisão")
			} else {
				add(models.SectorTelecommunications, 20, "")
				add(models.SectorPowerGrid, 15, "")
				add(models.SectorGPS, 25, "")
			}
		case models.CategoryCME:
			add(models.SectorSatellites, 30, "Possível necessidade de modo seguro")
			add(models.SectorAviation, 25, "Considerar rotas alternativas polares")
		case models.CategoryFLR:
			add(models.SectorTelecommunications, 25, "Blackout de rádio HF possível")
			add(models.SectorGPS, 20, "")
		}
	}

	impacts := make(map[models.Sector]models.SectorImpact, len(models.ImpactSectors))
	for _, s := range models.ImpactSectors {
		r := risk[s]
		if r > 100 {
			r = 100
		}
		d := details[s]
		if d == nil {
			d = []string{}
		}
		impacts[s] = models.SectorImpact{Risk: r, Level: sectorLevel(r), Details: d}
	}
	return impacts
}

func sectorLevel(risk int) models.RiskLevel {
	switch {
	case risk >= 70:
		return models.RiskHigh
	case risk >= 40:
		return models.RiskModerate
	case risk >= 20:
		return models.RiskLow
	default:
		return models.RiskVeryLow
	}
}

// AnalyzeTemporalPatterns classifies the mean spacing between events.
func AnalyzeTemporalPatterns(evts []models.SolarEvent) models.TemporalPattern {
	if len(evts) == 0 {
		return models.TemporalPattern{Pattern: "insuficiente", Description: "Dados insuficientes para análise"}
	}
	if len(evts) == 1 {
		return models.TemporalPattern{Pattern: "evento único", Description: "Apenas um evento detectado", TotalEvents: 1}
	}

	times := make([]time.Time, len(evts))
	for i, e := range evts {
		times[i] = e.OccurredAt
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	var total float64
	for i := 1; i < len(times); i++ {
		total += times[i].Sub(times[i-1]).Hours()
	}
	avg := total / float64(len(times)-1)

	p := models.TemporalPattern{
		AverageIntervalHours: avg,
		TimeSpanHours:        times[len(times)-1].Sub(times[0]).Hours(),
		TotalEvents:          len(evts),
	}
	switch {
	case avg < 6:
		p.Pattern = "rajada"
		p.Description = "Eventos em rajada - múltiplos eventos em curto período"
	case avg < 24:
		p.Pattern = "frequente"
		p.Description = "Atividade solar frequente nas últimas horas"
	default:
		p.Pattern = "esporádico"
		p.Description = "Eventos esporádicos com intervalos normais"
	}
	return p
}
