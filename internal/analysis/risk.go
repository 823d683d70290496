// Package analysis scores batches of solar events: weighted risk, rule-based
// risk, trends, sector impacts, temporal patterns and the offline narrative.
package analysis

import (
	"fmt"
	"time"

	"solarwatch/internal/events"
	"solarwatch/internal/models"
)

const (
	maxPossibleScore = 100
	recentWindow     = 6 * time.Hour
)

// RiskScore is the weighted-sum model used by the executive and daily summaries.
// Severe GST 30, other GST 15, CME 20, FLR 10, plus 5 per recent event beyond two.
func RiskScore(evts []models.SolarEvent) models.RiskScore {
	if len(evts) == 0 {
		return models.RiskScore{Score: 0, MaxPossibleScore: maxPossibleScore, Level: models.RiskVeryLow, Factors: []string{}}
	}

	score := 0
	factors := []string{}

	gst := models.FilterByCategory(evts, models.CategoryGST)
	if len(gst) > 0 {
		severe := 0
		for _, e := range gst {
			if e.Severity == models.SeverityHigh {
				severe++
			}
		}
		s := severe*30 + (len(gst)-severe)*15
		score += s
		factors = append(factors, fmt.Sprintf("Tempestades Geomagnéticas (+%d)", s))
	}

	if n := len(models.FilterByCategory(evts, models.CategoryCME)); n > 0 {
		s := n * 20
		score += s
		factors = append(factors, fmt.Sprintf("Ejeções de Massa Coronal (+%d)", s))
	}

	if n := len(models.FilterByCategory(evts, models.CategoryFLR)); n > 0 {
		s := n * 10
		score += s
		factors = append(factors, fmt.Sprintf("Explosões Solares (+%d)", s))
	}

	now := events.Now()
	recent := 0
	for _, e := range evts {
		if now.Sub(e.OccurredAt) <= recentWindow {
			recent++
		}
	}
	if recent > 2 {
		s := (recent - 2) * 5
		score += s
		factors = append(factors, fmt.Sprintf("Alta Frequência Recente (+%d)", s))
	}

	return models.RiskScore{
		Score:            score,
		MaxPossibleScore: maxPossibleScore,
		Level:            levelFromScore(score),
		Factors:          factors,
	}
}

func levelFromScore(score int) models.RiskLevel {
	switch {
	case score >= 80:
		return models.RiskCritical
	case score >= 60:
		return models.RiskHigh
	case score >= 40:
		return models.RiskModerate
	case score >= 20:
		return models.RiskLow
	default:
		return models.RiskVeryLow
	}
}

// DetermineRiskLevel is the rule-based model behind the narrative analysis.
// It is independent of RiskScore and the two may disagree.
func DetermineRiskLevel(evts []models.SolarEvent) models.RiskLevel {
	var severeGST, moderateGST, hasCME bool
	for _, e := range evts {
		switch e.Category {
		case models.CategoryGST:
			switch e.Severity {
			case models.SeverityHigh:
				severeGST = true
			case models.SeverityModerate:
				moderateGST = true
			}
		case models.CategoryCME:
			hasCME = true
		}
	}
	multiple := len(evts) > 3

	switch {
	case severeGST:
		return models.RiskCritical
	case moderateGST && (multiple || hasCME):
		return models.RiskHigh
	case moderateGST || multiple:
		return models.RiskModerate
	default:
		return models.RiskLow
	}
}

// RiskDescription is the one-line guidance for a risk level.
func RiskDescription(level models.RiskLevel) string {
	switch level {
	case models.RiskVeryLow:
		return "🟢 Condições normais do clima espacial. Operações podem continuar sem restrições."
	case models.RiskLow:
		return "🟡 Atividade solar leve. Monitoramento de rotina recomendado."
	case models.RiskModerate:
		return "🟠 Atividade solar moderada. Verificar sistemas sensíveis."
	case models.RiskHigh:
		return "🔴 Atividade solar elevada. Implementar protocolos de precaução."
	case models.RiskCritical:
		return "🚨 Atividade solar severa. Ativar protocolos de emergência."
	default:
		return "⚪ Nível de risco não determinado."
	}
}
