package analysis

import (
	"fmt"
	"strings"

	"solarwatch/internal/models"
)

// OfflineAnalysis renders the rule-based narrative used when no LLM is reachable.
func OfflineAnalysis(evts []models.SolarEvent, level models.RiskLevel) string {
	counts := models.CountByCategory(evts)
	hasGST := counts[models.CategoryGST] > 0
	hasCME := counts[models.CategoryCME] > 0
	hasFLR := counts[models.CategoryFLR] > 0

	var b strings.Builder
	b.WriteString("📊 ANÁLISE AUTOMATIZADA DE EVENTOS SOLARES\n\n")
	b.WriteString("🔍 RESUMO EXECUTIVO:\n")
	fmt.Fprintf(&b, "Detectados %d eventos solares significativos. ", len(evts))

	if hasGST {
		severe := 0
		for _, e := range models.FilterByCategory(evts, models.CategoryGST) {
			if e.Severity == models.SeverityHigh {
				severe++
			}
		}
		if severe > 0 {
			fmt.Fprintf(&b, "Identificadas %d tempestade(s) geomagnética(s) severa(s), ", severe)
		}
		b.WriteString("que podem impactar sistemas de GPS e comunicações. ")
	}
	if hasCME {
		b.WriteString("Ejeções de massa coronal detectadas, indicando possíveis distúrbios na magnetosfera terrestre. ")
	}
	if hasFLR {
		b.WriteString("Explosões solares registradas, podendo causar blackouts de rádio. ")
	}

	fmt.Fprintf(&b, "\n\n⚡ NÍVEL DE RISCO: %s\n\n", strings.ToUpper(string(level)))

	b.WriteString("🎯 IMPACTOS ESPERADOS:\n")
	switch level {
	case models.RiskCritical, models.RiskHigh:
		b.WriteString("• Sistemas de comunicação: Alta probabilidade de interferências\n")
		b.WriteString("• GPS e navegação: Possível degradação significativa de precisão\n")
		b.WriteString("• Rede elétrica: Risco de flutuações em altas latitudes\n")
		b.WriteString("• Operações de satélites: Recomenda-se modo de proteção\n")
	case models.RiskModerate:
		b.WriteString("• Sistemas de comunicação: Interferências menores possíveis\n")
		b.WriteString("• GPS e navegação: Pequena degradação de precisão\n")
		b.WriteString("• Aviação: Monitorar rotas polares\n")
	default:
		b.WriteString("• Impactos mínimos esperados na infraestrutura\n")
		b.WriteString("• Possível visualização de auroras em altas latitudes\n")
	}

	b.WriteString("\n🔮 RECOMENDAÇÕES:\n")
	b.WriteString("• Continuar monitoramento ativo dos eventos\n")
	b.WriteString("• Verificar sistemas críticos de comunicação\n")
	if hasGST {
		b.WriteString("• Operadores de rede elétrica devem estar em alerta\n")
	}
	if hasCME {
		b.WriteString("• Considerar proteção de satélites sensíveis\n")
	}

	b.WriteString("\n⏰ DURAÇÃO ESTIMADA:\n")
	b.WriteString("Baseado no tipo e intensidade dos eventos, os efeitos podem persistir por 6-48 horas.\n")

	b.WriteString("\n📝 NOTA: Esta análise foi gerada automaticamente usando algoritmos baseados em regras. ")
	b.WriteString("Para análises mais detalhadas, configure uma chave de API de IA (Groq ou OpenAI).")

	return b.String()
}

// StormClassification is a finer GST rating from the highest Kp sample.
type StormClassification struct {
	Severity          string  `json:"severity"`
	Confidence        float64 `json:"confidence"`
	PredictedDuration string  `json:"predictedDuration"`
}

// ClassifyStorm rates a GST from its allKpIndex samples.
// ok is false for other categories or when no sample exists.
func ClassifyStorm(e models.SolarEvent) (StormClassification, bool) {
	if e.Category != models.CategoryGST {
		return StormClassification{}, false
	}
	kp, ok := e.Raw.MaxKpSample()
	if !ok {
		return StormClassification{}, false
	}

	c := StormClassification{PredictedDuration: "6-12 horas"}
	switch {
	case kp >= 8:
		c.Severity, c.Confidence = "crítica", 0.95
	case kp >= 6:
		c.Severity, c.Confidence = "alta", 0.9
	case kp >= 4:
		c.Severity, c.Confidence = "moderada", 0.85
	default:
		c.Severity, c.Confidence = "baixa", 0.8
	}
	if kp >= 6 {
		c.PredictedDuration = "12-48 horas"
	}
	return c, true
}
