package reports

import (
	"fmt"
	"strings"

	"solarwatch/internal/models"
)

const (
	noDetailsAlert = "⚠️ Evento solar detectado, mas sem detalhes disponíveis."
	ruler          = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	dateLayoutBR   = "02/01/2006"
	stampLayoutBR  = "02/01/2006 15:04:05"
)

// FormatAlert renders the WhatsApp alert for a single event.
func FormatAlert(e *models.SolarEvent) string {
	if e == nil {
		return noDetailsAlert
	}

	header, details := alertText(e)

	detected := "Desconhecida"
	if !e.OccurredAt.IsZero() {
		detected = e.OccurredAt.UTC().Format(stampLayoutBR)
	}
	description := e.Description
	if description == "" {
		description = "Sem descrição"
	}
	areas := "Desconhecido"
	if len(e.AffectedAreas) > 0 {
		areas = strings.Join(e.AffectedAreas, ", ")
	}
	link := e.Link
	if link == "" {
		link = "Não disponível"
	}

	return fmt.Sprintf("%s\n\n%s\n\n🌐 Data e hora da detecção: %s\n- Evento: %s\n\n🌍 Locais afetados: %s\n🔗 Mais informações: %s",
		header, details, detected, description, areas, link)
}

func alertText(e *models.SolarEvent) (string, string) {
	switch e.Category {
	case models.CategoryGST:
		strength := "moderadas (Kp <= 7)"
		if e.Severity == models.SeverityHigh {
			strength = "severas (Kp > 7)"
		}
		return "⚠️ ALERTA DE TEMPESTADE GEOMAGNÉTICA ⚠️",
			"Foram detectadas tempestades geomagnéticas " + strength + ".\n" +
				"Impactos possíveis em sistemas de comunicação e GPS. Verifique seu dispositivo para possíveis problemas."
	case models.CategoryCME:
		return "⚡ ALERTA DE EJEÇÃO DE MASSA CORONAL (CME) ⚡",
			"Uma ejeção de massa coronal foi detectada! Isso pode impactar a magnetosfera da Terra e causar auroras intensas."
	case models.CategoryFLR:
		return "🌞 ALERTA DE EXPLOSÃO SOLAR (FLARE) 🌞",
			"Uma explosão solar foi registrada! Possíveis interferências em rádio e GPS podem ocorrer."
	case models.CategoryHSS:
		return "💨 ALERTA DE VENTO SOLAR RÁPIDO (HSS) 💨",
			"Correntes de vento solar de alta velocidade foram detectadas! Podem impactar satélites e redes elétricas."
	case models.CategorySEP:
		return "☢️ ALERTA DE PARTÍCULAS ENERGÉTICAS SOLARES (SEP) ☢️",
			"Altos níveis de partículas solares foram detectados, podendo impactar astronautas e satélites."
	default:
		return "⚠️ ALERTA DE ATIVIDADE SOLAR ⚠️", "Um evento solar significativo foi detectado."
	}
}
