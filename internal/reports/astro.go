package reports

import (
	"fmt"
	"strings"
	"time"

	"solarwatch/internal/models"
)

var weekdaysBR = [...]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"}

var monthsBR = [...]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}

// LongDateBR formats t as "sábado, 11 de maio de 2024".
func LongDateBR(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", weekdaysBR[t.Weekday()], t.Day(), monthsBR[t.Month()-1], t.Year())
}

// AstronomyAlert renders the hobbyist observing report.
func AstronomyAlert(ind models.AstronomyIndicators, level models.RiskLevel, now time.Time) string {
	var b strings.Builder
	b.WriteString("🔭 ALERTA ASTRONÔMICO AUTOMÁTICO\n\n")
	fmt.Fprintf(&b, "📅 %s\n", LongDateBR(now))
	fmt.Fprintf(&b, "⏰ Atualizado: %s\n", now.Format(stampLayoutBR))
	fmt.Fprintf(&b, "🌙 %s\n\n", ind.MoonPhase)

	b.WriteString("☀️ ATIVIDADE SOLAR:\n")
	fmt.Fprintf(&b, "└── 📊 Eventos detectados: %d\n", ind.RecentEvents)
	fmt.Fprintf(&b, "└── ⚡ Nível Kp máximo: %d\n", ind.KpMax)
	fmt.Fprintf(&b, "└── 🔥 Maior flare: Classe %s\n", ind.FlareLetter)
	fmt.Fprintf(&b, "└── 🌪️ CMEs perigosas: %d\n\n", ind.DirectedCMEs)

	b.WriteString("🌈 CHANCE DE AURORA:\n")
	fmt.Fprintf(&b, "└── 🇧🇷 Brasil: %d%%\n", ind.Aurora.Brasil)
	fmt.Fprintf(&b, "└── 🇦🇷 Argentina: %d%%\n", ind.Aurora.Argentina)
	fmt.Fprintf(&b, "└── 🇺🇾 Uruguai: %d%%\n\n", ind.Aurora.Uruguai)

	if ind.EquipmentRisk != "BAIXO" {
		b.WriteString("⚠️ CUIDADO COM EQUIPAMENTOS!\n")
		fmt.Fprintf(&b, "└── 🎥 Risco para sensores: %s\n", ind.EquipmentRisk)
		if ind.EquipmentRisk == "ALTO" {
			b.WriteString("└── 🚨 Evite exposições longas!\n")
			b.WriteString("└── 📱 Desligue equipamentos sensíveis\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("📊 CONDIÇÕES DE OBSERVAÇÃO:\n")
	if ind.KpMax <= 4 {
		b.WriteString("└── ✅ Excelente para deep sky\n")
		b.WriteString("└── 📷 Ideal para astrofotografia\n")
	} else {
		b.WriteString("└── ⚠️ Possível interferência magnética\n")
		b.WriteString("└── 🔍 Foque em observação de auroras\n")
	}

	b.WriteString("\n🎯 DICA DE HOJE:\n")
	b.WriteString(ind.ObservationTip)

	marker := "🟡"
	if level == models.RiskCritical {
		marker = "🔥"
	}
	b.WriteString("\n📈 PREVISÃO 24H:\n")
	fmt.Fprintf(&b, "└── %s Atividade %s\n", marker, level)
	b.WriteString("└── 🕐 Melhor janela: 20h-02h\n")
	b.WriteString("└── 📍 Direção: Norte/Nordeste\n\n")

	b.WriteString("📡 Fonte: NASA DONKI + IA Groq\n")
	b.WriteString("🤖 Sistema automático 24/7")
	return b.String()
}
