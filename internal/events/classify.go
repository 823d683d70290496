package events

import (
	"strings"

	"solarwatch/internal/models"
)

// StormScale returns the bare G-scale for a Kp index: G0 to G5.
func StormScale(kp int) string {
	switch {
	case kp >= 9:
		return "G5"
	case kp >= 8:
		return "G4"
	case kp >= 7:
		return "G3"
	case kp >= 6:
		return "G2"
	case kp >= 5:
		return "G1"
	default:
		return "G0"
	}
}

var stormLabels = map[string]string{
	"G5": "EXTREMA",
	"G4": "SEVERA",
	"G3": "FORTE",
	"G2": "MODERADA",
	"G1": "FRACA",
	"G0": "CALMA",
}

// StormLevel returns the labelled G-scale, e.g. "G3 - FORTE".
func StormLevel(kp int) string {
	scale := StormScale(kp)
	return scale + " - " + stormLabels[scale]
}

// CMESpeedClass buckets a CME speed. Unparseable speeds are LENTA.
func CMESpeedClass(speed string) string {
	s, ok := parseLeadingInt(speed)
	switch {
	case !ok:
		return "LENTA"
	case s > 2000:
		return "EXTREMA"
	case s > 1000:
		return "RÁPIDA"
	case s > 500:
		return "MODERADA"
	default:
		return "LENTA"
	}
}

// HSSSpeedClass buckets a high speed stream on its own scale.
func HSSSpeedClass(speed string) string {
	s, ok := parseLeadingInt(speed)
	switch {
	case !ok:
		return "NORMAL"
	case s > 700:
		return "EXTREMO"
	case s > 550:
		return "ALTO"
	case s > 450:
		return "MODERADO"
	default:
		return "NORMAL"
	}
}

// FlareIntensity labels a flare by its class letter.
func FlareIntensity(class string) string {
	switch FlareLetter(class) {
	case "X":
		return "EXTREMA - Grandes impactos"
	case "M":
		return "FORTE - Apagões de rádio"
	case "C":
		return "MODERADA - Efeitos menores"
	case "B":
		return "FRACA - Sem efeitos"
	case "A":
		return "MÍNIMA - Background"
	default:
		return "Não classificada"
	}
}

var auroraChances = map[int]int{9: 90, 8: 75, 7: 50, 6: 25, 5: 10}

// AuroraChance is defined only for kp 5 to 9; any other value is 0.
func AuroraChance(kp int) int {
	return auroraChances[kp]
}

// OverallActivity labels the size of an event batch.
func OverallActivity(count int) string {
	switch {
	case count > 50:
		return "🔴 MUITO ALTA - Múltiplos eventos simultâneos"
	case count > 20:
		return "🟡 ALTA - Atividade intensa"
	case count > 10:
		return "🟠 MODERADA - Atividade normal do máximo solar"
	case count > 0:
		return "🟢 BAIXA - Atividade típica"
	default:
		return "⚪ MÍNIMA - Período calmo"
	}
}

// AffectedFrequencies names the radio bands a flare class disturbs.
func AffectedFrequencies(class string) string {
	switch FlareLetter(class) {
	case "X":
		return "HF (3-30 MHz) - Apagão severo"
	case "M":
		return "HF (3-30 MHz) - Apagão moderado"
	case "C":
		return "HF alta - Interferência menor"
	default:
		return "Sem impacto significativo"
	}
}

// RadioImpact is the short radio blackout label of a flare class.
func RadioImpact(class string) string {
	switch FlareLetter(class) {
	case "X":
		return "Apagão HF severo"
	case "M":
		return "Apagão HF moderado"
	case "C":
		return "Interferência menor"
	default:
		return "Sem impacto"
	}
}

// MostIntenseFlare picks the strongest X flare, else the first M flare, else the first class.
func MostIntenseFlare(classes []string) string {
	best := ""
	var bestMag float64
	for _, c := range classes {
		if !strings.HasPrefix(c, "X") {
			continue
		}
		mag, _ := parseLeadingFloat(c[1:])
		if best == "" || mag > bestMag {
			best, bestMag = c, mag
		}
	}
	if best != "" {
		return best
	}
	for _, c := range classes {
		if strings.HasPrefix(c, "M") {
			return c
		}
	}
	if len(classes) > 0 && classes[0] != "" {
		return classes[0]
	}
	return "N/A"
}

// AssessEarthRisk rates a CME by direction and speed.
func AssessEarthRisk(directed bool, speed string) string {
	if !directed {
		return "MÍNIMO - Não direcionada"
	}
	s, ok := parseLeadingInt(speed)
	switch {
	case ok && s > 1500:
		return "ALTO - G3/G4 provável"
	case ok && s > 1000:
		return "MODERADO - G1/G2 possível"
	default:
		return "BAIXO - Efeitos menores"
	}
}

// SEPRisk rates a particle event by energy (MeV) and intensity (pfu).
func SEPRisk(energy, intensity string) string {
	e, eok := parseLeadingInt(energy)
	i, iok := parseLeadingFloat(intensity)
	if !eok || !iok {
		return "BAIXO - Condições normais"
	}
	switch {
	case e > 100 && i > 1000:
		return "EXTREMO - Evite exposições"
	case e > 50 && i > 100:
		return "ALTO - Cuidado com sensores"
	case e > 10 && i > 10:
		return "MODERADO - Monitor de perto"
	default:
		return "BAIXO - Condições normais"
	}
}

// SatelliteImpact describes the effect of particle energy on spacecraft.
func SatelliteImpact(energy string) string {
	e, ok := parseLeadingInt(energy)
	switch {
	case ok && e > 500:
		return "Degradação severa de painéis solares"
	case ok && e > 100:
		return "Possíveis falhas em componentes"
	case ok && e > 50:
		return "Ruído aumentado em sensores"
	default:
		return "Impacto mínimo"
	}
}

// HSSAuroraForecast rates aurora odds from a stream speed.
func HSSAuroraForecast(speed string) string {
	s, ok := parseLeadingInt(speed)
	switch {
	case ok && s > 650:
		return "ALTA - G2/G3 possível"
	case ok && s > 500:
		return "MODERADA - G1 provável"
	default:
		return "BAIXA - Apenas alta latitude"
	}
}

// HSSDuration, CoronalHoleSource and RecurrencePattern are fixed climatology labels.
func HSSDuration() string { return "3-5 dias (típico)" }

func CoronalHoleSource() string { return "Buraco coronal polar/equatorial" }

func RecurrencePattern() string { return "Próximo evento: ~27 dias" }

var eventIcons = map[models.Category]string{
	models.CategoryGST: "⚡",
	models.CategoryCME: "🌪️",
	models.CategoryFLR: "🔥",
	models.CategorySEP: "⚡",
	models.CategoryHSS: "🌊",
}

// EventIcon returns the list icon of a category.
func EventIcon(category models.Category) string {
	if icon, ok := eventIcons[category]; ok {
		return icon
	}
	return "📡"
}
