package events

import (
	"time"

	"solarwatch/internal/models"
)

const (
	sunEarthDistanceKm  = 150000000
	defaultArrivalSpeed = 500
	defaultPredictSpeed = 400
)

// ArrivalHours is the constant-velocity Sun to Earth transit time for a speed in km/s.
// Unparseable or non-positive speeds use 500 km/s.
func ArrivalHours(speed string) int {
	s, ok := parseLeadingInt(speed)
	if !ok || s <= 0 {
		s = defaultArrivalSpeed
	}
	return int(sunEarthDistanceKm / (float64(s) * 3.6))
}

// EstimateArrival estimates when a CME reaches Earth, counted from now.
func EstimateArrival(e models.SolarEvent, speed string) time.Time {
	return EstimateArrivalFrom(clock.Now(), speed)
}

// EstimateArrivalFrom is EstimateArrival with an explicit reference time.
func EstimateArrivalFrom(ref time.Time, speed string) time.Time {
	return ref.Add(time.Duration(ArrivalHours(speed)) * time.Hour)
}

// PredictKp forecasts the Kp a CME will drive. Only Earth-directed CMEs can exceed 3.
func PredictKp(e models.SolarEvent) int {
	if !IsEarthDirected(e) {
		return 3
	}
	speed, ok := parseLeadingInt(ExtractCMESpeed(e))
	if !ok || speed == 0 {
		speed = defaultPredictSpeed
	}
	switch {
	case speed > 1500:
		return 8
	case speed > 1000:
		return 6
	case speed > 700:
		return 5
	default:
		return 3
	}
}

// AuroraChanceByRegion gives aurora visibility in Brazil, Argentina and Uruguay.
func AuroraChanceByRegion(kp int) models.RegionalAuroraChance {
	switch {
	case kp >= 9:
		return models.RegionalAuroraChance{Brasil: 85, Argentina: 95, Uruguai: 95}
	case kp >= 8:
		return models.RegionalAuroraChance{Brasil: 65, Argentina: 85, Uruguai: 90}
	case kp >= 7:
		return models.RegionalAuroraChance{Brasil: 35, Argentina: 70, Uruguai: 80}
	case kp >= 6:
		return models.RegionalAuroraChance{Brasil: 15, Argentina: 45, Uruguai: 60}
	case kp >= 5:
		return models.RegionalAuroraChance{Brasil: 5, Argentina: 25, Uruguai: 40}
	default:
		return models.RegionalAuroraChance{}
	}
}

var auroraLatitudes = map[int]int{0: 68, 1: 65, 2: 62, 3: 59, 4: 56, 5: 53, 6: 50, 7: 47, 8: 43, 9: 40}

// AuroraZoneLatitude is the equatorward edge of the auroral oval in degrees.
func AuroraZoneLatitude(kp int) int {
	if lat, ok := auroraLatitudes[kp]; ok {
		return lat
	}
	return 65
}

var brazilAuroraChances = map[int]int{7: 15, 8: 45, 9: 85}

// BrazilAuroraChance is the menu's coarse Brazil-only estimate.
func BrazilAuroraChance(kp int) int {
	return brazilAuroraChances[kp]
}

// CurrentKp is the highest Kp mentioned across GST events, 2 when there are none.
func CurrentKp(events []models.SolarEvent) int {
	gst := models.FilterByCategory(events, models.CategoryGST)
	if len(gst) == 0 {
		return 2
	}
	max := 0
	for _, e := range gst {
		if kp, ok := scanKp(e.RawText); ok && kp > max {
			max = kp
		}
	}
	if max == 0 {
		return 3
	}
	return max
}

// MoonPhase is a day-of-month approximation of the lunar phase.
func MoonPhase(t time.Time) string {
	day := t.Day()
	switch {
	case day <= 3 || day >= 29:
		return "🌑 Nova (0-10%)"
	case day <= 7:
		return "🌒 Crescente (25%)"
	case day <= 14:
		return "🌕 Cheia (90-100%)"
	case day <= 21:
		return "🌖 Minguante (75%)"
	default:
		return "🌘 Minguante final (25%)"
	}
}

// MoonInterference rates how much moonlight washes out faint auroras.
func MoonInterference(t time.Time) string {
	day := t.Day()
	switch {
	case day <= 7 || day >= 25:
		return "MÍNIMA - Ideal para auroras fracas"
	case day <= 14:
		return "MÁXIMA - Pode ofuscar auroras fracas"
	default:
		return "MODERADA - Condições balanceadas"
	}
}

// EquipmentRisk rates the risk to cameras and sensors.
func EquipmentRisk(kp int, flareLetter string) string {
	switch {
	case kp >= 8 || flareLetter == "X":
		return "ALTO"
	case kp >= 6 || flareLetter == "M":
		return "MODERADO"
	default:
		return "BAIXO"
	}
}

// Forecast24h is the one-line outlook for the next day.
func Forecast24h(events []models.SolarEvent) string {
	if len(models.FilterByCategory(events, models.CategoryCME)) > 0 {
		return "⚠️ CMEs detectadas - possível aumento de atividade"
	}
	return "📉 Atividade estável prevista"
}

// ActivityTrend compares the last 24 hours against the last 48.
func ActivityTrend(events []models.SolarEvent) string {
	now := clock.Now()
	var last24, last48 int
	for _, e := range events {
		age := now.Sub(e.OccurredAt)
		if age <= 24*time.Hour {
			last24++
		}
		if age <= 48*time.Hour {
			last48++
		}
	}
	switch {
	case float64(last24) > float64(last48)/2:
		return "CRESCENTE"
	case float64(last24) < float64(last48)/3:
		return "DECRESCENTE"
	default:
		return "ESTÁVEL"
	}
}
