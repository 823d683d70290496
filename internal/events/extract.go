package events

import (
	"regexp"
	"strconv"
	"strings"

	"solarwatch/internal/models"
)

// Sentinels returned when a pattern is absent from the raw text.
const (
	SpeedNotInformed   = "Não informada"
	NotInformed        = "Não informado"
	HSSDefaultSpeed    = "400-500"
	FlareNotClassified = "Não classificado"
	DirectedToEarth    = "Direcionada à Terra"
	NotDirectedToEarth = "Não direcionada à Terra"

	defaultKp         = 4
	activeRegionField = "activeRegionNum"
)

var (
	speedPattern     = regexp.MustCompile(`(?i)(\d+)\s*km/s`)
	energyPattern    = regexp.MustCompile(`(?i)(\d+)\s*MeV`)
	intensityPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*p`)
	// The magnitude is optional; word boundaries keep letters inside words and ids out.
	flareClassPattern = regexp.MustCompile(`(?i)\b[ABCMX](?:\d+(?:\.\d+)?)?\b`)
)

// scanKp looks for "kp<N>" or "kp <N>" from 9 down, so the highest candidate wins.
func scanKp(text string) (int, bool) {
	lower := strings.ToLower(text)
	for kp := 9; kp >= 0; kp-- {
		n := strconv.Itoa(kp)
		if strings.Contains(lower, "kp"+n) || strings.Contains(lower, "kp "+n) {
			return kp, true
		}
	}
	return 0, false
}

// ExtractKp returns the Kp index mentioned in the record, or 4 when none is.
func ExtractKp(e models.SolarEvent) int {
	if kp, ok := scanKp(e.RawText); ok {
		return kp
	}
	return defaultKp
}

// ExtractCMESpeed returns the digits of the first "<n> km/s" mention.
func ExtractCMESpeed(e models.SolarEvent) string {
	if m := speedPattern.FindStringSubmatch(e.RawText); m != nil {
		return m[1]
	}
	return SpeedNotInformed
}

// IsEarthDirected reports whether the record mentions "earth" or "halo".
func IsEarthDirected(e models.SolarEvent) bool {
	lower := strings.ToLower(e.RawText)
	return strings.Contains(lower, "earth") || strings.Contains(lower, "halo")
}

// ExtractCMEDirection renders IsEarthDirected as a label.
func ExtractCMEDirection(e models.SolarEvent) string {
	if IsEarthDirected(e) {
		return DirectedToEarth
	}
	return NotDirectedToEarth
}

// ExtractFlareClass returns the first flare class such as "M3.2", uppercased.
func ExtractFlareClass(e models.SolarEvent) string {
	if m := flareClassPattern.FindString(e.RawText); m != "" {
		return strings.ToUpper(m)
	}
	return FlareNotClassified
}

// FlareLetter returns the class letter of a flare class string.
func FlareLetter(class string) string {
	if class == "" {
		return ""
	}
	return class[:1]
}

// ExtractSEPEnergy returns the digits of the first "<n> MeV" mention.
func ExtractSEPEnergy(e models.SolarEvent) string {
	if m := energyPattern.FindStringSubmatch(e.RawText); m != nil {
		return m[1]
	}
	return NotInformed
}

// ExtractSEPIntensity returns the number of the first "<n> p" or "<n.n> p" mention.
func ExtractSEPIntensity(e models.SolarEvent) string {
	if m := intensityPattern.FindStringSubmatch(e.RawText); m != nil {
		return m[1]
	}
	return NotInformed
}

// ExtractHSSSpeed is ExtractCMESpeed with the HSS fallback range.
func ExtractHSSSpeed(e models.SolarEvent) string {
	if m := speedPattern.FindStringSubmatch(e.RawText); m != nil {
		return m[1]
	}
	return HSSDefaultSpeed
}

// PeakTime formats the peakTime field as a clock time.
func PeakTime(e models.SolarEvent) string {
	if t, ok := rawTime(e, "peakTime"); ok {
		return t.Format("15:04:05")
	}
	return "Não disponível"
}

// EventDuration is the start to end span in hours, or "Em andamento" without an end.
func EventDuration(e models.SolarEvent) string {
	hours, ok := spanHours(e)
	if !ok {
		return "Em andamento"
	}
	return strconv.FormatFloat(hours, 'f', 1, 64) + "h"
}

// FlareDuration is EventDuration in whole minutes.
func FlareDuration(e models.SolarEvent) string {
	hours, ok := spanHours(e)
	if !ok {
		return "Em andamento"
	}
	return strconv.FormatFloat(hours*60, 'f', 0, 64) + " min"
}

func spanHours(e models.SolarEvent) (float64, bool) {
	start, ok := rawTime(e, "startTime", "beginTime")
	if !ok {
		return 0, false
	}
	end, ok := rawTime(e, "endTime")
	if !ok {
		return 0, false
	}
	d := end.Sub(start)
	if d < 0 {
		d = -d
	}
	return d.Hours(), true
}

// SourceRegion names the active region, e.g. "AR 13664".
func SourceRegion(e models.SolarEvent) string {
	if n, ok := e.Raw.String(activeRegionField); ok {
		return "AR " + n
	}
	return "Não identificada"
}

// SourceFlare names the flare that accelerated a particle event.
func SourceFlare(e models.SolarEvent) string {
	class := ExtractFlareClass(e)
	if class == FlareNotClassified {
		return "Fonte não identificada"
	}
	return "Flare " + class
}

// parseLeadingInt reads an optionally signed integer prefix, ignoring the rest.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseLeadingFloat reads a decimal prefix such as "12.5" from "12.5 pfu".
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
	}
	if end == start || s[start:end] == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
