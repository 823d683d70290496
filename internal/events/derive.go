package events

import "solarwatch/internal/models"

// Derive computes the category-specific attributes of an event.
// Nothing is cached; calling it twice gives the same result for the same clock.
func Derive(e models.SolarEvent) models.DerivedAttributes {
	switch e.Category {
	case models.CategoryGST:
		kp := ExtractKp(e)
		return models.DerivedAttributes{GST: &models.GSTAttributes{
			KpIndex:      kp,
			StormLevel:   StormLevel(kp),
			AuroraChance: AuroraChance(kp),
			Duration:     EventDuration(e),
		}}
	case models.CategoryCME:
		speed := ExtractCMESpeed(e)
		directed := IsEarthDirected(e)
		return models.DerivedAttributes{CME: &models.CMEAttributes{
			Speed:            speed,
			SpeedClass:       CMESpeedClass(speed),
			Direction:        ExtractCMEDirection(e),
			EarthDirected:    directed,
			EstimatedArrival: EstimateArrival(e, speed),
			PredictedKp:      PredictKp(e),
			EarthRisk:        AssessEarthRisk(directed, speed),
		}}
	case models.CategoryFLR:
		class := ExtractFlareClass(e)
		return models.DerivedAttributes{FLR: &models.FLRAttributes{
			Class:               class,
			Intensity:           FlareIntensity(class),
			PeakTime:            PeakTime(e),
			Duration:            FlareDuration(e),
			SourceRegion:        SourceRegion(e),
			RadioImpact:         RadioImpact(class),
			AffectedFrequencies: AffectedFrequencies(class),
		}}
	case models.CategorySEP:
		energy := ExtractSEPEnergy(e)
		intensity := ExtractSEPIntensity(e)
		return models.DerivedAttributes{SEP: &models.SEPAttributes{
			Energy:          energy,
			Intensity:       intensity,
			Risk:            SEPRisk(energy, intensity),
			SatelliteImpact: SatelliteImpact(energy),
			SourceFlare:     SourceFlare(e),
		}}
	case models.CategoryHSS:
		speed := ExtractHSSSpeed(e)
		return models.DerivedAttributes{HSS: &models.HSSAttributes{
			Speed:          speed,
			SpeedClass:     HSSSpeedClass(speed),
			Duration:       HSSDuration(),
			AuroraForecast: HSSAuroraForecast(speed),
			Source:         CoronalHoleSource(),
			Recurrence:     RecurrencePattern(),
		}}
	}
	return models.DerivedAttributes{}
}

// Views pairs each event with its derived attributes.
func Views(evts []models.SolarEvent) []models.EventView {
	out := make([]models.EventView, 0, len(evts))
	for _, e := range evts {
		out = append(out, models.EventView{SolarEvent: e, Derived: Derive(e)})
	}
	return out
}

// FlareClasses extracts the class of every FLR event, in order.
func FlareClasses(evts []models.SolarEvent) []string {
	var classes []string
	for _, e := range models.FilterByCategory(evts, models.CategoryFLR) {
		classes = append(classes, ExtractFlareClass(e))
	}
	return classes
}
