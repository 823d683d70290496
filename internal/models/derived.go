package models

import "time"

// GSTAttributes are derived from a geomagnetic storm record.
type GSTAttributes struct {
	KpIndex      int    `json:"kpIndex"`
	StormLevel   string `json:"stormLevel"`
	AuroraChance int    `json:"auroraChancePercent"`
	Duration     string `json:"duration"`
}

// CMEAttributes are derived from a coronal mass ejection record.
type CMEAttributes struct {
	Speed            string    `json:"speedKmS"`
	SpeedClass       string    `json:"speedClass"`
	Direction        string    `json:"direction"`
	EarthDirected    bool      `json:"earthDirected"`
	EstimatedArrival time.Time `json:"estimatedArrival"`
	PredictedKp      int       `json:"predictedKp"`
	EarthRisk        string    `json:"earthRisk"`
}

// FLRAttributes are derived from a solar flare record.
type FLRAttributes struct {
	Class               string `json:"flareClass"`
	Intensity           string `json:"intensityLabel"`
	PeakTime            string `json:"peakTime"`
	Duration            string `json:"duration"`
	SourceRegion        string `json:"sourceRegion"`
	RadioImpact         string `json:"radioImpact"`
	AffectedFrequencies string `json:"affectedFrequencies"`
}

// SEPAttributes are derived from a solar energetic particle record.
type SEPAttributes struct {
	Energy          string `json:"energyMeV"`
	Intensity       string `json:"intensity"`
	Risk            string `json:"riskLabel"`
	SatelliteImpact string `json:"satelliteImpactLabel"`
	SourceFlare     string `json:"sourceFlare"`
}

// HSSAttributes are derived from a high speed stream record.
type HSSAttributes struct {
	Speed          string `json:"speedKmS"`
	SpeedClass     string `json:"speedClass"`
	Duration       string `json:"durationLabel"`
	AuroraForecast string `json:"auroraForecastLabel"`
	Source         string `json:"source"`
	Recurrence     string `json:"recurrence"`
}

// DerivedAttributes holds exactly one non-nil member, matching the event category.
type DerivedAttributes struct {
	GST *GSTAttributes `json:"gst,omitempty"`
	CME *CMEAttributes `json:"cme,omitempty"`
	FLR *FLRAttributes `json:"flr,omitempty"`
	SEP *SEPAttributes `json:"sep,omitempty"`
	HSS *HSSAttributes `json:"hss,omitempty"`
}

// EventView pairs an event with its derived attributes for JSON output.
type EventView struct {
	SolarEvent
	Derived DerivedAttributes `json:"derived"`
}
