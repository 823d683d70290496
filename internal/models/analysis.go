package models

import "time"

// RiskLevel is the five-step risk vocabulary shared by the scorers and reports.
type RiskLevel string

const (
	RiskVeryLow  RiskLevel = "muito baixo"
	RiskLow      RiskLevel = "baixo"
	RiskModerate RiskLevel = "moderado"
	RiskHigh     RiskLevel = "alto"
	RiskCritical RiskLevel = "crítico"
)

// RiskScore is the weighted-sum risk model result.
type RiskScore struct {
	Score            int       `json:"score"`
	MaxPossibleScore int       `json:"maxPossibleScore"`
	Level            RiskLevel `json:"level"`
	Factors          []string  `json:"factors"`
}

// TrendAnalysis describes the short-term activity trend.
type TrendAnalysis struct {
	Trend             string           `json:"trend"`
	Prediction        string           `json:"prediction"`
	Confidence        float64          `json:"confidence"`
	ActivityScore     float64          `json:"activityScore"`
	EventDistribution map[Category]int `json:"eventDistribution,omitempty"`
}

// TemporalPattern summarizes how events are spaced in time.
type TemporalPattern struct {
	Pattern              string  `json:"pattern"`
	Description          string  `json:"description"`
	AverageIntervalHours float64 `json:"averageIntervalHours"`
	TimeSpanHours        float64 `json:"timeSpanHours"`
	TotalEvents          int     `json:"totalEvents"`
}

// Sector is an infrastructure sector affected by space weather.
type Sector string

const (
	SectorTelecommunications Sector = "telecommunications"
	SectorPowerGrid          Sector = "powerGrid"
	SectorAviation           Sector = "aviation"
	SectorSatellites         Sector = "satellites"
	SectorGPS                Sector = "gps"
	SectorGeneral            Sector = "general"
)

// ImpactSectors lists the scored sectors in report order.
var ImpactSectors = []Sector{
	SectorTelecommunications,
	SectorPowerGrid,
	SectorAviation,
	SectorSatellites,
	SectorGPS,
}

// SectorImpact is the capped 0-100 risk of one sector.
type SectorImpact struct {
	Risk    int       `json:"risk"`
	Level   RiskLevel `json:"level"`
	Details []string  `json:"details"`
}

// Recommendations groups operational advice by sector.
type Recommendations map[Sector][]string

// AnalysisMode records which path produced an Analysis.
type AnalysisMode string

const (
	ModeGroq            AnalysisMode = "groq"
	ModeOpenAI          AnalysisMode = "openai"
	ModeOffline         AnalysisMode = "offline"
	ModeOfflineFallback AnalysisMode = "offline_fallback"
)

// Analysis is the narrative analysis of a batch of events.
type Analysis struct {
	Summary         string          `json:"summary"`
	RiskLevel       RiskLevel       `json:"riskLevel"`
	Recommendations Recommendations `json:"recommendations"`
	Mode            AnalysisMode    `json:"mode"`
	Generated       bool            `json:"generated"`
	GeneratedAt     time.Time       `json:"generatedAt"`
	EventCount      int             `json:"eventCount"`
}

// RegionalAuroraChance is the aurora visibility percentage per southern region.
type RegionalAuroraChance struct {
	Brasil    int `json:"brasil"`
	Argentina int `json:"argentina"`
	Uruguai   int `json:"uruguai"`
}

// AstronomyIndicators condenses a batch of events for hobbyist observers.
type AstronomyIndicators struct {
	KpMax          int                  `json:"kpMax"`
	FlareLetter    string               `json:"flareLetter"`
	DirectedCMEs   int                  `json:"directedCMEs"`
	Aurora         RegionalAuroraChance `json:"aurora"`
	EquipmentRisk  string               `json:"equipmentRisk"`
	MoonPhase      string               `json:"moonPhase"`
	StormLevel     string               `json:"stormLevel"`
	RecentEvents   int                  `json:"recentEvents"`
	ObservationTip string               `json:"observationTip"`
}
