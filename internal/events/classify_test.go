package events

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"solarwatch/internal/models"
)

func TestStormLevelIsMonotonic(t *testing.T) {
	prev := -1
	for kp := 0; kp <= 9; kp++ {
		scale := StormScale(kp)
		level, err := strconv.Atoi(scale[1:])
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, level, prev, "kp %d", kp)
		prev = level
	}
	assert.Equal(t, "G5", StormScale(9))
	assert.Equal(t, "G0", StormScale(0))
	assert.Equal(t, "G5 - EXTREMA", StormLevel(9))
	assert.Equal(t, "G0 - CALMA", StormLevel(-3))
}

func TestStormLevelThresholds(t *testing.T) {
	tests := map[int]string{
		4:  "G0 - CALMA",
		5:  "G1 - FRACA",
		6:  "G2 - MODERADA",
		7:  "G3 - FORTE",
		8:  "G4 - SEVERA",
		12: "G5 - EXTREMA",
	}
	for kp, want := range tests {
		assert.Equal(t, want, StormLevel(kp), "kp %d", kp)
	}
}

func TestSpeedClassesAreCategorySpecific(t *testing.T) {
	tests := []struct {
		speed string
		cme   string
		hss   string
	}{
		{"300", "LENTA", "NORMAL"},
		{"460", "LENTA", "MODERADO"},
		{"500", "LENTA", "MODERADO"},
		{"560", "MODERADA", "ALTO"},
		{"750", "MODERADA", "EXTREMO"},
		{"1001", "RÁPIDA", "EXTREMO"},
		{"2500", "EXTREMA", "EXTREMO"},
		{"400-500", "LENTA", "NORMAL"},
		{SpeedNotInformed, "LENTA", "NORMAL"},
	}
	for _, tt := range tests {
		t.Run(tt.speed, func(t *testing.T) {
			assert.Equal(t, tt.cme, CMESpeedClass(tt.speed))
			assert.Equal(t, tt.hss, HSSSpeedClass(tt.speed))
		})
	}
}

func TestFlareLabels(t *testing.T) {
	tests := []struct {
		class     string
		intensity string
		radio     string
		freq      string
	}{
		{"X2.1", "EXTREMA - Grandes impactos", "Apagão HF severo", "HF (3-30 MHz) - Apagão severo"},
		{"M1.0", "FORTE - Apagões de rádio", "Apagão HF moderado", "HF (3-30 MHz) - Apagão moderado"},
		{"C3", "MODERADA - Efeitos menores", "Interferência menor", "HF alta - Interferência menor"},
		{"B9", "FRACA - Sem efeitos", "Sem impacto", "Sem impacto significativo"},
		{"A1", "MÍNIMA - Background", "Sem impacto", "Sem impacto significativo"},
		{FlareNotClassified, "Não classificada", "Sem impacto", "Sem impacto significativo"},
		{"", "Não classificada", "Sem impacto", "Sem impacto significativo"},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			assert.Equal(t, tt.intensity, FlareIntensity(tt.class))
			assert.Equal(t, tt.radio, RadioImpact(tt.class))
			assert.Equal(t, tt.freq, AffectedFrequencies(tt.class))
		})
	}
}

func TestAuroraChanceIsSparse(t *testing.T) {
	want := map[int]int{5: 10, 6: 25, 7: 50, 8: 75, 9: 90}
	for kp := -1; kp <= 10; kp++ {
		assert.Equal(t, want[kp], AuroraChance(kp), "kp %d", kp)
	}
}

func TestOverallActivity(t *testing.T) {
	assert.Equal(t, "⚪ MÍNIMA - Período calmo", OverallActivity(0))
	assert.Equal(t, "🟢 BAIXA - Atividade típica", OverallActivity(1))
	assert.Equal(t, "🟢 BAIXA - Atividade típica", OverallActivity(10))
	assert.Equal(t, "🟠 MODERADA - Atividade normal do máximo solar", OverallActivity(11))
	assert.Equal(t, "🟡 ALTA - Atividade intensa", OverallActivity(21))
	assert.Equal(t, "🔴 MUITO ALTA - Múltiplos eventos simultâneos", OverallActivity(51))
}

func TestMostIntenseFlare(t *testing.T) {
	assert.Equal(t, "X8.7", MostIntenseFlare([]string{"M5.0", "X1.1", "X8.7", "X2.0"}))
	assert.Equal(t, "X1", MostIntenseFlare([]string{"X1", "X1.0"}), "ties keep the first")
	assert.Equal(t, "M2.0", MostIntenseFlare([]string{"C9.9", "M2.0", "M7.0"}))
	assert.Equal(t, "C1.0", MostIntenseFlare([]string{"C1.0", "B2.0"}))
	assert.Equal(t, "N/A", MostIntenseFlare(nil))
}

func TestAssessEarthRisk(t *testing.T) {
	assert.Equal(t, "ALTO - G3/G4 provável", AssessEarthRisk(true, "1600"))
	assert.Equal(t, "MODERADO - G1/G2 possível", AssessEarthRisk(true, "1200"))
	assert.Equal(t, "BAIXO - Efeitos menores", AssessEarthRisk(true, SpeedNotInformed))
	assert.Equal(t, "MÍNIMO - Não direcionada", AssessEarthRisk(false, "3000"))
}

func TestSEPLabels(t *testing.T) {
	tests := []struct {
		energy, intensity string
		risk, satellite   string
	}{
		{"600", "2000", "EXTREMO - Evite exposições", "Degradação severa de painéis solares"},
		{"60", "150.5", "ALTO - Cuidado com sensores", "Ruído aumentado em sensores"},
		{"11", "11", "MODERADO - Monitor de perto", "Impacto mínimo"},
		{"200", "5", "BAIXO - Condições normais", "Possíveis falhas em componentes"},
		{NotInformed, "5000", "BAIXO - Condições normais", "Impacto mínimo"},
		{"500", NotInformed, "BAIXO - Condições normais", "Possíveis falhas em componentes"},
	}
	for _, tt := range tests {
		t.Run(tt.energy+"/"+tt.intensity, func(t *testing.T) {
			assert.Equal(t, tt.risk, SEPRisk(tt.energy, tt.intensity))
			assert.Equal(t, tt.satellite, SatelliteImpact(tt.energy))
		})
	}
}

func TestHSSLabels(t *testing.T) {
	assert.Equal(t, "ALTA - G2/G3 possível", HSSAuroraForecast("700"))
	assert.Equal(t, "MODERADA - G1 provável", HSSAuroraForecast("600"))
	assert.Equal(t, "BAIXA - Apenas alta latitude", HSSAuroraForecast(HSSDefaultSpeed))
	assert.Equal(t, "3-5 dias (típico)", HSSDuration())
	assert.Equal(t, "Buraco coronal polar/equatorial", CoronalHoleSource())
	assert.Equal(t, "Próximo evento: ~27 dias", RecurrencePattern())
}

func TestEventIcon(t *testing.T) {
	assert.Equal(t, "🔥", EventIcon(models.CategoryFLR))
	assert.Equal(t, "🌊", EventIcon(models.CategoryHSS))
	assert.Equal(t, "📡", EventIcon("XYZ"))
}
