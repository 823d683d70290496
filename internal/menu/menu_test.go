package menu

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"solarwatch/internal/events"
	"solarwatch/internal/fetchers"
	"solarwatch/internal/models"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 11, 12, 0, 0, 0, time.UTC)

func freezeClock(t *testing.T) {
	t.Helper()
	events.SetClock(clockwork.NewFakeClockAt(fixedNow))
	t.Cleanup(func() { events.SetClock(nil) })
}

type stubSource struct {
	evts  []models.SolarEvent
	errs  map[models.Category]error
	calls int
}

func (s *stubSource) FetchEvents(_ context.Context, _, _ time.Time) fetchers.FetchResult {
	s.calls++
	errs := s.errs
	if errs == nil {
		errs = map[models.Category]error{}
	}
	return fetchers.FetchResult{Events: s.evts, Errors: errs}
}

type stubAnalyzer struct {
	an models.Analysis
}

func (s stubAnalyzer) Analyze(_ context.Context, evts []models.SolarEvent) models.Analysis {
	an := s.an
	an.EventCount = len(evts)
	return an
}

func normalize(t *testing.T, cat models.Category, raw string) models.SolarEvent {
	t.Helper()
	rec, err := models.ParseRawEventRecord([]byte(raw))
	require.NoError(t, err)
	return events.Normalize(rec, cat)
}

func newMenu(src fetchers.EventSource) *Menu {
	return New(Options{Source: src, Location: time.UTC})
}

func TestHandleStaticCommands(t *testing.T) {
	src := &stubSource{}
	m := newMenu(src)

	tests := []struct {
		input string
		want  string
	}{
		{"MENU", MainMenu},
		{" menu ", MainMenu},
		{"ajuda", Help},
		{"9", SeasonalInfo},
		{"10", ObservationGuide},
		{"11", ObservationGuide},
		{"12", AlertConfiguration},
		{"99", UnknownCommand},
		{"", UnknownCommand},
		{"0", UnknownCommand},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Handle(context.Background(), tt.input))
		})
	}
	assert.Zero(t, src.calls, "static answers must not hit the feed")
}

func TestHandleFetchesForDataOptions(t *testing.T) {
	freezeClock(t)
	src := &stubSource{evts: []models.SolarEvent{
		normalize(t, models.CategoryCME, `{"activityID":"c1","startTime":"2024-05-11T06:00Z","note":"halo 900 km/s"}`),
	}}
	m := newMenu(src)

	got := m.Handle(context.Background(), "1")
	assert.Equal(t, 1, src.calls)
	assert.Contains(t, got, "• Total de eventos: 1\n")
	assert.Contains(t, got, "• CME (Ejeções): 1\n")
	assert.Contains(t, got, "• GST (Tempestades): 0\n")
	assert.Contains(t, got, "⚠️ CMEs detectadas - possível aumento de atividade")
}

func TestHandleFetchFailure(t *testing.T) {
	errs := map[models.Category]error{}
	for _, cat := range models.Categories {
		errs[cat] = errors.New("status 503")
	}
	m := newMenu(&stubSource{errs: errs})
	assert.Equal(t, FetchFailed, m.Handle(context.Background(), "2"))

	assert.Equal(t, FetchFailed, New(Options{}).Handle(context.Background(), "2"))
}

func TestHandlePartialFetchStillAnswers(t *testing.T) {
	freezeClock(t)
	src := &stubSource{
		evts: []models.SolarEvent{normalize(t, models.CategoryGST, `{"gstID":"g1","startTime":"2024-05-10T12:00Z","note":"Kp 7"}`)},
		errs: map[models.Category]error{models.CategoryCME: errors.New("timeout")},
	}
	got := newMenu(src).Handle(context.Background(), "2")
	assert.Contains(t, got, "📊 *Índice Kp*: 7 (G3 - FORTE)")
}

func TestQuietCategories(t *testing.T) {
	m := newMenu(nil)
	assert.Equal(t, quietGST, m.GeomagneticStorms(nil))
	assert.Equal(t, quietCME, m.CoronalMassEjections(nil))
	assert.Equal(t, quietFLR, m.SolarFlares(nil))
	assert.Equal(t, quietSEP, m.ParticleEvents(nil))
	assert.Equal(t, quietHSS, m.HighSpeedStreams(nil))
	assert.Contains(t, m.ListAll(nil), "Nenhum evento solar detectado")
	assert.Contains(t, m.ListGST(nil), "Nenhuma tempestade geomagnética")
}

func TestGeomagneticStormsShowsFirstThree(t *testing.T) {
	freezeClock(t)
	var gst []models.SolarEvent
	for _, note := range []string{"Kp 8", "Kp 5", "Kp 6", "Kp 9"} {
		gst = append(gst, normalize(t, models.CategoryGST, `{"gstID":"g","startTime":"2024-05-10T15:30Z","note":"`+note+`"}`))
	}

	got := newMenu(nil).GeomagneticStorms(gst)
	assert.Contains(t, got, "🚨 *EVENTOS ATIVOS*: 4 detectados!")
	assert.Contains(t, got, "⚡ *EVENTO 3*:")
	assert.NotContains(t, got, "⚡ *EVENTO 4*:")
	assert.Contains(t, got, "📅 *Início*: 10/05/2024, 15:30:00")
	assert.Contains(t, got, "📊 *Índice Kp*: 8 (G4 - SEVERA)")
	assert.Contains(t, got, "🌍 *Chance Aurora Brasil*: 75%")
	assert.NotContains(t, got, "G5 - EXTREMA")
}

func TestCoronalMassEjections(t *testing.T) {
	freezeClock(t)
	cmes := []models.SolarEvent{
		normalize(t, models.CategoryCME, `{"activityID":"c1","startTime":"2024-05-10T07:00Z","note":"Halo CME 1200 km/s"}`),
		normalize(t, models.CategoryCME, `{"activityID":"c2","startTime":"2024-05-10T09:00Z","note":"narrow 450 km/s"}`),
	}

	got := newMenu(nil).CoronalMassEjections(cmes)
	assert.Contains(t, got, "⚡ *Velocidade*: 1200 km/s (RÁPIDA)")
	assert.Contains(t, got, "🧭 *Direção*: Direcionada à Terra")
	assert.Contains(t, got, "⚠️ *Risco para Terra*: MODERADO - G1/G2 possível")
	assert.Contains(t, got, "⚠️ *Risco para Terra*: MÍNIMO - Não direcionada")
	assert.Contains(t, got, "⚠️ 1 CME(s) direcionada(s) à Terra\n• Kp previsto até 6 (G2 - MODERADA)")

	quiet := newMenu(nil).CoronalMassEjections(cmes[1:])
	assert.Contains(t, quiet, "✅ Nenhuma CME direcionada à Terra")
}

func TestSolarFlaresAndList(t *testing.T) {
	freezeClock(t)
	flares := []models.SolarEvent{
		normalize(t, models.CategoryFLR, `{"flrID":"f1","beginTime":"2024-05-10T06:27Z","peakTime":"2024-05-10T06:54Z","endTime":"2024-05-10T07:06Z","classType":"X5.8","activeRegionNum":13664}`),
		normalize(t, models.CategoryFLR, `{"flrID":"f2","beginTime":"2024-05-10T10:00Z","classType":"M2.4"}`),
	}
	m := newMenu(nil)

	detail := m.SolarFlares(flares)
	assert.Contains(t, detail, "⚡ *Classe*: X5.8 (EXTREMA - Grandes impactos)")
	assert.Contains(t, detail, "🎯 *Região Ativa*: AR 13664")
	assert.Contains(t, detail, "⏱️ *Duração*: 39 min")
	assert.Contains(t, detail, "📡 *Frequência afetada*: HF (3-30 MHz) - Apagão moderado")

	list := m.ListFLR(flares)
	assert.Contains(t, list, "📊 *TOTAL*: 2 explosões solares")
	assert.Contains(t, list, "⚡ *Pico Exato*: 06:54:00")
	assert.Contains(t, list, "🏷️ *Tipo*: X5.8")
	assert.Contains(t, list, "• *Classe X (Extremas)*: 1\n")
	assert.Contains(t, list, "• *Classe M (Fortes)*: 1\n")
	assert.Contains(t, list, "• *Classe C (Moderadas)*: 0\n")
	assert.Contains(t, list, "• *Mais Intensa*: X5.8")
}

func TestListGST(t *testing.T) {
	freezeClock(t)
	gst := []models.SolarEvent{
		normalize(t, models.CategoryGST, `{"gstID":"g1","startTime":"2024-05-10T15:00Z","note":"Kp 8","allKpIndex":[{"kpIndex":8.67},{"kpIndex":9},{"kpIndex":8.33}],"linkedEvents":[{"activityID":"a"},{"activityID":"b"}]}`),
		normalize(t, models.CategoryGST, `{"gstID":"g2","startTime":"2024-05-11T03:00Z","note":"Kp 5","allKpIndex":[{"kpIndex":5.33}]}`),
	}

	got := newMenu(nil).ListGST(gst)
	assert.Contains(t, got, "📊 *TOTAL*: 2 tempestades geomagnéticas")
	assert.Contains(t, got, "📈 *Kp Máximo Real*: 9\n")
	assert.Contains(t, got, "📈 *Kp Máximo Real*: 5.33\n")
	assert.Contains(t, got, "🎯 *Classificação*: crítica (confiança 95%, duração prevista 12-48 horas)")
	assert.Contains(t, got, "🎯 *Classificação*: moderada (confiança 85%, duração prevista 6-12 horas)")
	assert.Contains(t, got, "🔗 *Eventos Relacionados*: 2")
	assert.Contains(t, got, "• *Kp Médio*: 6.5\n")
	assert.Contains(t, got, "• *Kp Máximo*: 8\n")
	assert.Contains(t, got, "• *Intensidade*: G4 - SEVERA")
}

func TestListCME(t *testing.T) {
	freezeClock(t)
	cmes := []models.SolarEvent{
		normalize(t, models.CategoryCME, `{"activityID":"c1","startTime":"2024-05-10T07:00Z","note":"Halo CME 1200 km/s","cmeAnalyses":[{"speed":1180,"halfAngle":45}]}`),
		normalize(t, models.CategoryCME, `{"activityID":"c2","startTime":"2024-05-10T09:00Z","note":"narrow 450 km/s"}`),
		normalize(t, models.CategoryCME, `{"activityID":"c3","startTime":"2024-05-10T11:00Z","note":"faint"}`),
	}

	got := newMenu(nil).ListCME(cmes)
	assert.Contains(t, got, "📐 *Velocidade Medida*: 1180 km/s")
	assert.Contains(t, got, "📏 *Ângulo*: 45°")
	assert.Contains(t, got, "⚡ *Velocidade*: Não informada km/s (LENTA)")
	assert.Contains(t, got, "• *Velocidade Média*: 825 km/s\n")
	assert.Contains(t, got, "• *Velocidade Máxima*: 1200 km/s\n")
	assert.Contains(t, got, "• *Direcionadas à Terra*: 1\n")
}

func TestListSEPAndHSS(t *testing.T) {
	freezeClock(t)
	m := newMenu(nil)

	sep := []models.SolarEvent{
		normalize(t, models.CategorySEP, `{"sepID":"s1","eventTime":"2024-05-10T08:00Z","note":">10 MeV protons after M class flare","instruments":[{"displayName":"GOES-P: EPEAD"}]}`),
	}
	got := m.ListSEP(sep)
	assert.Contains(t, got, "⚡ *Energia*: 10 MeV")
	assert.Contains(t, got, "🔬 *Detector*: GOES-P: EPEAD")
	assert.Contains(t, got, "• *Energia Máxima*: 10 MeV")
	assert.Contains(t, got, "• *Eventos >100 MeV*: 0")

	hss := []models.SolarEvent{
		normalize(t, models.CategoryHSS, `{"hssID":"h1","eventTime":"2024-05-09T00:00Z","note":"stream at 720 km/s"}`),
		normalize(t, models.CategoryHSS, `{"hssID":"h2","eventTime":"2024-05-10T00:00Z"}`),
	}
	got = m.ListHSS(hss)
	assert.Contains(t, got, "💨 *Velocidade*: 720 km/s (EXTREMO)")
	assert.Contains(t, got, "💨 *Velocidade*: 400-500 km/s (NORMAL)")
	assert.Contains(t, got, "• *Velocidade Média*: 560 km/s")
	assert.Contains(t, got, "• *Eventos >600 km/s*: 1")
}

func TestListAllNewestFirst(t *testing.T) {
	freezeClock(t)
	evts := []models.SolarEvent{
		normalize(t, models.CategoryGST, `{"gstID":"g1","startTime":"2024-05-09T12:00Z","note":"Kp 6"}`),
		normalize(t, models.CategoryFLR, `{"flrID":"f1","beginTime":"2024-05-11T10:00Z","classType":"M2.4"}`),
		normalize(t, models.CategoryCME, `{"activityID":"c1","startTime":"2024-05-10T12:00Z","note":"1500 km/s"}`),
	}

	got := newMenu(nil).ListAll(evts)
	flr := strings.Index(got, "🔥 *FLR* - 11/05/2024, 10:00:00")
	cme := strings.Index(got, "🌪️ *CME* - 10/05/2024, 12:00:00")
	gst := strings.Index(got, "⚡ *GST* - 09/05/2024, 12:00:00")
	require.True(t, flr >= 0 && cme >= 0 && gst >= 0, got)
	assert.Less(t, flr, cme)
	assert.Less(t, cme, gst)

	assert.Contains(t, got, "   🔥 Classe M2.4 (FORTE)\n")
	assert.Contains(t, got, "   💨 1500 km/s (RÁPIDA)\n")
	assert.Contains(t, got, "   ⚡ Kp: 6 (G2 - MODERADA)\n")
	assert.Contains(t, got, "• 🔥 *FLR*: 1 eventos\n")
	assert.Contains(t, got, "• *Período*: Últimos 7 dias\n")
	assert.Contains(t, got, "• *Total de eventos*: 3\n")
	assert.Equal(t, models.CategoryGST, evts[0].Category, "input order is preserved")
}

func TestAIAnalysis(t *testing.T) {
	freezeClock(t)
	evts := []models.SolarEvent{
		normalize(t, models.CategoryGST, `{"gstID":"g1","startTime":"2024-05-11T10:00Z","note":"Kp 8"}`),
	}

	m := newMenu(nil)
	m.analyst = stubAnalyzer{an: models.Analysis{
		Summary:     "## Resumo\n\nTempestade **severa** em andamento.",
		RiskLevel:   models.RiskHigh,
		Mode:        models.ModeGroq,
		GeneratedAt: fixedNow,
	}}
	got := m.AIAnalysis(context.Background(), evts)
	assert.Contains(t, got, "*Resumo*")
	assert.Contains(t, got, "Tempestade *severa* em andamento.")
	assert.Contains(t, got, "• Eventos processados: 1\n")
	assert.Contains(t, got, "• Nível de risco: ALTO\n")
	assert.Contains(t, got, "• Timestamp: 2024-05-11T12:00:00Z\n")
	assert.Contains(t, got, "• Modo: groq\n")

	offline := newMenu(nil).AIAnalysis(context.Background(), evts)
	assert.Contains(t, offline, "• Modo: offline\n")
}

func TestAuroraForecast(t *testing.T) {
	freezeClock(t)
	evts := []models.SolarEvent{
		normalize(t, models.CategoryGST, `{"gstID":"g1","startTime":"2024-05-11T10:00Z","note":"Kp 7"}`),
		normalize(t, models.CategoryCME, `{"activityID":"c1","startTime":"2024-05-11T06:00Z","note":"halo 1600 km/s"}`),
		normalize(t, models.CategoryCME, `{"activityID":"c2","startTime":"2024-05-11T07:00Z","note":"400 km/s"}`),
	}

	got := newMenu(nil).AuroraForecast(evts)
	assert.Contains(t, got, "• Índice Kp atual: 7\n")
	assert.Contains(t, got, "• Zona de aurora: 47°N magnético\n")
	assert.Contains(t, got, "• Visibilidade Brasil: 15%\n")
	assert.Contains(t, got, "Kp8 previsto (G4 - SEVERA)")
	assert.Equal(t, 1, strings.Count(got, "previsto ("))
	assert.Contains(t, got, "• Fase atual: 🌕 Cheia (90-100%)")
	assert.Contains(t, got, "• Interferência lunar: MÁXIMA - Pode ofuscar auroras fracas")

	calm := newMenu(nil).AuroraForecast(nil)
	assert.Contains(t, calm, "• Índice Kp atual: 2\n")
	assert.Contains(t, calm, "Nenhuma tempestade prevista por CMEs")
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"1200", 1200, true},
		{"400-500", 400, true},
		{"Não informada", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := leadingInt(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
