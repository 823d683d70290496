// Package menu answers the numbered options of the interactive menu shared
// by the terminal app and the WhatsApp webhook.
package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"solarwatch/internal/fetchers"
	"solarwatch/internal/logger"
	"solarwatch/internal/models"
)

const (
	UnknownCommand = "❌ Comando não reconhecido. Digite *MENU* para ver as opções."
	FetchFailed    = "❌ Erro ao buscar dados da NASA. Tente novamente em alguns minutos."

	stampLayout = "02/01/2006, 15:04:05"
	dateLayout  = "02/01/2006"
	clockLayout = "15:04:05"
	unknownDate = "Data desconhecida"
)

// Analyzer produces the narrative analysis behind option 7.
type Analyzer interface {
	Analyze(ctx context.Context, evts []models.SolarEvent) models.Analysis
}

// Options configures a Menu.
type Options struct {
	Source   fetchers.EventSource
	Lookback time.Duration
	Analyst  Analyzer
	// Location is used for dates shown to the user; defaults to time.Local.
	Location *time.Location
	Logger   *logger.Logger
}

// Menu renders option answers from live events.
type Menu struct {
	source   fetchers.EventSource
	lookback time.Duration
	analyst  Analyzer
	loc      *time.Location
	log      *logger.Logger
}

// New creates a menu over the given event source.
func New(opts Options) *Menu {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	lookback := opts.Lookback
	if lookback <= 0 {
		lookback = 7 * 24 * time.Hour
	}
	log := opts.Logger
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	return &Menu{
		source:   opts.Source,
		lookback: lookback,
		analyst:  opts.Analyst,
		loc:      loc,
		log:      log.WithComponent("menu"),
	}
}

// Normalize trims and upper-cases user input so "menu " and "MENU" match.
func Normalize(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// NeedsEvents reports whether answering cmd requires a feed fetch.
func NeedsEvents(cmd string) bool {
	switch cmd {
	case "1", "2", "3", "4", "5", "6", "7", "8", "13", "14", "15", "16", "17", "18":
		return true
	}
	return false
}

// Handle answers one raw user command, fetching events only when needed.
func (m *Menu) Handle(ctx context.Context, input string) string {
	cmd := Normalize(input)
	if !NeedsEvents(cmd) {
		return m.Answer(ctx, cmd, nil)
	}

	evts, err := m.Events(ctx)
	if err != nil {
		m.log.Error("Menu fetch failed", err, map[string]interface{}{"command": cmd})
		return FetchFailed
	}
	return m.Answer(ctx, cmd, evts)
}

// Events fetches the lookback window. Partial failures are logged and the
// answered categories are still returned.
func (m *Menu) Events(ctx context.Context) ([]models.SolarEvent, error) {
	if m.source == nil {
		return nil, fmt.Errorf("no event source configured")
	}
	from, to := fetchers.Window(m.lookback)
	res := m.source.FetchEvents(ctx, from, to)
	if res.Failed() {
		return nil, res.Err()
	}
	if err := res.Err(); err != nil {
		m.log.Warn("Menu fetch incomplete", map[string]interface{}{"error": err.Error()})
	}
	return res.Events, nil
}

// Answer renders the reply to a normalized command over already fetched events.
func (m *Menu) Answer(ctx context.Context, cmd string, evts []models.SolarEvent) string {
	switch cmd {
	case "MENU":
		return MainMenu
	case "AJUDA":
		return Help
	case "1":
		return CurrentActivity(evts)
	case "2":
		return m.GeomagneticStorms(evts)
	case "3":
		return m.CoronalMassEjections(evts)
	case "4":
		return m.SolarFlares(evts)
	case "5":
		return m.ParticleEvents(evts)
	case "6":
		return m.HighSpeedStreams(evts)
	case "7":
		return m.AIAnalysis(ctx, evts)
	case "8":
		return m.AuroraForecast(evts)
	case "9":
		return SeasonalInfo
	case "10", "11":
		return ObservationGuide
	case "12":
		return AlertConfiguration
	case "13":
		return m.ListGST(evts)
	case "14":
		return m.ListCME(evts)
	case "15":
		return m.ListFLR(evts)
	case "16":
		return m.ListSEP(evts)
	case "17":
		return m.ListHSS(evts)
	case "18":
		return m.ListAll(evts)
	default:
		return UnknownCommand
	}
}

func (m *Menu) stamp(t time.Time) string {
	if t.IsZero() {
		return unknownDate
	}
	return t.In(m.loc).Format(stampLayout)
}

func (m *Menu) date(t time.Time) string {
	if t.IsZero() {
		return unknownDate
	}
	return t.In(m.loc).Format(dateLayout)
}

func (m *Menu) clock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(m.loc).Format(clockLayout)
}
