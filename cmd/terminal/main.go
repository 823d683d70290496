// Command terminal is the interactive menu on stdin/stdout.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"solarwatch/internal/app"
	"solarwatch/internal/config"
	"solarwatch/internal/events"
	"solarwatch/internal/logger"
	"solarwatch/internal/menu"
	"solarwatch/internal/models"
	"solarwatch/internal/notify"
)

const (
	cacheTTL = 10 * time.Minute

	prompt      = "\n👉 Escolha uma opção (0 para sair): "
	goodbye     = "👋 Até logo! Céus limpos!"
	nothingSent = "⚠️ Nenhuma resposta anterior para enviar."
	sentOK      = "✅ Última resposta enviada."
)

// Session is one interactive run. Events are fetched on the first data
// option and reused until they are older than cacheTTL.
type Session struct {
	menu   *menu.Menu
	sender notify.Sender
	out    io.Writer

	cached    []models.SolarEvent
	fetchedAt time.Time
	last      string
}

// NewSession creates a session writing to out.
func NewSession(m *menu.Menu, sender notify.Sender, out io.Writer) *Session {
	return &Session{menu: m, sender: sender, out: out}
}

func (s *Session) events(ctx context.Context) ([]models.SolarEvent, error) {
	now := events.Now()
	if s.cached != nil && now.Sub(s.fetchedAt) < cacheTTL {
		return s.cached, nil
	}
	evts, err := s.menu.Events(ctx)
	if err != nil {
		return nil, err
	}
	if evts == nil {
		evts = []models.SolarEvent{}
	}
	s.cached, s.fetchedAt = evts, now
	return evts, nil
}

// Reply answers one line. The second result is false when the session ends.
func (s *Session) Reply(ctx context.Context, line string) (string, bool) {
	cmd := menu.Normalize(line)
	switch cmd {
	case "0":
		return goodbye, false
	case "11":
		status := s.sendLast(ctx)
		s.last = menu.ObservationGuide
		return menu.ObservationGuide + "\n\n" + status, true
	}

	var evts []models.SolarEvent
	if menu.NeedsEvents(cmd) {
		var err error
		if evts, err = s.events(ctx); err != nil {
			logger.Error("Terminal fetch failed", err)
			return menu.FetchFailed, true
		}
	}

	answer := s.menu.Answer(ctx, cmd, evts)
	if answer != menu.UnknownCommand {
		s.last = answer
	}
	return answer, true
}

// sendLast forwards the previous answer through the sender.
func (s *Session) sendLast(ctx context.Context) string {
	if s.last == "" {
		return nothingSent
	}
	if err := s.sender.Send(ctx, s.last); err != nil {
		return fmt.Sprintf("❌ Falha ao enviar: %v", err)
	}
	return sentOK
}

// Run reads commands until EOF or option 0.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, menu.MainMenu)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			return scanner.Err()
		}
		answer, more := s.Reply(ctx, scanner.Text())
		fmt.Fprintln(s.out, answer)
		if !more {
			return nil
		}
	}
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	// Keep the log out of the menu output unless something goes wrong.
	logger.Configure("warn", "text")

	a, err := app.New(cfg, nil, logger.GetGlobalLogger())
	if err != nil {
		logger.Fatal("Failed to wire components", err)
	}

	if err := NewSession(a.Menu, a.Sender, os.Stdout).Run(ctx, os.Stdin); err != nil {
		logger.Fatal("Terminal session failed", err)
	}
}
