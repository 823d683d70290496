package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"solarwatch/internal/app"
	"solarwatch/internal/config"
	"solarwatch/internal/logger"
	"solarwatch/internal/metrics"
	"solarwatch/internal/monitor"
	"solarwatch/internal/scheduler"
	"solarwatch/internal/server"

	"github.com/prometheus/client_golang/prometheus"
)

// Jobs is the part of the monitor the scheduler runs.
type Jobs interface {
	CheckForEvents(ctx context.Context) (monitor.CheckResult, error)
	SendDailySummary(ctx context.Context) error
	SendWeeklyReport(ctx context.Context) error
	SendAstronomyAlert(ctx context.Context) error
}

// scheduleJobs registers the four periodic jobs. Job errors are already
// logged by the monitor.
func scheduleJobs(r *scheduler.Runner, cfg *config.Config, jobs Jobs) error {
	specs := []struct {
		name string
		spec string
		run  func(context.Context)
	}{
		{monitor.JobCheck, cfg.CheckSchedule, func(ctx context.Context) { _, _ = jobs.CheckForEvents(ctx) }},
		{monitor.JobDaily, cfg.DailySchedule, func(ctx context.Context) { _ = jobs.SendDailySummary(ctx) }},
		{monitor.JobWeekly, cfg.WeeklySchedule, func(ctx context.Context) { _ = jobs.SendWeeklyReport(ctx) }},
		{monitor.JobAstro, cfg.AstroSchedule, func(ctx context.Context) { _ = jobs.SendAstronomyAlert(ctx) }},
	}
	for _, s := range specs {
		if _, err := r.Add(s.name, s.spec, s.run); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat)
	log := logger.GetGlobalLogger()

	log.Info("Starting SolarWatch", map[string]interface{}{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"version":     config.GetVersion(),
	})

	components, err := app.New(cfg, metrics.NewMetrics(), log)
	if err != nil {
		logger.Fatal("Failed to wire components", err)
	}

	srv, err := server.NewServer(server.Options{
		Monitor:      components.Monitor,
		Menu:         components.Menu,
		Replier:      replier(components),
		Owner:        cfg.WhatsAppRecipient,
		VerifyToken:  cfg.WhatsAppVerifyToken,
		TimelineDays: cfg.LookbackDays,
		Gatherer:     prometheus.DefaultGatherer,
		Logger:       log,
	})
	if err != nil {
		logger.Fatal("Failed to create server", err)
	}

	runner := scheduler.New(log, ctx)
	if err := scheduleJobs(runner, cfg, components.Monitor); err != nil {
		logger.Fatal("Failed to schedule jobs", err)
	}
	runner.Start()

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server listening", map[string]interface{}{"addr": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", err)
		}
	}()

	// Initial check so a fresh deploy does not wait for the first tick.
	go func() {
		if _, err := components.Monitor.CheckForEvents(ctx); err != nil {
			log.Warn("Startup check failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	runner.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}
	srv.WaitReplies()

	_ = log.Sync()
}

// replier avoids storing a typed nil in the server's interface field.
func replier(a *app.App) server.Replier {
	if a.WhatsApp == nil {
		return nil
	}
	return a.WhatsApp
}
