// Command local-runner runs one monitor job from the shell, or stores a full
// report bundle for inspection.
//
// Usage:
//
//	local-runner check|daily|weekly|astro
//	local-runner menu <option>
//	local-runner report [dir]
//	local-runner reports [dir]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"solarwatch/internal/app"
	"solarwatch/internal/config"
	"solarwatch/internal/events"
	"solarwatch/internal/logger"
	"solarwatch/internal/models"
	"solarwatch/internal/reports"
	"solarwatch/internal/storage"
)

const usage = "usage: local-runner check|daily|weekly|astro|menu <option>|report [dir]|reports [dir]"

// saveReport renders the bundle of the current window into store and
// returns the report folder.
func saveReport(ctx context.Context, store storage.StorageClient, evts []models.SolarEvent, an models.Analysis, now time.Time, days int) (string, error) {
	files, err := reports.BuildBundle(evts, an, now, days)
	if err != nil {
		return "", err
	}
	return storage.StoreReport(ctx, store, now, files)
}

// bundleDir is the directory argument of "report" and "reports".
func bundleDir(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return "reports"
}

func run(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	switch args[0] {
	case "check":
		res, err := a.Monitor.CheckForEvents(ctx)
		out, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(out))
		return err
	case "daily":
		return a.Monitor.SendDailySummary(ctx)
	case "weekly":
		return a.Monitor.SendWeeklyReport(ctx)
	case "astro":
		return a.Monitor.SendAstronomyAlert(ctx)
	case "menu":
		if len(args) < 2 {
			return fmt.Errorf("menu needs an option, e.g. menu 7")
		}
		fmt.Println(a.Menu.Handle(ctx, strings.Join(args[1:], " ")))
		return nil
	case "report":
		store, err := storage.NewLocalStorageClient(bundleDir(args[1:]))
		if err != nil {
			return err
		}
		evts, an, err := a.Monitor.Analysis(ctx)
		if err != nil {
			return err
		}
		folder, err := saveReport(ctx, store, evts, an, events.Now(), a.Config.LookbackDays)
		if err != nil {
			return err
		}
		logger.Info("Report saved", map[string]interface{}{
			"dir":    store.BaseDir(),
			"folder": folder,
			"events": len(evts),
			"mode":   string(an.Mode),
		})
		return nil
	case "reports":
		store, err := storage.NewLocalStorageClient(bundleDir(args[1:]))
		if err != nil {
			return err
		}
		folders, err := store.ListReports(ctx, 0)
		if err != nil {
			return err
		}
		for _, f := range folders {
			fmt.Println(f)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, "text")

	a, err := app.New(cfg, nil, logger.GetGlobalLogger())
	if err != nil {
		logger.Fatal("Failed to wire components", err)
	}

	start := time.Now()
	if err := run(ctx, a, os.Args[1:]); err != nil {
		logger.Fatal("Run failed", err)
	}
	logger.Info("Done", map[string]interface{}{"duration_ms": time.Since(start).Milliseconds()})
}
