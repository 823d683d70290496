// Package scheduler runs the periodic jobs on standard 5-field cron specs.
package scheduler

import (
	"context"
	"fmt"

	"solarwatch/internal/logger"

	"github.com/robfig/cron/v3"
)

// Runner wraps a cron instance whose jobs all receive the same base context.
type Runner struct {
	cron    *cron.Cron
	log     *logger.Logger
	baseCtx context.Context
}

// New creates a runner. Overlapping runs of one job are skipped and panics are
// recovered and logged.
func New(log *logger.Logger, baseCtx context.Context) *Runner {
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}
	log = log.WithComponent("scheduler")
	cl := cronLogger{log: log}

	return &Runner{
		cron:    cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl))),
		log:     log,
		baseCtx: baseCtx,
	}
}

// Add registers a named job. The spec is validated immediately.
func (r *Runner) Add(name, spec string, job func(context.Context)) (cron.EntryID, error) {
	id, err := r.cron.AddFunc(spec, func() {
		r.log.Info("Job started", map[string]interface{}{"job": name})
		job(r.baseCtx)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to schedule %s (%q): %w", name, spec, err)
	}
	r.log.Info("Job scheduled", map[string]interface{}{"job": name, "spec": spec})
	return id, nil
}

// Entries is the number of registered jobs.
func (r *Runner) Entries() int {
	return len(r.cron.Entries())
}

// Start runs the scheduler in its own goroutine.
func (r *Runner) Start() {
	r.log.Info("Scheduler started")
	r.cron.Start()
}

// Stop prevents new runs and waits for running jobs to finish.
func (r *Runner) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
	r.log.Info("Scheduler stopped")
}

// cronLogger adapts the component logger to cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Debug("cron: "+msg, kvFields(keysAndValues))
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Error("cron: "+msg, err, kvFields(keysAndValues))
}

func kvFields(kv []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		fields[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return fields
}
