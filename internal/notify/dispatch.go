package notify

import (
	"context"
	"fmt"
	"time"

	"solarwatch/internal/models"
	"solarwatch/internal/reports"
)

// SelectAlertEvents keeps every non-GST event and only the severe GSTs.
func SelectAlertEvents(evts []models.SolarEvent) []models.SolarEvent {
	out := []models.SolarEvent{}
	for _, e := range evts {
		if e.Category == models.CategoryGST && e.Severity != models.SeverityHigh {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SendAlerts sends one formatted alert per event. A failed send does not stop
// the remaining alerts; the number of failures is returned with the last error.
func SendAlerts(ctx context.Context, sender Sender, evts []models.SolarEvent) (int, error) {
	var lastErr error
	failed := 0
	for i := range evts {
		if err := sender.Send(ctx, reports.FormatAlert(&evts[i])); err != nil {
			failed++
			lastErr = err
		}
	}
	if lastErr != nil {
		return failed, fmt.Errorf("failed to send %d of %d alerts: %w", failed, len(evts), lastErr)
	}
	return 0, nil
}

// SendSequence sends messages in order with delay between them. It stops at
// the first failure or when ctx is cancelled.
func SendSequence(ctx context.Context, sender Sender, msgs []string, delay time.Duration) error {
	for i, msg := range msgs {
		if i > 0 && delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if err := sender.Send(ctx, msg); err != nil {
			return fmt.Errorf("failed to send message %d of %d: %w", i+1, len(msgs), err)
		}
	}
	return nil
}
