package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"solarwatch/internal/charts"
	"solarwatch/internal/config"
	"solarwatch/internal/events"
	"solarwatch/internal/reports"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   config.GetVersion(),
	})
}

// HandleReady reports whether a check is currently running.
func (s *Server) HandleReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	checking := !s.checkMutex.TryLock()
	if !checking {
		s.checkMutex.Unlock()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ready",
		"checking": checking,
	})
}

// HandleCheck runs one alert check. Concurrent requests are rejected.
func (s *Server) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.checkMutex.TryLock() {
		s.log.Warn("Check already in progress, rejecting request")
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":   "Check already in progress",
			"message": "Another event check is currently running. Please wait for it to complete.",
			"status":  "conflict",
		})
		return
	}
	defer s.checkMutex.Unlock()

	res, err := s.monitor.CheckForEvents(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]interface{}{
			"error":  err.Error(),
			"result": res,
		})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// HandleEvents lists the normalized events of the window with their
// derived attributes.
func (s *Server) HandleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	evts, err := s.monitor.Events(r.Context())
	if err != nil {
		s.log.Error("Events fetch failed", err)
		http.Error(w, "Failed to fetch events: "+err.Error(), http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":     len(evts),
		"events":    events.Views(evts),
		"timestamp": events.Now().UTC().Format(time.RFC3339),
	})
}

// HandleReport serves the HTML report of the current window.
func (s *Server) HandleReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	evts, an, err := s.monitor.Analysis(r.Context())
	if err != nil {
		s.log.Error("Report fetch failed", err)
		http.Error(w, "Failed to fetch events: "+err.Error(), http.StatusBadGateway)
		return
	}

	page, err := s.html.BuildReportPage(evts, an, events.Now())
	if err != nil {
		s.log.Error("Report rendering failed", err)
		http.Error(w, "Report generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// HandleChart serves the per-category activity chart as PNG.
func (s *Server) HandleChart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	evts, err := s.monitor.Events(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch events: "+err.Error(), http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if err := reports.RenderActivityChart(&buf, evts); err != nil {
		s.log.Error("Chart rendering failed", err)
		http.Error(w, "Chart generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

// HandleTimeline serves the daily maximum Kp of the window as PNG.
func (s *Server) HandleTimeline(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	evts, err := s.monitor.Events(r.Context())
	if err != nil {
		http.Error(w, "Failed to fetch events: "+err.Error(), http.StatusBadGateway)
		return
	}

	var buf bytes.Buffer
	if err := charts.RenderKpTimeline(&buf, charts.DailyKp(evts, events.Now(), s.days, time.UTC)); err != nil {
		s.log.Error("Timeline rendering failed", err)
		http.Error(w, "Timeline generation failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

// HandleMenu answers ?option=N with the same text the chat menu sends.
func (s *Server) HandleMenu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	option := r.URL.Query().Get("option")
	if option == "" {
		http.Error(w, "option query parameter required", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.menu.Handle(r.Context(), option)))
}
