package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"solarwatch/internal/metrics"
	"solarwatch/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []models.SolarEvent {
	at := time.Date(2024, 5, 10, 15, 0, 0, 0, time.UTC)
	return []models.SolarEvent{
		{ID: "g1", Category: models.CategoryGST, Severity: models.SeverityHigh, OccurredAt: at, Description: "Evento solar (GST): Kp 9"},
		{ID: "c1", Category: models.CategoryCME, Severity: models.SeverityUndefined, OccurredAt: at.Add(-24 * time.Hour), Description: "Evento solar (CME): halo"},
	}
}

type chatRequest struct {
	Model       string  `json:"model"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func chatServer(t *testing.T, status int, content string, captured *chatRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))
		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"upstream down","type":"server_error"}}`))
			return
		}
		resp := map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1715350000,
			"model":   "llama-3.1-8b-instant",
			"choices": []map[string]interface{}{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		}
		assert.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAnalyzeEmpty(t *testing.T) {
	a := NewAnalyst(Config{}, nil, nil)
	got := a.Analyze(context.Background(), nil)

	assert.Equal(t, "Nenhum evento solar significativo detectado no momento.", got.Summary)
	assert.Equal(t, models.RiskLow, got.RiskLevel)
	assert.False(t, got.Generated)
	assert.Equal(t, []string{"Continuar monitoramento de rotina"}, got.Recommendations[models.SectorGeneral])
}

func TestAnalyzeOffline(t *testing.T) {
	m := metrics.NewMetricsForTesting()
	a := NewAnalyst(Config{Mode: models.ModeGroq}, m, nil)
	assert.Equal(t, models.ModeOffline, a.Mode())

	got := a.Analyze(context.Background(), sampleEvents())
	assert.Equal(t, models.ModeOffline, got.Mode)
	assert.True(t, got.Generated)
	assert.Equal(t, models.RiskCritical, got.RiskLevel)
	assert.Equal(t, 2, got.EventCount)
	assert.Contains(t, got.Summary, "ANÁLISE AUTOMATIZADA")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysisRuns.WithLabelValues("offline")))
}

func TestAnalyzeWithChatCompletion(t *testing.T) {
	var req chatRequest
	srv := chatServer(t, http.StatusOK, "## Resumo\nTempestade severa em andamento.", &req)

	a := NewAnalyst(Config{
		Mode:    models.ModeGroq,
		APIKey:  "gsk-test",
		BaseURL: srv.URL + "/",
		Model:   "llama-3.1-8b-instant",
	}, nil, nil)

	got := a.Analyze(context.Background(), sampleEvents())
	assert.Equal(t, models.ModeGroq, got.Mode)
	assert.Equal(t, "## Resumo\nTempestade severa em andamento.", got.Summary)
	assert.Equal(t, models.RiskCritical, got.RiskLevel)

	assert.Equal(t, "llama-3.1-8b-instant", req.Model)
	assert.Equal(t, 1000, req.MaxTokens)
	assert.InDelta(t, 0.3, req.Temperature, 0.001)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Equal(t, systemPrompt, req.Messages[0].Content)
	assert.Contains(t, req.Messages[1].Content, "Total de eventos: 2")
}

func TestAnalyzeFallsBackOnError(t *testing.T) {
	srv := chatServer(t, http.StatusInternalServerError, "", nil)
	m := metrics.NewMetricsForTesting()

	a := NewAnalyst(Config{
		Mode:    models.ModeOpenAI,
		APIKey:  "gsk-test",
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
		Timeout: 5 * time.Second,
	}, m, nil)

	got := a.Analyze(context.Background(), sampleEvents())
	assert.Equal(t, models.ModeOfflineFallback, got.Mode)
	assert.True(t, got.Generated)
	assert.Contains(t, got.Summary, "ANÁLISE AUTOMATIZADA")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysisRuns.WithLabelValues("offline_fallback")))
}

func TestAnalyzeFallsBackOnEmptyContent(t *testing.T) {
	srv := chatServer(t, http.StatusOK, "   ", nil)
	a := NewAnalyst(Config{Mode: models.ModeGroq, APIKey: "gsk-test", BaseURL: srv.URL}, nil, nil)

	got := a.Analyze(context.Background(), sampleEvents())
	assert.Equal(t, models.ModeOfflineFallback, got.Mode)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleEvents())

	assert.Contains(t, prompt, "ANÁLISE DE EVENTOS SOLARES - SISTEMA DE MONITORAMENTO NASA")
	assert.Contains(t, prompt, `"type": "GST"`)
	assert.Contains(t, prompt, `"date": "2024-05-10T15:00:00Z"`)
	assert.Contains(t, prompt, `"description": "Evento solar (CME): halo"`)
	assert.Contains(t, prompt, "Responda em português brasileiro")
}

func TestPoweredBy(t *testing.T) {
	assert.Equal(t, "Groq AI (Llama)", PoweredBy(models.ModeGroq))
	assert.Equal(t, "OpenAI GPT", PoweredBy(models.ModeOpenAI))
	assert.Equal(t, "Algoritmos ML", PoweredBy(models.ModeOffline))
	assert.Equal(t, "Algoritmos ML", PoweredBy(models.ModeOfflineFallback))
}
