package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"solarwatch/internal/analysis"
	"solarwatch/internal/events"
	"solarwatch/internal/logger"
	"solarwatch/internal/metrics"
	"solarwatch/internal/models"

	"github.com/sashabaranov/go-openai"
)

const (
	systemPrompt = "Você é um especialista em clima espacial e eventos solares, com conhecimento profundo sobre os impactos de tempestades geomagnéticas na infraestrutura tecnológica."

	noEventsSummary = "Nenhum evento solar significativo detectado no momento."
	routineAdvice   = "Continuar monitoramento de rotina"

	defaultMaxTokens   = 1000
	defaultTemperature = 0.3
	defaultTimeout     = 60 * time.Second
)

// Config selects the chat-completion backend. An empty APIKey means offline.
type Config struct {
	Mode    models.AnalysisMode
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Analyst produces the narrative analysis of a batch of events.
type Analyst struct {
	client  *openai.Client
	cfg     Config
	metrics *metrics.Metrics
	log     *logger.Logger
}

// NewAnalyst creates an analyst. Without an API key it always runs offline.
func NewAnalyst(cfg Config, m *metrics.Metrics, log *logger.Logger) *Analyst {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if m == nil {
		m = metrics.NewMetricsForTesting()
	}
	if log == nil {
		log = logger.GetGlobalLogger()
	}

	a := &Analyst{cfg: cfg, metrics: m, log: log.WithComponent("analyst")}
	if cfg.APIKey == "" {
		a.cfg.Mode = models.ModeOffline
		return a
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	a.client = openai.NewClientWithConfig(clientCfg)
	return a
}

// Mode reports the backend this analyst will try first.
func (a *Analyst) Mode() models.AnalysisMode {
	return a.cfg.Mode
}

// Analyze never fails: any LLM error downgrades to the offline narrative
// with mode offline_fallback. The risk level always comes from the rules.
func (a *Analyst) Analyze(ctx context.Context, evts []models.SolarEvent) models.Analysis {
	now := events.Now().UTC()
	if len(evts) == 0 {
		return models.Analysis{
			Summary:         noEventsSummary,
			RiskLevel:       models.RiskLow,
			Recommendations: models.Recommendations{models.SectorGeneral: {routineAdvice}},
			Mode:            models.ModeOffline,
			Generated:       false,
			GeneratedAt:     now,
		}
	}

	level := analysis.DetermineRiskLevel(evts)
	result := models.Analysis{
		RiskLevel:       level,
		Recommendations: analysis.SpecificRecommendations(evts),
		Generated:       true,
		GeneratedAt:     now,
		EventCount:      len(evts),
	}

	if a.client == nil {
		result.Summary = analysis.OfflineAnalysis(evts, level)
		result.Mode = models.ModeOffline
		a.metrics.AnalysisRuns.WithLabelValues(string(result.Mode)).Inc()
		return result
	}

	text, err := a.complete(ctx, BuildPrompt(evts))
	if err != nil {
		a.log.Error("LLM analysis failed, using offline analysis", err, map[string]interface{}{
			"mode":  string(a.cfg.Mode),
			"model": a.cfg.Model,
		})
		result.Summary = analysis.OfflineAnalysis(evts, level)
		result.Mode = models.ModeOfflineFallback
	} else {
		result.Summary = text
		result.Mode = a.cfg.Mode
	}

	a.metrics.AnalysisRuns.WithLabelValues(string(result.Mode)).Inc()
	a.log.Info("Analysis generated", map[string]interface{}{
		"mode":   string(result.Mode),
		"events": len(evts),
		"risk":   string(level),
		"chars":  len(result.Summary),
	})
	return result
}

func (a *Analyst) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.cfg.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   defaultMaxTokens,
			Temperature: defaultTemperature,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from %s", a.cfg.Mode)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty response from %s", a.cfg.Mode)
	}
	return content, nil
}

type promptEvent struct {
	Type        models.Category `json:"type"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

// BuildPrompt renders the user prompt listing every event.
func BuildPrompt(evts []models.SolarEvent) string {
	list := make([]promptEvent, 0, len(evts))
	for _, e := range evts {
		list = append(list, promptEvent{
			Type:        e.Category,
			Date:        e.OccurredAt.UTC().Format(time.RFC3339),
			Description: e.Description,
		})
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		data = []byte("[]")
	}

	return fmt.Sprintf(`
ANÁLISE DE EVENTOS SOLARES - SISTEMA DE MONITORAMENTO NASA

Eventos detectados nos últimos 7 dias:
%s

Total de eventos: %d

Forneça uma análise completa incluindo:
1. Resumo executivo dos eventos
2. Nível de risco (baixo, moderado, alto, crítico)
3. Possíveis impactos em:
   - Sistemas de comunicação e GPS
   - Redes elétricas
   - Operações de satélites
   - Voos comerciais em altas latitudes
4. Recomendações específicas para diferentes setores
5. Previsão de duração dos efeitos

Responda em português brasileiro de forma técnica mas acessível.
`, data, len(evts))
}

// PoweredBy names the backend for the report header.
func PoweredBy(mode models.AnalysisMode) string {
	switch mode {
	case models.ModeGroq:
		return "Groq AI (Llama)"
	case models.ModeOpenAI:
		return "OpenAI GPT"
	default:
		return "Algoritmos ML"
	}
}
