package reports

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"solarwatch/internal/analysis"
	gauges "solarwatch/internal/charts"
	"solarwatch/internal/config"
	"solarwatch/internal/events"
	"solarwatch/internal/models"
)

//go:embed templates/report.html
var reportTemplate string

// HTMLBuilder renders the browser report page.
type HTMLBuilder struct {
	goldmark goldmark.Markdown
	tmpl     *template.Template
}

// NewHTMLBuilder creates an HTML builder
func NewHTMLBuilder() *HTMLBuilder {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &HTMLBuilder{
		goldmark: md,
		tmpl:     template.Must(template.New("report").Parse(reportTemplate)),
	}
}

// TemplateData is what report.html is executed with.
type TemplateData struct {
	Date          string
	GeneratedAt   string
	RiskLevel     string
	RiskColor     template.CSS
	Mode          string
	Version       string
	Content       template.HTML
	Gauges        template.HTML
	CategoryChart template.HTML
}

// ConvertMarkdownToHTML converts markdown to HTML using goldmark
func (h *HTMLBuilder) ConvertMarkdownToHTML(markdownContent string) (string, error) {
	var buf bytes.Buffer
	if err := h.goldmark.Convert([]byte(markdownContent), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}

// BuildReportPage renders the full report page for a batch and its analysis.
func (h *HTMLBuilder) BuildReportPage(evts []models.SolarEvent, an models.Analysis, now time.Time) (string, error) {
	content, err := h.ConvertMarkdownToHTML(ReportMarkdown(evts, an))
	if err != nil {
		return "", err
	}

	chartHTML, err := CategoryChartHTML(evts)
	if err != nil {
		return "", fmt.Errorf("failed to render category chart: %w", err)
	}

	panel, err := gauges.GaugePanel(analysis.AstronomyIndicators(evts))
	if err != nil {
		return "", fmt.Errorf("failed to render gauges: %w", err)
	}

	data := TemplateData{
		Date:          now.Format("2006-01-02"),
		GeneratedAt:   now.UTC().Format("2006-01-02 15:04:05 UTC"),
		RiskLevel:     strings.ToUpper(string(an.RiskLevel)),
		RiskColor:     template.CSS(riskHex(an.RiskLevel)),
		Mode:          string(an.Mode),
		Version:       config.GetVersion(),
		Content:       template.HTML(content),
		Gauges:        template.HTML(panel.HTML),
		CategoryChart: template.HTML(chartHTML),
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// ReportMarkdown is the markdown body of the report page: executive numbers,
// the analysis narrative and an event table.
func ReportMarkdown(evts []models.SolarEvent, an models.Analysis) string {
	counts := models.CountByCategory(evts)
	score := analysis.RiskScore(evts)

	var b strings.Builder
	b.WriteString("## Resumo executivo\n\n")
	fmt.Fprintf(&b, "- **Eventos detectados:** %d\n", len(evts))
	for _, cat := range models.Categories {
		fmt.Fprintf(&b, "- %s **%s:** %d\n", events.EventIcon(cat), cat, counts[cat])
	}
	fmt.Fprintf(&b, "- **Score de risco:** %d/100 (%s)\n\n", score.Score, score.Level)
	b.WriteString(analysis.RiskDescription(score.Level) + "\n\n")

	b.WriteString("## Análise\n\n")
	b.WriteString(an.Summary + "\n\n")

	if len(evts) > 0 {
		b.WriteString("## Eventos\n\n")
		b.WriteString("| Tipo | Data (UTC) | Severidade | Descrição |\n")
		b.WriteString("|---|---|---|---|\n")
		for _, e := range TopEvents(evts, len(evts)) {
			fmt.Fprintf(&b, "| %s %s | %s | %s | [%s](%s) |\n",
				events.EventIcon(e.Category), e.Category,
				e.OccurredAt.UTC().Format("2006-01-02 15:04"),
				e.Severity,
				escapeCell(truncate(e.Description, 120)), e.Link)
		}
	}
	return b.String()
}

// CategoryChartHTML renders an echarts bar chart of event counts per category.
func CategoryChartHTML(evts []models.SolarEvent) (string, error) {
	counts := models.CountByCategory(evts)

	labels := make([]string, 0, len(models.Categories))
	values := make([]opts.BarData, 0, len(models.Categories))
	for _, cat := range models.Categories {
		labels = append(labels, string(cat))
		values = append(values, opts.BarData{Value: counts[cat]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "800px",
			Height: "360px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Atividade solar",
			Subtitle: "Eventos DONKI por categoria",
		}),
	)
	bar.SetXAxis(labels).AddSeries("Eventos", values)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

func riskHex(level models.RiskLevel) string {
	switch level {
	case models.RiskCritical:
		return "#c0392b"
	case models.RiskHigh:
		return "#e67e22"
	case models.RiskModerate:
		return "#f1c40f"
	case models.RiskLow:
		return "#27ae60"
	default:
		return "#7f8c8d"
	}
}
