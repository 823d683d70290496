package fetchers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"solarwatch/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"
)

// Bulletin is one item from a space-weather RSS/Atom feed.
type Bulletin struct {
	Title     string          `json:"title"`
	Link      string          `json:"link"`
	Published time.Time       `json:"published"`
	Severity  models.Severity `json:"severity"`
}

// BulletinFetcher reads forecaster bulletins from an RSS or Atom feed.
type BulletinFetcher struct {
	client *resty.Client
	parser *gofeed.Parser
}

// NewBulletinFetcher creates a bulletin fetcher with its own HTTP client.
func NewBulletinFetcher(timeout time.Duration) *BulletinFetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := resty.New()
	client.SetTimeout(timeout)

	return &BulletinFetcher{
		client: client,
		parser: gofeed.NewParser(),
	}
}

// FetchBulletins returns feed items published after since, newest first.
// Items without a publication date are kept at the end.
func (f *BulletinFetcher) FetchBulletins(ctx context.Context, url string, since time.Time) ([]Bulletin, error) {
	if url == "" {
		return nil, nil
	}

	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bulletin feed: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("bulletin feed returned status %d", resp.StatusCode())
	}

	feed, err := f.parser.ParseString(string(resp.Body()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse bulletin feed: %w", err)
	}

	bulletins := make([]Bulletin, 0, len(feed.Items))
	for _, item := range feed.Items {
		b := Bulletin{
			Title:    strings.TrimSpace(item.Title),
			Link:     item.Link,
			Severity: bulletinSeverity(item.Title),
		}
		switch {
		case item.PublishedParsed != nil:
			b.Published = item.PublishedParsed.UTC()
		case item.UpdatedParsed != nil:
			b.Published = item.UpdatedParsed.UTC()
		}
		if !b.Published.IsZero() && b.Published.Before(since) {
			continue
		}
		bulletins = append(bulletins, b)
	}

	sort.SliceStable(bulletins, func(i, j int) bool {
		if bulletins[i].Published.IsZero() != bulletins[j].Published.IsZero() {
			return !bulletins[i].Published.IsZero()
		}
		return bulletins[i].Published.After(bulletins[j].Published)
	})

	return bulletins, nil
}

// bulletinSeverity classifies a bulletin by keywords in its title.
func bulletinSeverity(title string) models.Severity {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "x-class") || strings.Contains(t, "extreme") || strings.Contains(t, "severe"):
		return models.SeverityHigh
	case strings.Contains(t, "m-class") || strings.Contains(t, "major") || strings.Contains(t, "moderate"):
		return models.SeverityModerate
	default:
		return models.SeverityUndefined
	}
}
