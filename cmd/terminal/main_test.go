package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"solarwatch/internal/events"
	"solarwatch/internal/fetchers"
	"solarwatch/internal/menu"
	"solarwatch/internal/models"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls int
	fail  bool
}

func (s *countingSource) FetchEvents(_ context.Context, _, _ time.Time) fetchers.FetchResult {
	s.calls++
	errs := map[models.Category]error{}
	if s.fail {
		for _, cat := range models.Categories {
			errs[cat] = errors.New("down")
		}
	}
	return fetchers.FetchResult{Errors: errs}
}

type captureSender struct {
	sent []string
	err  error
}

func (c *captureSender) Send(_ context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, text)
	return nil
}

func newSession(src *countingSource, sender *captureSender) (*Session, *clockwork.FakeClock) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 11, 12, 0, 0, 0, time.UTC))
	events.SetClock(clock)
	m := menu.New(menu.Options{Source: src, Location: time.UTC})
	return NewSession(m, sender, &bytes.Buffer{}), clock
}

func TestReplyCachesEvents(t *testing.T) {
	src := &countingSource{}
	s, clock := newSession(src, &captureSender{})
	t.Cleanup(func() { events.SetClock(nil) })
	ctx := context.Background()

	s.Reply(ctx, "1")
	s.Reply(ctx, "2")
	s.Reply(ctx, "menu")
	assert.Equal(t, 1, src.calls)

	clock.Advance(cacheTTL)
	s.Reply(ctx, "13")
	assert.Equal(t, 2, src.calls)
}

func TestReplyFetchFailure(t *testing.T) {
	s, _ := newSession(&countingSource{fail: true}, &captureSender{})
	t.Cleanup(func() { events.SetClock(nil) })

	got, more := s.Reply(context.Background(), "3")
	assert.True(t, more)
	assert.Equal(t, menu.FetchFailed, got)
}

func TestReplyOption11SendsLastAnswer(t *testing.T) {
	sender := &captureSender{}
	s, _ := newSession(&countingSource{}, sender)
	t.Cleanup(func() { events.SetClock(nil) })
	ctx := context.Background()

	got, _ := s.Reply(ctx, "11")
	assert.True(t, strings.HasPrefix(got, menu.ObservationGuide))
	assert.True(t, strings.HasSuffix(got, nothingSent))
	assert.Empty(t, sender.sent)

	s.Reply(ctx, "12")
	s.Reply(ctx, "xyz")
	got, _ = s.Reply(ctx, "11")
	assert.True(t, strings.HasSuffix(got, sentOK))
	require.Len(t, sender.sent, 1)
	assert.Equal(t, menu.AlertConfiguration, sender.sent[0])

	sender.err = errors.New("offline")
	got, _ = s.Reply(ctx, "11")
	assert.True(t, strings.HasSuffix(got, "❌ Falha ao enviar: offline"))
}

func TestRunStopsOnZero(t *testing.T) {
	var out bytes.Buffer
	m := menu.New(menu.Options{Source: &countingSource{}, Location: time.UTC})
	s := NewSession(m, &captureSender{}, &out)

	require.NoError(t, s.Run(context.Background(), strings.NewReader("12\n0\n9\n")))
	text := out.String()
	assert.True(t, strings.HasPrefix(text, menu.MainMenu))
	assert.Contains(t, text, menu.AlertConfiguration)
	assert.Contains(t, text, goodbye)
	assert.NotContains(t, text, menu.SeasonalInfo)
}

func TestRunEndsOnEOF(t *testing.T) {
	var out bytes.Buffer
	m := menu.New(menu.Options{Source: &countingSource{}, Location: time.UTC})
	require.NoError(t, NewSession(m, &captureSender{}, &out).Run(context.Background(), strings.NewReader("menu")))
	assert.Equal(t, 2, strings.Count(out.String(), menu.MainMenu))
}
