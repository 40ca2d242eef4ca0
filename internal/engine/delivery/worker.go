package delivery

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func (q *Queue) run() {
	defer q.wg.Done()
	for t := range q.tasks {
		q.process(t)
	}
}

// process runs one task through its full attempt cycle: up to q.attempts
// tries with a fixed pause between them. Exhaustion is terminal; nothing is
// reported back to the producer.
func (q *Queue) process(t Task) {
	for attempt := 1; attempt <= q.attempts; attempt++ {
		err := q.attempt(context.Background(), t)
		if err == nil {
			metricDelivered.WithLabelValues(t.Channel).Inc()
			metricAttempts.Observe(float64(attempt))
			// The target URL and credential stay out of success logs.
			log.Info().
				Str("channel", t.Channel).
				Str("team_id", t.TeamID).
				Int("attempt", attempt).
				Bool("has_api_key", t.APIKey != "").
				Msg("notification delivered")
			return
		}

		log.Warn().
			Err(err).
			Str("channel", t.Channel).
			Str("team_id", t.TeamID).
			Int("attempt", attempt).
			Msg("notification delivery attempt failed")

		if attempt < q.attempts {
			time.Sleep(q.delay)
		}
	}

	metricFailed.WithLabelValues(t.Channel).Inc()
	log.Error().
		Str("channel", t.Channel).
		Str("team_id", t.TeamID).
		Int("attempts", q.attempts).
		Msg("notification abandoned after retry ceiling")
}

// Deliver performs one synchronous attempt, bypassing the queue. Used by the
// manual test-notification path, which is the only place send failures are
// surfaced to the caller.
func (q *Queue) Deliver(ctx context.Context, t Task) error {
	return q.attempt(ctx, t)
}

func (q *Queue) attempt(ctx context.Context, t Task) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL, bytes.NewReader(t.Payload))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.APIKey != "" {
		req.Header.Set("X-API-Key", t.APIKey)
	}

	resp, err := q.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
