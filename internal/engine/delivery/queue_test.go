package delivery

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/davidmokos/coolify/internal/platform/config"
)

func testConfig() config.NotificationsConfig {
	return config.NotificationsConfig{
		WorkerCount:    1,
		QueueCapacity:  8,
		RetryAttempts:  5,
		RetryDelay:     time.Millisecond,
		RequestTimeout: time.Second,
	}
}

func testTask(url string) Task {
	return Task{
		Channel: "webhook",
		TeamID:  "team_1",
		URL:     url,
		Payload: []byte(`{"status":"success"}`),
	}
}

func TestQueueDeliversOnce(t *testing.T) {
	var calls atomic.Int32
	var header http.Header
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		header = r.Header.Clone()
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	q := NewQueue(testConfig())
	q.Start(1)
	q.Enqueue(testTask(server.URL))
	q.Stop()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly one request, got %d", got)
	}
	if got := header.Get("Content-Type"); got != "application/json" {
		t.Errorf("unexpected content type %q", got)
	}
	if got := header.Get("X-API-Key"); got != "" {
		t.Errorf("expected no X-API-Key without a credential, got %q", got)
	}
	if string(body) != `{"status":"success"}` {
		t.Errorf("unexpected body %q", body)
	}
}

func TestQueueSendsCredentialOnEveryAttempt(t *testing.T) {
	var calls atomic.Int32
	var missing atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") != "k123" {
			missing.Add(1)
		}
		// Fail twice, then accept.
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	task := testTask(server.URL)
	task.APIKey = "k123"

	q := NewQueue(testConfig())
	q.Start(1)
	q.Enqueue(task)
	q.Stop()

	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
	if missing.Load() != 0 {
		t.Errorf("%d attempts arrived without the credential header", missing.Load())
	}
}

func TestQueueRetryCeiling(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	q := NewQueue(testConfig())
	q.Start(1)
	q.Enqueue(testTask(server.URL))
	q.Stop()

	if got := calls.Load(); got != 5 {
		t.Fatalf("expected exactly 5 attempts before abandoning, got %d", got)
	}
}

func TestQueueRecoversWithinRetryBudget(t *testing.T) {
	// Four timeouts, then success on the final allowed attempt.
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 5 {
			time.Sleep(200 * time.Millisecond)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.RequestTimeout = 20 * time.Millisecond
	q := NewQueue(cfg)
	q.Start(1)
	q.Enqueue(testTask(server.URL))
	q.Stop()

	if got := calls.Load(); got != 5 {
		t.Fatalf("expected success on the 5th attempt, got %d calls", got)
	}
}

func TestQueueAcceptsAny2xx(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	q := NewQueue(testConfig())
	q.Start(1)
	q.Enqueue(testTask(server.URL))
	q.Stop()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 204 to count as delivered, got %d calls", got)
	}
}

func TestEnqueueDropsWhenFull(t *testing.T) {
	cfg := testConfig()
	cfg.QueueCapacity = 1
	q := NewQueue(cfg)
	// No workers started, so the first task stays queued.

	if !q.Enqueue(testTask("http://127.0.0.1:1/hook")) {
		t.Fatal("expected first enqueue to succeed")
	}
	if q.Enqueue(testTask("http://127.0.0.1:1/hook")) {
		t.Fatal("expected second enqueue to drop on a full queue")
	}
	if got := q.Depth(); got != 1 {
		t.Errorf("expected depth 1, got %d", got)
	}
}

func TestDeliverSynchronous(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	q := NewQueue(testConfig())

	err := q.Deliver(context.Background(), testTask(server.URL))
	if err == nil {
		t.Fatal("expected non-2xx to surface as an error")
	}

	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ok.Close()

	if err := q.Deliver(context.Background(), testTask(ok.URL)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
