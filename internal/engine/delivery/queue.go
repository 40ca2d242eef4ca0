package delivery

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/davidmokos/coolify/internal/platform/config"
)

// Queue is a bounded in-memory task queue with a fixed worker pool. Producers
// never block: when the queue is full the task is dropped and logged, so the
// triggering workflow is never held up by notification delivery.
type Queue struct {
	tasks    chan Task
	attempts int
	delay    time.Duration
	client   httpDoer
	wg       sync.WaitGroup
}

func NewQueue(cfg config.NotificationsConfig) *Queue {
	capacity := cfg.QueueCapacity
	if capacity <= 0 {
		capacity = 256
	}
	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 5
	}
	delay := cfg.RetryDelay
	if delay < 0 {
		delay = 0
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Queue{
		tasks:    make(chan Task, capacity),
		attempts: attempts,
		delay:    delay,
		client:   newHTTPClient(timeout),
	}
}

func (q *Queue) Start(workers int) {
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.run()
	}
}

// Stop drains the queue and waits for in-flight tasks, retries included.
func (q *Queue) Stop() {
	close(q.tasks)
	q.wg.Wait()
}

// Enqueue submits a task without blocking. Returns false when the queue is
// full and the task was dropped.
func (q *Queue) Enqueue(t Task) bool {
	select {
	case q.tasks <- t:
		metricEnqueued.WithLabelValues(t.Channel).Inc()
		return true
	default:
		metricDropped.WithLabelValues(t.Channel).Inc()
		log.Warn().
			Str("channel", t.Channel).
			Str("team_id", t.TeamID).
			Msg("delivery queue full, notification dropped")
		return false
	}
}

// Depth reports the number of tasks waiting on the queue.
func (q *Queue) Depth() int {
	return len(q.tasks)
}
