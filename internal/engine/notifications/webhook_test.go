package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/davidmokos/coolify/internal/engine/delivery"
	"github.com/davidmokos/coolify/internal/platform/models"
)

// captureQueue records enqueued and delivered tasks instead of sending them.
type captureQueue struct {
	enqueued   []delivery.Task
	delivered  []delivery.Task
	deliverErr error
}

func (q *captureQueue) Enqueue(t delivery.Task) bool {
	q.enqueued = append(q.enqueued, t)
	return true
}

func (q *captureQueue) Deliver(ctx context.Context, t delivery.Task) error {
	q.delivered = append(q.delivered, t)
	return q.deliverErr
}

func webhookFixture(settings *models.WebhookSettings) (*captureQueue, NotificationChannel, *Notifier, *models.Team) {
	store := &fakeSettingsStore{webhook: settings}
	queue := &captureQueue{}
	renderer := testRenderer(&fakeDeploymentLookup{})
	channel := NewWebhookChannel(store, queue, renderer, "Coolify v4.0.0")
	notifier := NewNotifier(NewResolver(store), channel)
	team := &models.Team{ID: "team_1", Name: "acme"}
	return queue, channel, notifier, team
}

func TestWebhookDispatchEnabledNoCredential(t *testing.T) {
	queue, _, notifier, team := webhookFixture(&models.WebhookSettings{
		Enabled:           true,
		URL:               "https://hooks.example.com/deploys",
		DeploymentSuccess: true,
	})

	notifier.Notify(context.Background(), team, deploymentEvent(EventDeploymentSuccess))

	if len(queue.enqueued) != 1 {
		t.Fatalf("expected exactly one task, got %d", len(queue.enqueued))
	}
	task := queue.enqueued[0]
	if task.URL != "https://hooks.example.com/deploys" {
		t.Errorf("unexpected task URL %q", task.URL)
	}
	if task.APIKey != "" {
		t.Errorf("expected no credential on task, got %q", task.APIKey)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(task.Payload, &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if payload["status"] != "success" {
		t.Errorf("expected status success in payload, got %v", payload["status"])
	}
	if payload["source"] != "Coolify v4.0.0" {
		t.Errorf("unexpected source %v", payload["source"])
	}
}

func TestWebhookDispatchEventFlagOff(t *testing.T) {
	queue, _, notifier, team := webhookFixture(&models.WebhookSettings{
		Enabled:           true,
		URL:               "https://hooks.example.com/deploys",
		DeploymentSuccess: true,
		DeploymentFailure: false,
	})

	notifier.Notify(context.Background(), team, deploymentEvent(EventDeploymentFailure))

	if len(queue.enqueued) != 0 {
		t.Fatalf("expected no tasks with failure flag off, got %d", len(queue.enqueued))
	}
}

func TestWebhookDispatchDisabled(t *testing.T) {
	queue, channel, notifier, team := webhookFixture(&models.WebhookSettings{
		Enabled:           false,
		URL:               "https://hooks.example.com/deploys",
		DeploymentSuccess: true,
		DeploymentFailure: true,
	})

	notifier.Notify(context.Background(), team, deploymentEvent(EventDeploymentSuccess))
	notifier.Notify(context.Background(), team, Event{Name: EventTest})

	if len(queue.enqueued) != 0 {
		t.Fatalf("expected no tasks for disabled channel, got %d", len(queue.enqueued))
	}

	// The synchronous test path reports the misconfiguration instead.
	err := channel.SendTest(context.Background(), team)
	if !IsNotConfigured(err) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
	if len(queue.delivered) != 0 {
		t.Fatalf("expected no delivery for disabled channel, got %d", len(queue.delivered))
	}
}

func TestWebhookDispatchCarriesCredential(t *testing.T) {
	queue, channel, notifier, team := webhookFixture(&models.WebhookSettings{
		Enabled:           true,
		URL:               "https://hooks.example.com/deploys",
		APIKey:            "k123",
		DeploymentSuccess: true,
	})

	notifier.Notify(context.Background(), team, deploymentEvent(EventDeploymentSuccess))
	if err := channel.SendTest(context.Background(), team); err != nil {
		t.Fatalf("unexpected test send error: %v", err)
	}

	if len(queue.enqueued) != 1 || len(queue.delivered) != 1 {
		t.Fatalf("expected one enqueued and one delivered task, got %d/%d",
			len(queue.enqueued), len(queue.delivered))
	}
	if queue.enqueued[0].APIKey != "k123" {
		t.Errorf("expected credential on enqueued task, got %q", queue.enqueued[0].APIKey)
	}
	if queue.delivered[0].APIKey != "k123" {
		t.Errorf("expected credential on test task, got %q", queue.delivered[0].APIKey)
	}
}

func TestWebhookSendMissingURL(t *testing.T) {
	queue, channel, _, team := webhookFixture(&models.WebhookSettings{
		Enabled:           true,
		URL:               "   ",
		DeploymentSuccess: true,
	})

	if err := channel.Send(context.Background(), team, deploymentEvent(EventDeploymentSuccess)); err != nil {
		t.Fatalf("missing URL must be a silent no-op, got %v", err)
	}
	if len(queue.enqueued) != 0 {
		t.Fatalf("expected no tasks without a URL, got %d", len(queue.enqueued))
	}
}

func TestWebhookSendTestDeliveryError(t *testing.T) {
	queue, channel, _, team := webhookFixture(&models.WebhookSettings{
		Enabled: true,
		URL:     "https://hooks.example.com/deploys",
	})
	queue.deliverErr = errors.New("unexpected status 500")

	err := channel.SendTest(context.Background(), team)
	if err == nil {
		t.Fatal("expected delivery error to propagate from test send")
	}
	if IsNotConfigured(err) {
		t.Error("delivery failure must not be reported as not-configured")
	}
}
