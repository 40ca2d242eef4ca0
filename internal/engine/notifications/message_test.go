package notifications

import (
	"reflect"
	"testing"
	"time"

	"github.com/davidmokos/coolify/internal/platform/config"
)

func TestWebhookMessagePayload(t *testing.T) {
	msg := NewWebhookMessage(
		"Deployment successful",
		"New version successfully deployed for api",
		StatusSuccess,
		map[string]interface{}{"application": "api"},
	)
	msg.AddField("deployment_logs_url", "https://coolify.example.com/logs")

	now := time.Date(2026, 5, 4, 12, 30, 0, 0, time.UTC)
	payload := msg.Payload(now, "Coolify v4.0.0")

	want := map[string]interface{}{
		"title":       "Deployment successful",
		"description": "New version successfully deployed for api",
		"status":      "success",
		"timestamp":   "2026-05-04T12:30:00Z",
		"metadata":    map[string]interface{}{"application": "api"},
		"data":        map[string]string{"deployment_logs_url": "https://coolify.example.com/logs"},
		"critical":    false,
		"source":      "Coolify v4.0.0",
	}
	if !reflect.DeepEqual(payload, want) {
		t.Errorf("payload mismatch:\ngot  %#v\nwant %#v", payload, want)
	}
}

func TestWebhookMessageFields(t *testing.T) {
	msg := NewWebhookMessage("t", "d", StatusFailure, nil)
	msg.AddField("a", "1").AddField("b", "2")

	if v, ok := msg.Field("a"); !ok || v != "1" {
		t.Errorf("expected field a=1, got %q (%v)", v, ok)
	}
	if _, ok := msg.Field("missing"); ok {
		t.Error("expected missing field to report absent")
	}
	if msg.Metadata == nil {
		t.Error("expected nil metadata to be initialized")
	}
}

func TestSource(t *testing.T) {
	selfHosted := config.InstanceConfig{Name: "Coolify", Version: "4.0.0"}
	if got := Source(selfHosted); got != "Coolify v4.0.0" {
		t.Errorf("expected 'Coolify v4.0.0', got %q", got)
	}

	cloud := config.InstanceConfig{Name: "Coolify", Version: "4.0.0", Cloud: true}
	if got := Source(cloud); got != "Coolify Cloud" {
		t.Errorf("expected 'Coolify Cloud', got %q", got)
	}
}
