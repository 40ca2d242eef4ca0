package notifications

import (
	"context"
	"testing"

	"github.com/davidmokos/coolify/internal/platform/models"
)

func TestSummaryText(t *testing.T) {
	preview := deploymentEvent(EventDeploymentSuccess)
	preview.Deployment.Preview = &Preview{PullRequestID: 7}

	cases := []struct {
		name string
		ev   Event
		want string
	}{
		{"success", deploymentEvent(EventDeploymentSuccess), "New version successfully deployed of api"},
		{"failure", deploymentEvent(EventDeploymentFailure), "Deployment failed of api"},
		{"preview success", preview, "Pull request #7 of api deployed successfully"},
		{"test", Event{Name: EventTest}, "This is a test notification."},
		{"general message", Event{Name: EventGeneral, Message: "disk full"}, "disk full"},
		{"general title only", Event{Name: EventGeneral, Title: "Alert"}, "Alert"},
		{"bare event", Event{Name: "ssl_certificate_renewal"}, "ssl_certificate_renewal"},
	}
	for _, c := range cases {
		if got := summaryText(c.ev); got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}

func TestTelegramTaskTargetsBotAPI(t *testing.T) {
	store := &fakeSettingsStore{
		telegram: &models.TelegramSettings{
			Enabled: true, Token: "bot-token", ChatID: "-100123",
			DeploymentSuccess: true,
		},
	}
	queue := &captureQueue{}
	channel := NewTelegramChannel(store, queue)

	err := channel.Send(context.Background(), &models.Team{ID: "team_1"}, deploymentEvent(EventDeploymentSuccess))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queue.enqueued) != 1 {
		t.Fatalf("expected one task, got %d", len(queue.enqueued))
	}
	if got := queue.enqueued[0].URL; got != "https://api.telegram.org/botbot-token/sendMessage" {
		t.Errorf("unexpected telegram URL %q", got)
	}
}
