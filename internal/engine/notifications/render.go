package notifications

import (
	"fmt"
	"time"

	"github.com/davidmokos/coolify/internal/platform/models"
)

// DeploymentLookup resolves a deployment UUID to its recorded commit
// information. A miss is not an error, just absent enrichment.
type DeploymentLookup interface {
	FindByUUID(uuid string) (*models.Deployment, error)
}

// WebhookRenderer turns events into WebhookMessages.
type WebhookRenderer struct {
	deployments DeploymentLookup
	baseURL     string
	now         func() time.Time
}

func NewWebhookRenderer(deployments DeploymentLookup, baseURL string) *WebhookRenderer {
	return &WebhookRenderer{
		deployments: deployments,
		baseURL:     baseURL,
		now:         time.Now,
	}
}

func (r *WebhookRenderer) Render(ev Event) (*WebhookMessage, error) {
	switch ev.Name {
	case EventDeploymentSuccess:
		return r.renderDeployment(ev, true)
	case EventDeploymentFailure:
		return r.renderDeployment(ev, false)
	case EventTest:
		return r.renderTest(ev), nil
	default:
		return r.renderGeneral(ev), nil
	}
}

func (r *WebhookRenderer) renderDeployment(ev Event, success bool) (*WebhookMessage, error) {
	d := ev.Deployment

	metadata := map[string]interface{}{
		"project_uuid":     d.ProjectUUID,
		"environment_uuid": d.EnvironmentUUID,
		"application_uuid": d.ApplicationUUID,
		"deployment_uuid":  d.DeploymentUUID,

		"project":     d.ProjectName,
		"environment": d.EnvironmentName,
		"application": d.ApplicationName,

		"git_repository": d.GitRepository,
		"git_branch":     d.GitBranch,
		"git_full_url":   d.GitFullURL,
	}

	deployment, err := r.deployments.FindByUUID(d.DeploymentUUID)
	if err != nil {
		return nil, fmt.Errorf("deployment lookup: %w", err)
	}
	if deployment != nil && deployment.CommitSHA != "" {
		sha := deployment.CommitSHA
		metadata["commit_sha"] = sha
		if len(sha) > 7 {
			sha = sha[:7]
		}
		metadata["commit_id"] = sha
		metadata["commit_message"] = deployment.CommitMessage
	} else {
		metadata["commit_sha"] = nil
		metadata["commit_id"] = nil
		metadata["commit_message"] = nil
	}

	var title, description string
	if d.Preview != nil {
		if success {
			title = fmt.Sprintf("Pull request #%d successfully deployed", d.Preview.PullRequestID)
			description = fmt.Sprintf("Pull request deployment successful for %s", d.ApplicationName)
		} else {
			title = fmt.Sprintf("Pull request #%d deployment failed", d.Preview.PullRequestID)
			description = fmt.Sprintf("Pull request deployment failed for %s", d.ApplicationName)
		}
		if d.Preview.FQDN != "" {
			metadata["preview_url"] = d.Preview.FQDN
		}
		metadata["pull_request_id"] = d.Preview.PullRequestID
	} else {
		if success {
			title = "Deployment successful"
			description = fmt.Sprintf("New version successfully deployed for %s", d.ApplicationName)
		} else {
			title = "Deployment failed"
			description = fmt.Sprintf("Deployment failed for %s", d.ApplicationName)
		}
		if fqdn := FirstFQDN(d.FQDN); fqdn != "" {
			metadata["application_url"] = fqdn
		}
	}

	status := StatusSuccess
	if !success {
		status = StatusFailure
	}

	msg := NewWebhookMessage(title, description, status, metadata)
	msg.Critical = !success

	msg.AddField("deployment_logs_url", r.deploymentLogsURL(d))
	msg.AddField("timestamp", r.now().Format(time.RFC3339))
	for k, v := range ev.Extra {
		msg.AddField(k, v)
	}

	return msg, nil
}

func (r *WebhookRenderer) renderTest(ev Event) *WebhookMessage {
	msg := NewWebhookMessage(
		"Test notification",
		"This is a test notification to verify webhook delivery.",
		StatusSuccess,
		map[string]interface{}{},
	)
	msg.AddField("timestamp", r.now().Format(time.RFC3339))
	for k, v := range ev.Extra {
		msg.AddField(k, v)
	}
	return msg
}

func (r *WebhookRenderer) renderGeneral(ev Event) *WebhookMessage {
	title := ev.Title
	if title == "" {
		title = "Notification"
	}

	msg := NewWebhookMessage(title, ev.Message, StatusSuccess, map[string]interface{}{})
	msg.AddField("timestamp", r.now().Format(time.RFC3339))
	for k, v := range ev.Extra {
		msg.AddField(k, v)
	}
	return msg
}

func (r *WebhookRenderer) deploymentLogsURL(d DeploymentContext) string {
	return fmt.Sprintf("%s/project/%s/environment/%s/application/%s/deployment/%s",
		r.baseURL, d.ProjectUUID, d.EnvironmentUUID, d.ApplicationUUID, d.DeploymentUUID)
}
