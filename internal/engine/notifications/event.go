package notifications

import "strings"

// Lifecycle event names raised by the deployment pipeline.
const (
	EventDeploymentSuccess     = "deployment_success"
	EventDeploymentFailure     = "deployment_failure"
	EventTest                  = "test"
	EventGeneral               = "general"
	EventServerForceEnabled    = "server_force_enabled"
	EventServerForceDisabled   = "server_force_disabled"
	EventSSLCertificateRenewal = "ssl_certificate_renewal"
)

// Preview describes a pull-request preview deployment.
type Preview struct {
	PullRequestID int    `json:"pull_request_id"`
	FQDN          string `json:"fqdn,omitempty"`
}

// DeploymentContext carries the identifiers and git metadata of the
// deployment an event refers to. Fields the pipeline does not know are left
// empty; renderers tolerate absence.
type DeploymentContext struct {
	ApplicationUUID string   `json:"application_uuid"`
	ApplicationName string   `json:"application_name"`
	ProjectUUID     string   `json:"project_uuid"`
	ProjectName     string   `json:"project_name"`
	EnvironmentUUID string   `json:"environment_uuid"`
	EnvironmentName string   `json:"environment_name"`
	GitRepository   string   `json:"git_repository,omitempty"`
	GitBranch       string   `json:"git_branch,omitempty"`
	GitFullURL      string   `json:"git_full_url,omitempty"`
	DeploymentUUID  string   `json:"deployment_uuid"`
	FQDN            string   `json:"fqdn,omitempty"`
	Preview         *Preview `json:"preview,omitempty"`
}

// Event is an immutable description of something that happened, scoped to a
// single dispatch call.
type Event struct {
	Name       string            `json:"event"`
	Title      string            `json:"title,omitempty"`
	Message    string            `json:"message,omitempty"`
	Deployment DeploymentContext `json:"deployment"`
	Extra      map[string]string `json:"extra,omitempty"`
}

// FirstFQDN trims a comma-separated fqdn list down to its first entry.
func FirstFQDN(fqdn string) string {
	fqdn = strings.TrimSpace(fqdn)
	if i := strings.Index(fqdn, ","); i >= 0 {
		fqdn = strings.TrimSpace(fqdn[:i])
	}
	return fqdn
}
