package notifications

import "fmt"

// summaryText is the one-line rendering used by the chat-style channels.
// Their full formatting (embeds, blocks, buttons) lives outside this
// subsystem; here they only need a readable summary.
func summaryText(ev Event) string {
	d := ev.Deployment
	switch ev.Name {
	case EventDeploymentSuccess:
		if d.Preview != nil {
			return fmt.Sprintf("Pull request #%d of %s deployed successfully", d.Preview.PullRequestID, d.ApplicationName)
		}
		return fmt.Sprintf("New version successfully deployed of %s", d.ApplicationName)
	case EventDeploymentFailure:
		if d.Preview != nil {
			return fmt.Sprintf("Pull request #%d deployment failed for %s", d.Preview.PullRequestID, d.ApplicationName)
		}
		return fmt.Sprintf("Deployment failed of %s", d.ApplicationName)
	case EventTest:
		return "This is a test notification."
	default:
		if ev.Message != "" {
			return ev.Message
		}
		if ev.Title != "" {
			return ev.Title
		}
		return ev.Name
	}
}
