package validator

import (
	"errors"
	"net/url"
	"strings"
)

// IsWebhookURL checks that a delivery target is an absolute http(s) URL with a
// host. Loopback targets are allowed; reachability is the worker's problem.
func IsWebhookURL(raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return errors.New("webhook URL is required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return errors.New("invalid webhook URL")
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("webhook URL must use http or https")
	}
	if u.Host == "" {
		return errors.New("webhook URL must include a host")
	}

	return nil
}
