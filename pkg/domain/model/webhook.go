package model

import (
	"strings"
	"time"
)

// WebhookEventType represents the type of webhook event received
type WebhookEventType string

const (
	EventTypePush    WebhookEventType = "push"
	EventTypeRelease WebhookEventType = "release"
	EventTypeUnknown WebhookEventType = "unknown"
)

// WebhookEvent represents a webhook event received from GitHub
type WebhookEvent struct {
	ID         string           // Retrieved from X-GitHub-Delivery header
	Type       WebhookEventType // Retrieved from X-GitHub-Event header
	Action     string           // Event action (e.g., released); empty for push
	Repository string           // Repository full name
	Sender     string           // Sender username
	Ref        string           // Pushed ref or refs/tags/<tag_name> for releases
	Created    bool             // Push created the ref
	ReceivedAt time.Time        // Time when the event was received
	RawPayload []byte           // Raw JSON payload
}

// IsSupportedEvent checks if the event announces a new tag
func (e *WebhookEvent) IsSupportedEvent() bool {
	switch e.Type {
	case EventTypePush:
		return e.Created && strings.HasPrefix(e.Ref, TagRefPrefix) && e.Ref != TagRefPrefix
	case EventTypeRelease:
		return e.Action == "released"
	default:
		return false
	}
}
