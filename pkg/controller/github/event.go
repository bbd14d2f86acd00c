package github

import (
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
)

// ParseEvent decodes a GitHub webhook payload into a WebhookEvent. Payloads
// of event types other than push and release yield an EventTypeUnknown event.
func ParseEvent(eventType, deliveryID string, body []byte) (*model.WebhookEvent, error) {
	payload, err := github.ParseWebHook(eventType, body)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid webhook payload", goerr.V("event_type", eventType))
	}

	event := &model.WebhookEvent{
		ID:         deliveryID,
		Type:       model.WebhookEventType(eventType),
		ReceivedAt: time.Now(),
		RawPayload: body,
	}
	FillEvent(event, payload)
	return event, nil
}

// FillEvent copies the fields relevant to tag detection from a go-github
// event into event
func FillEvent(event *model.WebhookEvent, payload interface{}) {
	switch e := payload.(type) {
	case *github.PushEvent:
		event.Type = model.EventTypePush
		event.Ref = e.GetRef()
		event.Created = e.GetCreated()
		// Push payloads carry a PushEventRepository, not a Repository
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()

	case *github.ReleaseEvent:
		event.Type = model.EventTypeRelease
		event.Action = e.GetAction()
		if tag := e.GetRelease().GetTagName(); tag != "" {
			event.Ref = model.TagRefPrefix + tag
		}
		event.Repository = e.GetRepo().GetFullName()
		event.Sender = e.GetSender().GetLogin()

	default:
		event.Type = model.EventTypeUnknown
	}
}
