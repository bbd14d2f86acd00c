package slack

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/interfaces"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
	"github.com/slack-go/slack"
)

type notifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewNotifier creates a Notifier posting to a Slack incoming webhook
func NewNotifier(webhookURL string) interfaces.Notifier {
	return &notifier{
		webhookURL: webhookURL,
		httpClient: http.DefaultClient,
	}
}

// NotifySuccess posts a message describing a completed bump
func (n *notifier) NotifySuccess(ctx context.Context, req *model.BumpRequest, result *model.BumpResult) error {
	var text string
	if result.Changed {
		text = fmt.Sprintf(":white_check_mark: Updated %s of %s to %s (commit %s, %d retries)",
			result.Readme, req.Repo, req.Version, shortHash(result.CommitHash), result.Retries)
	} else {
		text = fmt.Sprintf(":information_source: %s of %s already references %s", result.Readme, req.Repo, req.Version)
	}

	return n.post(ctx, &slack.WebhookMessage{Text: text})
}

// NotifyFailure posts a message describing a failed bump
func (n *notifier) NotifyFailure(ctx context.Context, req *model.BumpRequest, err error) error {
	msg := &slack.WebhookMessage{
		Text: fmt.Sprintf(":x: Failed to update README of %s to %s", req.Repo, req.Version),
		Attachments: []slack.Attachment{
			{
				Color: "danger",
				Text:  err.Error(),
			},
		},
	}
	return n.post(ctx, msg)
}

func (n *notifier) post(ctx context.Context, msg *slack.WebhookMessage) error {
	if err := slack.PostWebhookCustomHTTPContext(ctx, n.webhookURL, n.httpClient, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack webhook")
	}
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
