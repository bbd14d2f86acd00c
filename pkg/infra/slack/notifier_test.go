package slack_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/slack-go/slack"

	"github.com/m-mizutani/readmebump/pkg/domain/model"
	slackinfra "github.com/m-mizutani/readmebump/pkg/infra/slack"
)

func newWebhookServer(t *testing.T, status int) (*httptest.Server, *[]slack.WebhookMessage) {
	t.Helper()
	var received []slack.WebhookMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg slack.WebhookMessage
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		received = append(received, msg)
		w.WriteHeader(status)
	}))
	t.Cleanup(server.Close)
	return server, &received
}

func TestNotifier_NotifySuccess(t *testing.T) {
	server, received := newWebhookServer(t, http.StatusOK)
	n := slackinfra.NewNotifier(server.URL)

	req := &model.BumpRequest{Repo: "ponylang/peg", Version: "0.2.0"}
	result := &model.BumpResult{Readme: "README.md", Changed: true, CommitHash: "0123456789abcdef", Retries: 2}

	gt.NoError(t, n.NotifySuccess(context.Background(), req, result))
	gt.Equal(t, len(*received), 1)
	gt.String(t, (*received)[0].Text).Contains("ponylang/peg")
	gt.String(t, (*received)[0].Text).Contains("0.2.0")
	gt.String(t, (*received)[0].Text).Contains("01234567")
}

func TestNotifier_NotifyFailure(t *testing.T) {
	server, received := newWebhookServer(t, http.StatusOK)
	n := slackinfra.NewNotifier(server.URL)

	req := &model.BumpRequest{Repo: "ponylang/peg", Version: "0.2.0"}
	gt.NoError(t, n.NotifyFailure(context.Background(), req, errors.New("push rejected")))
	gt.Equal(t, len(*received), 1)
	gt.Equal(t, len((*received)[0].Attachments), 1)
	gt.Equal(t, (*received)[0].Attachments[0].Text, "push rejected")
}

func TestNotifier_ServerError(t *testing.T) {
	server, _ := newWebhookServer(t, http.StatusInternalServerError)
	n := slackinfra.NewNotifier(server.URL)

	req := &model.BumpRequest{Repo: "ponylang/peg", Version: "0.2.0"}
	gt.Error(t, n.NotifyFailure(context.Background(), req, errors.New("boom")))
}
