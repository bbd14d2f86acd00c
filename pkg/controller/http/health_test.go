package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	controller "github.com/m-mizutani/readmebump/pkg/controller/http"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
)

func TestHealthEndpoint(t *testing.T) {
	ctx := context.Background()

	server, err := controller.NewServer(
		ctx,
		&MockWebhookUseCase{},
		controller.WithAddr("localhost:0"),
		controller.WithWebhookSecret("test-secret"),
		controller.WithRepository("ponylang/peg"),
	)
	gt.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	server.Handler.ServeHTTP(w, req)

	gt.Equal(t, w.Code, http.StatusOK)

	var status model.HealthStatus
	gt.NoError(t, json.NewDecoder(w.Body).Decode(&status))
	gt.Equal(t, status.Status, "healthy")
	gt.Equal(t, status.Service, "readmebump")
	gt.True(t, status.Version != "")
	gt.Equal(t, status.Repository, model.RepoID("ponylang/peg"))
}
