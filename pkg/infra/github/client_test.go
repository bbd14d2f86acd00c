package github_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	githubinfra "github.com/m-mizutani/readmebump/pkg/infra/github"
)

func TestClient_GetRepository(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"full_name":      "ponylang/peg",
			"clone_url":      "https://github.com/ponylang/peg.git",
			"default_branch": "main",
		})
	}))
	defer server.Close()

	client, err := githubinfra.NewClient("test-token", githubinfra.WithBaseURL(server.URL+"/"))
	gt.NoError(t, err)

	info, err := client.GetRepository(context.Background(), "ponylang/peg")
	gt.NoError(t, err)
	gt.Equal(t, info.CloneURL, "https://github.com/ponylang/peg.git")
	gt.Equal(t, info.DefaultBranch, "main")
	gt.Equal(t, gotAuth, "Bearer test-token")
	gt.Equal(t, gotPath, "/api/v3/repos/ponylang/peg")
}

func TestClient_GetRepository_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient("test-token", githubinfra.WithBaseURL(server.URL+"/"))
	gt.NoError(t, err)

	_, err = client.GetRepository(context.Background(), "ponylang/missing")
	gt.Error(t, err)
}
