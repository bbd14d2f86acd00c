package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/readmebump/pkg/domain/interfaces"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
)

// MockGitHubClient is a mock implementation of GitHubClient
type MockGitHubClient struct {
	getRepositoryFunc func(ctx context.Context, repo model.RepoID) (*model.RepositoryInfo, error)
	calls             int
}

func (m *MockGitHubClient) GetRepository(ctx context.Context, repo model.RepoID) (*model.RepositoryInfo, error) {
	m.calls++
	if m.getRepositoryFunc != nil {
		return m.getRepositoryFunc(ctx, repo)
	}
	return &model.RepositoryInfo{
		ID:            repo,
		CloneURL:      "https://github.com/" + repo.String() + ".git",
		DefaultBranch: "main",
	}, nil
}

// MockGitClient returns a MockGitRepository whose worktree is seeded with files
type MockGitClient struct {
	files     map[string]string
	repo      *MockGitRepository
	cloneErr  error
	cloneURLs []string
}

func (m *MockGitClient) Clone(ctx context.Context, url, branch, dir string) (interfaces.GitRepository, error) {
	m.cloneURLs = append(m.cloneURLs, url)
	if m.cloneErr != nil {
		return nil, m.cloneErr
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	for name, content := range m.files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			return nil, err
		}
	}

	if m.repo == nil {
		m.repo = &MockGitRepository{}
	}
	m.repo.dir = dir
	return m.repo, nil
}

type MockCommit struct {
	Path    string
	Message string
	Author  model.Signature
	Content string
}

// MockGitRepository records commits and simulates push outcomes
type MockGitRepository struct {
	dir string

	pushFunc   func(ctx context.Context, attempt int) error
	resyncFunc func(ctx context.Context, dir string) error

	commits     []MockCommit
	pushCalls   int
	resyncCalls int
}

func (m *MockGitRepository) Dir() string { return m.dir }

func (m *MockGitRepository) Commit(ctx context.Context, path, message string, author model.Signature) (string, error) {
	content, err := os.ReadFile(filepath.Join(m.dir, path))
	if err != nil {
		return "", err
	}
	m.commits = append(m.commits, MockCommit{Path: path, Message: message, Author: author, Content: string(content)})
	return fmt.Sprintf("commit-%d", len(m.commits)), nil
}

func (m *MockGitRepository) Push(ctx context.Context) error {
	m.pushCalls++
	if m.pushFunc != nil {
		return m.pushFunc(ctx, m.pushCalls)
	}
	return nil
}

func (m *MockGitRepository) Resync(ctx context.Context) error {
	m.resyncCalls++
	if m.resyncFunc != nil {
		return m.resyncFunc(ctx, m.dir)
	}
	return nil
}

// MockNotifier records notifications
type MockNotifier struct {
	successes []*model.BumpResult
	failures  []error
	err       error
}

func (m *MockNotifier) NotifySuccess(ctx context.Context, req *model.BumpRequest, result *model.BumpResult) error {
	m.successes = append(m.successes, result)
	return m.err
}

func (m *MockNotifier) NotifyFailure(ctx context.Context, req *model.BumpRequest, err error) error {
	m.failures = append(m.failures, err)
	return m.err
}

var errRejected = errors.New("non-fast-forward update")

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	return string(data)
}
