package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/types"
)

// RepoID identifies a repository in "owner/name" form
type RepoID string

// ParseRepoID validates s and returns it as a RepoID
func ParseRepoID(s string) (RepoID, error) {
	owner, name, ok := strings.Cut(s, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", goerr.New("repository must be in owner/name form",
			goerr.V("repository", s),
			goerr.T(types.ErrTagPrecondition),
		)
	}
	return RepoID(s), nil
}

func (r RepoID) String() string { return string(r) }

// Owner returns the owner part of the identifier
func (r RepoID) Owner() string {
	owner, _, _ := strings.Cut(string(r), "/")
	return owner
}

// Name returns the repository name part of the identifier
func (r RepoID) Name() string {
	_, name, _ := strings.Cut(string(r), "/")
	return name
}

// RepositoryInfo is what the hosting service reports about a repository
type RepositoryInfo struct {
	ID            RepoID
	CloneURL      string
	DefaultBranch string
}

// Signature is the git identity used for commits
type Signature struct {
	Name  string
	Email string
}
