package model

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/types"
)

// ReadmeCandidates lists README file names in lookup order
var ReadmeCandidates = []string{
	"README.md",
	"README.rst",
}

// ErrReadmeNotFound is returned when no README candidate exists
var ErrReadmeNotFound = errors.New("unable to find README")

// FindReadme returns the first of ReadmeCandidates that exists in dir as a
// regular file. The returned name is relative to dir.
func FindReadme(dir string) (string, error) {
	for _, name := range ReadmeCandidates {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", goerr.Wrap(err, "failed to stat README candidate", goerr.V("path", filepath.Join(dir, name)))
		}
		if info.Mode().IsRegular() {
			return name, nil
		}
	}

	return "", goerr.Wrap(ErrReadmeNotFound, "no README candidate exists",
		goerr.V("dir", dir),
		goerr.V("candidates", ReadmeCandidates),
		goerr.T(types.ErrTagPrecondition),
	)
}
