package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/types"
	"golang.org/x/mod/semver"
)

// TagRefPrefix is the prefix of a git tag reference
const TagRefPrefix = "refs/tags/"

// Version is a release version taken from a tag reference. It is used
// verbatim as the substitution target.
type Version string

func (v Version) String() string { return string(v) }

// IsSemver reports whether the version is a valid semantic version, with or
// without a leading "v".
func (v Version) IsSemver() bool {
	s := string(v)
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	return semver.IsValid(s)
}

// ParseTagRef extracts the version from a reference like "refs/tags/1.0.0"
func ParseTagRef(ref string) (Version, error) {
	if !strings.HasPrefix(ref, TagRefPrefix) {
		return "", goerr.New("reference is not a tag",
			goerr.V("ref", ref),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	version := strings.TrimPrefix(ref, TagRefPrefix)
	if version == "" {
		return "", goerr.New("tag reference has no version",
			goerr.V("ref", ref),
			goerr.T(types.ErrTagPrecondition),
		)
	}

	return Version(version), nil
}
