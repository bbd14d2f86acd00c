package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/domain/types"
)

// ConfigurationError lists every required setting that is missing
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return strings.Join(e.Missing, ", ") + " needs to be set in env"
}

// Requirement is a configuration section with mandatory settings
type Requirement interface {
	Missing() []string
}

// Validate collects missing settings of all sections into one
// ConfigurationError tagged as a precondition failure
func Validate(sections ...Requirement) error {
	var missing []string
	for _, s := range sections {
		missing = append(missing, s.Missing()...)
	}
	if len(missing) == 0 {
		return nil
	}

	return goerr.Wrap(&ConfigurationError{Missing: missing}, "invalid configuration",
		goerr.V("missing", missing),
		goerr.T(types.ErrTagPrecondition),
	)
}
