package config_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/readmebump/pkg/cli/config"
	"github.com/m-mizutani/readmebump/pkg/domain/types"
)

func TestValidate(t *testing.T) {
	t.Run("all settings present", func(t *testing.T) {
		github := &config.GitHub{Token: "token", Repository: "ponylang/peg"}
		git := &config.Git{Actor: "bot", UserName: "Bot", UserEmail: "bot@example.com"}
		release := &config.Release{Ref: "refs/tags/0.2.0"}

		gt.NoError(t, config.Validate(github, git, release))
	})

	t.Run("lists every missing setting", func(t *testing.T) {
		github := &config.GitHub{Repository: "ponylang/peg"}
		git := &config.Git{Actor: "bot"}
		release := &config.Release{}

		err := config.Validate(github, git, release)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, types.ErrTagPrecondition))

		var cfgErr *config.ConfigurationError
		gt.True(t, errors.As(err, &cfgErr))
		gt.Equal(t, cfgErr.Missing, []string{
			"API_CREDENTIALS",
			"INPUT_GIT_USER_NAME",
			"INPUT_GIT_USER_EMAIL",
			"GITHUB_REF",
		})
		gt.String(t, cfgErr.Error()).Contains("API_CREDENTIALS")
	})

	t.Run("server requires webhook secret", func(t *testing.T) {
		err := config.Validate(&config.Server{Addr: "localhost:8080"})
		var cfgErr *config.ConfigurationError
		gt.True(t, errors.As(err, &cfgErr))
		gt.Equal(t, cfgErr.Missing, []string{"READMEBUMP_WEBHOOK_SECRET"})
	})
}

func TestRelease_Version(t *testing.T) {
	v, err := (&config.Release{Ref: "refs/tags/1.2.3"}).Version()
	gt.NoError(t, err)
	gt.Equal(t, v.String(), "1.2.3")

	_, err = (&config.Release{Ref: "refs/heads/main"}).Version()
	gt.Error(t, err)
}
