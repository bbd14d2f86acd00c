package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/cli/config"
	"github.com/m-mizutani/readmebump/pkg/domain/model"
	gitinfra "github.com/m-mizutani/readmebump/pkg/infra/git"
	"github.com/m-mizutani/readmebump/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdBump() *cli.Command {
	var (
		fileCfg    config.FilePath
		githubCfg  config.GitHub
		gitCfg     config.Git
		releaseCfg config.Release
		slackCfg   config.Slack
	)

	var flags []cli.Flag
	flags = append(flags, fileCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, gitCfg.Flags()...)
	flags = append(flags, releaseCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "bump",
		Aliases: []string{"b"},
		Usage:   "Rewrite README version references for the released tag and push",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			file, err := fileCfg.Load()
			if err != nil {
				return err
			}
			githubCfg.ApplyFile(file)
			gitCfg.ApplyFile(file)
			slackCfg.ApplyFile(file)

			if err := config.Validate(&githubCfg, &gitCfg, &releaseCfg); err != nil {
				return err
			}

			repo, err := githubCfg.RepoID()
			if err != nil {
				return err
			}
			version, err := releaseCfg.Version()
			if err != nil {
				return err
			}

			logger := ctxlog.From(ctx).With("run_id", uuid.NewString())
			ctx = ctxlog.With(ctx, logger)

			logger.Debug("Configuration",
				slog.Any("github", githubCfg),
				slog.Any("git", gitCfg),
				slog.Any("release", releaseCfg),
			)

			githubClient, err := githubCfg.NewClient()
			if err != nil {
				return err
			}
			gitClient := gitinfra.NewClient(gitinfra.WithBasicAuth(gitCfg.Actor, githubCfg.Token))

			opts := []usecase.BumpOption{usecase.WithTool(gitCfg.Tool)}
			if n := slackCfg.Notifier(); n != nil {
				opts = append(opts, usecase.WithNotifier(n))
			}
			bumpUC := usecase.NewBump(githubClient, gitClient, gitCfg.Author(), opts...)

			result, err := bumpUC.Bump(ctx, &model.BumpRequest{
				Repo:    repo,
				Version: version,
				WorkDir: gitCfg.WorkDir,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to bump README", goerr.V("repo", repo), goerr.V("version", version))
			}

			logger.Info("Done",
				"readme", result.Readme,
				"changed", result.Changed,
				"commit", result.CommitHash,
			)
			return nil
		},
	}
}
