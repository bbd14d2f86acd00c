package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/cli/config"
	controller "github.com/m-mizutani/readmebump/pkg/controller/http"
	gitinfra "github.com/m-mizutani/readmebump/pkg/infra/git"
	"github.com/m-mizutani/readmebump/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		fileCfg   config.FilePath
		githubCfg config.GitHub
		gitCfg    config.Git
		slackCfg  config.Slack
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, fileCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, gitCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server that bumps the README on tag webhooks",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			file, err := fileCfg.Load()
			if err != nil {
				return err
			}
			githubCfg.ApplyFile(file)
			gitCfg.ApplyFile(file)
			slackCfg.ApplyFile(file)

			if err := config.Validate(&serverCfg, &githubCfg, &gitCfg); err != nil {
				return err
			}
			repo, err := githubCfg.RepoID()
			if err != nil {
				return err
			}

			logger.Info("Starting readmebump server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("repository", repo),
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

			// Create use cases
			bumpUC := usecase.NewBump(githubClient, gitClient, gitCfg.Author(), opts...)
			releaseUC := usecase.NewRelease(bumpUC)
			webhookUC := usecase.NewWebhook(repo, releaseUC)

			// Create HTTP server with options
			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithWebhookSecret(serverCfg.WebhookSecret),
				controller.WithRepository(repo),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
