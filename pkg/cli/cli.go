package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/readmebump/pkg/cli/config"
	"github.com/m-mizutani/readmebump/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg config.Logger
		sentryCfg config.Sentry
		logger    *slog.Logger
	)

	app := &cli.Command{
		Name:    "readmebump",
		Usage:   "Update version references in a repository README after a release",
		Version: types.Version,
		Flags:   append(loggerCfg.Flags(), sentryCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			if err := sentryCfg.Configure(); err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdBump(),
			cmdServe(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		printPrecondition(os.Stderr, err)
		sentryCfg.Capture(err)
		return err
	}

	return nil
}

// printPrecondition prints errors the operator can fix in red
func printPrecondition(w io.Writer, err error) {
	var cfgErr *config.ConfigurationError
	if !errors.As(err, &cfgErr) && !goerr.HasTag(err, types.ErrTagPrecondition) {
		return
	}

	msg := err.Error()
	if cfgErr != nil {
		msg = cfgErr.Error()
	}
	_, _ = color.New(color.FgRed).Fprintf(w, "%s. Exiting.\n", msg)
}
