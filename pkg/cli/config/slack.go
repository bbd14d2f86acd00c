package config

import (
	"github.com/m-mizutani/readmebump/pkg/domain/interfaces"
	slackinfra "github.com/m-mizutani/readmebump/pkg/infra/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds notification configuration
type Slack struct {
	WebhookURL string `masq:"secret"`
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL for run notifications",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("READMEBUMP_SLACK_WEBHOOK_URL"),
		},
	}
}

// ApplyFile fills unset fields from the configuration file
func (c *Slack) ApplyFile(f *File) {
	if c.WebhookURL == "" {
		c.WebhookURL = f.SlackWebhookURL
	}
}

// Notifier returns nil when no webhook URL is configured
func (c *Slack) Notifier() interfaces.Notifier {
	if c.WebhookURL == "" {
		return nil
	}
	return slackinfra.NewNotifier(c.WebhookURL)
}
