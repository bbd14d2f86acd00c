package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File is an optional TOML file with defaults. Flags and environment
// variables take precedence over it.
type File struct {
	Repository      string `toml:"repository"`
	APIURL          string `toml:"api_url"`
	Tool            string `toml:"tool"`
	GitUserName     string `toml:"git_user_name"`
	GitUserEmail    string `toml:"git_user_email"`
	SlackWebhookURL string `toml:"slack_webhook_url" masq:"secret"`
}

// FilePath holds the location of the configuration file
type FilePath struct {
	Path string
}

// Flags returns CLI flags for the configuration file
func (c *FilePath) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file with default settings",
			Destination: &c.Path,
			Sources:     cli.EnvVars("READMEBUMP_CONFIG"),
		},
	}
}

// Load reads the file. An unset path yields empty defaults.
func (c *FilePath) Load() (*File, error) {
	if c.Path == "" {
		return &File{}, nil
	}

	raw, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", c.Path))
	}

	var f File
	if err := toml.Unmarshal(raw, &f); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.Path))
	}
	return &f, nil
}
