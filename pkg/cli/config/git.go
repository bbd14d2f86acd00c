package config

import (
	"github.com/m-mizutani/readmebump/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Git holds commit author and working copy configuration
type Git struct {
	Actor     string
	UserName  string
	UserEmail string
	Tool      string
	WorkDir   string
}

// Flags returns CLI flags for git configuration
func (c *Git) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "actor",
			Usage:       "User name for HTTPS git authentication",
			Destination: &c.Actor,
			Sources:     cli.EnvVars("GITHUB_ACTOR"),
		},
		&cli.StringFlag{
			Name:        "git-user-name",
			Usage:       "Commit author name",
			Destination: &c.UserName,
			Sources:     cli.EnvVars("INPUT_GIT_USER_NAME"),
		},
		&cli.StringFlag{
			Name:        "git-user-email",
			Usage:       "Commit author email",
			Destination: &c.UserEmail,
			Sources:     cli.EnvVars("INPUT_GIT_USER_EMAIL"),
		},
		&cli.StringFlag{
			Name:        "tool",
			Usage:       "Package manager named in install examples (default: " + model.DefaultTool + ")",
			Destination: &c.Tool,
			Sources:     cli.EnvVars("READMEBUMP_TOOL"),
		},
		&cli.StringFlag{
			Name:        "workdir",
			Usage:       "Directory to clone into; a temporary directory when empty",
			Destination: &c.WorkDir,
			Sources:     cli.EnvVars("READMEBUMP_WORKDIR"),
		},
	}
}

// Missing returns the environment keys that are required but unset
func (c *Git) Missing() []string {
	var missing []string
	if c.Actor == "" {
		missing = append(missing, "GITHUB_ACTOR")
	}
	if c.UserName == "" {
		missing = append(missing, "INPUT_GIT_USER_NAME")
	}
	if c.UserEmail == "" {
		missing = append(missing, "INPUT_GIT_USER_EMAIL")
	}
	return missing
}

// ApplyFile fills unset fields from the configuration file and falls back to
// built-in defaults
func (c *Git) ApplyFile(f *File) {
	if c.UserName == "" {
		c.UserName = f.GitUserName
	}
	if c.UserEmail == "" {
		c.UserEmail = f.GitUserEmail
	}
	if c.Tool == "" {
		c.Tool = f.Tool
	}
	if c.Tool == "" {
		c.Tool = model.DefaultTool
	}
}

// Author returns the commit signature
func (c *Git) Author() model.Signature {
	return model.Signature{
		Name:  c.UserName,
		Email: c.UserEmail,
	}
}
