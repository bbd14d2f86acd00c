package config

import (
	"github.com/m-mizutani/readmebump/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Release holds the tag that triggered the run
type Release struct {
	Ref string
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "ref",
			Usage:       "Tag reference of the release, e.g. refs/tags/1.2.3",
			Destination: &c.Ref,
			Sources:     cli.EnvVars("GITHUB_REF"),
		},
	}
}

// Missing returns the environment keys that are required but unset
func (c *Release) Missing() []string {
	if c.Ref == "" {
		return []string{"GITHUB_REF"}
	}
	return nil
}

// Version extracts the version from Ref
func (c *Release) Version() (model.Version, error) {
	return model.ParseTagRef(c.Ref)
}
