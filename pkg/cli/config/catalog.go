package config

import (
	"github.com/fedora-notofonts/notofonts/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Catalog holds the organization and the repositories left out of it
type Catalog struct {
	Organization string
	Exclude      []string
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "organization",
			Usage:       "GitHub organization hosting the font projects (default: " + model.DefaultOrganization + ")",
			Destination: &c.Organization,
			Sources:     cli.EnvVars("NOTOFONTS_ORGANIZATION"),
		},
		&cli.StringSliceFlag{
			Name:        "exclude",
			Usage:       "Repository never resolved, can be repeated",
			Destination: &c.Exclude,
			Sources:     cli.EnvVars("NOTOFONTS_EXCLUDE"),
		},
	}
}

// Merge fills unset values from the configuration file, then from defaults
func (c *Catalog) Merge(file *File) {
	if c.Organization == "" && file != nil {
		c.Organization = file.Organization
	}
	if c.Organization == "" {
		c.Organization = model.DefaultOrganization
	}

	switch {
	case len(c.Exclude) > 0:
	case file != nil && file.Exclude != nil:
		c.Exclude = file.Exclude
	default:
		c.Exclude = model.DefaultExcludeList
	}
}
