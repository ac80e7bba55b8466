package config

import (
	"os"
	"strings"

	"github.com/fedora-notofonts/notofonts/pkg/domain/interfaces"
	githubinfra "github.com/fedora-notofonts/notofonts/pkg/infra/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// ErrNoCredential is returned when neither a token nor GitHub App credentials are configured
var ErrNoCredential = goerr.New("GitHub credential is not configured. " +
	"Create a personal access token with public_repo, read:packages and read:project scopes " +
	"and set it with --github-token or NOTOFONTS_GITHUB_TOKEN")

// GitHub holds GitHub API configuration
type GitHub struct {
	Token          string `masq:"secret"`
	TokenFile      string
	AppID          int64
	InstallationID int64
	PrivateKey     string `masq:"secret"`
	BaseURL        string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("NOTOFONTS_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-token-file",
			Usage:       "File containing the GitHub personal access token",
			Destination: &c.TokenFile,
			Sources:     cli.EnvVars("NOTOFONTS_GITHUB_TOKEN_FILE"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("NOTOFONTS_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("NOTOFONTS_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "GitHub App private key, PEM content or file path",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("NOTOFONTS_GITHUB_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-base-url",
			Usage:       "GitHub API base URL, for GitHub Enterprise",
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("NOTOFONTS_GITHUB_BASE_URL"),
		},
	}
}

// Merge fills unset credentials from the configuration file and the legacy token file
func (c *GitHub) Merge(file *File) error {
	if c.Token == "" && c.TokenFile != "" {
		token, err := readTokenFile(c.TokenFile)
		if err != nil {
			return err
		}
		if token == "" {
			return goerr.New("token file is empty or missing", goerr.V("path", c.TokenFile))
		}
		c.Token = token
	}

	if file != nil {
		if c.Token == "" {
			c.Token = file.Token
		}
		if c.AppID == 0 {
			c.AppID = file.App.ID
		}
		if c.InstallationID == 0 {
			c.InstallationID = file.App.InstallationID
		}
		if c.PrivateKey == "" {
			c.PrivateKey = file.App.PrivateKey
		}
	}

	if c.Token == "" && !c.useApp() {
		token, err := readLegacyToken()
		if err != nil {
			return err
		}
		c.Token = token
	}

	return nil
}

func (c *GitHub) useApp() bool {
	return c.AppID != 0 && c.InstallationID != 0 && c.PrivateKey != ""
}

// NewClient creates a GitHub client. App credentials win over a token.
func (c *GitHub) NewClient() (interfaces.GitHubClient, error) {
	var opts []githubinfra.Option
	if c.BaseURL != "" {
		opts = append(opts, githubinfra.WithBaseURL(c.BaseURL))
	}

	if c.useApp() {
		privateKey, err := c.loadPrivateKey()
		if err != nil {
			return nil, err
		}
		return githubinfra.NewAppClient(c.AppID, c.InstallationID, privateKey, opts...)
	}

	if c.Token == "" {
		return nil, ErrNoCredential
	}
	return githubinfra.NewClient(c.Token, opts...)
}

func (c *GitHub) loadPrivateKey() ([]byte, error) {
	if strings.Contains(c.PrivateKey, "-----BEGIN") {
		return []byte(c.PrivateKey), nil
	}

	data, err := os.ReadFile(c.PrivateKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read GitHub App private key", goerr.V("path", c.PrivateKey))
	}
	return data, nil
}
