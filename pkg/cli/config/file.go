package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

const (
	configDirName   = "notofonts"
	configFileName  = "config.toml"
	legacyTokenFile = ".fedora-notofonts"
)

// File is the optional TOML configuration file. Values given by flags or
// environment variables take precedence over it.
type File struct {
	Organization string   `toml:"organization"`
	Exclude      []string `toml:"exclude"`
	Token        string   `toml:"token" masq:"secret"`
	App          FileApp  `toml:"app"`
}

// FileApp holds GitHub App credentials of the configuration file
type FileApp struct {
	ID             int64  `toml:"id"`
	InstallationID int64  `toml:"installation_id"`
	PrivateKey     string `toml:"private_key" masq:"secret"`
}

// DefaultConfigPath returns the configuration file path under the user config directory
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", goerr.Wrap(err, "failed to find user config directory")
	}
	return filepath.Join(dir, configDirName, configFileName), nil
}

// LoadFile reads the configuration file at path. An empty path means the
// default location, where a missing file is not an error.
func LoadFile(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultConfigPath(); err != nil {
			return &File{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return &file, nil
}

// readLegacyToken reads the plain text token file kept by earlier releases
func readLegacyToken() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", nil
	}
	return readTokenFile(filepath.Join(dir, legacyTokenFile))
}

func readTokenFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to read token file", goerr.V("path", path))
	}
	return strings.TrimSpace(string(data)), nil
}
