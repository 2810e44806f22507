package config

import (
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service svcConfig
}

type svcConfig struct {
	// ServerUrl is the CampusHub API origin (the part before /api/...).
	ServerUrl string `envconfig:"HUBADMIN_SERVER_URL" default:"http://localhost:5000"`
	// AssetBaseUrl is prepended to stored attachment paths to form a
	// fetchable URL.
	AssetBaseUrl string `envconfig:"HUBADMIN_ASSET_BASE_URL" default:"http://localhost:5000/uploads"`
	// SessionFile is where the login token is persisted. Empty means
	// ~/.hubadmin/session.yaml.
	SessionFile string `envconfig:"HUBADMIN_SESSION_FILE" default:""`
	LogLevel    string `envconfig:"HUBADMIN_LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	if singleConfig == nil {
		singleConfig = new(Config)
		if err := envconfig.Process("", singleConfig); err != nil {
			return nil, err
		}
	}
	return singleConfig, nil
}

// SessionPath resolves the configured session file, falling back to the
// default location under the user's home directory.
func (c *Config) SessionPath() string {
	if c.Service.SessionFile != "" {
		return c.Service.SessionFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".hubadmin", "session.yaml")
	}
	return filepath.Join(home, ".hubadmin", "session.yaml")
}
