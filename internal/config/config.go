package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config interface {
	EnvConfig
	CorsConfig
	OAuthConfig
	SecurityConfig
	UpstreamConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	GetLogFile() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	OAuth
	Security
	Upstream
}

var _ Config = mainConfig{}

// Load reads the configuration from the process environment. Each envFile that
// exists is loaded first; variables already set in the environment win.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var c mainConfig
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// New assembles a Config from already populated parts.
func New(e EnvVars, c Cors, o OAuth, s Security, u Upstream) Config {
	return mainConfig{EnvVars: e, Cors: c, OAuth: o, Security: s, Upstream: u}
}

// Missing lists the secrets and settings that must be present for the gateway
// to serve anything but errors.
func Missing(c Config) []string {
	var missing []string
	check := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}
	check(googleClientIDVar, c.GetClientID())
	check(googleClientSecretVar, c.GetClientSecret())
	check(redirectURIVar, c.GetRedirectURI())
	check(workspaceDomainVar, c.GetAllowedDomain())
	check(jwtSecretVar, c.GetSigningSecret())
	check(geminiAPIKeyVar, c.GetUpstreamAPIKey())
	return missing
}
