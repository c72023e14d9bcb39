package config

import (
	"fmt"
	"strings"
)

type EnvVars struct {
	Port     string `env:"PORT"`
	AppName  string `env:"APP_NAME"`
	Env      string `env:"ENV"`
	LogLevel string `env:"LOG_LEVEL"`
	LogFile  string `env:"LOG_FILE"`
}

var _ EnvConfig = EnvVars{}

func (e EnvVars) GetPort() string {
	port := valueOr(e.Port, "8080")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (e EnvVars) GetAppName() string {
	return valueOr(e.AppName, "SAGE Gateway")
}

func (e EnvVars) GetEnv() string {
	return valueOr(e.Env, "DEV")
}

func (e EnvVars) GetLogLevel() string {
	return valueOr(e.LogLevel, "info")
}

// GetLogFile returns the path of the rotating log file, empty for stdout.
func (e EnvVars) GetLogFile() string {
	return e.LogFile
}

func valueOr(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
