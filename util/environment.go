package util

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type clientEnvironment struct {
	ServerURL  string
	ConfigFile string
	LogLevel   string
}

// Env is a helper object for accessing environment variables.
var Env = &clientEnvironment{
	ServerURL:  "POKER_SERVER_URL",
	ConfigFile: "POKER_CONFIG_FILE",
	LogLevel:   "LOG_LEVEL",
}

// GetServerURL returns the server url override, empty when unset. The
// config file carries the default.
func (c *clientEnvironment) GetServerURL() string {
	return os.Getenv(c.ServerURL)
}

func (c *clientEnvironment) GetConfigFile() string {
	return os.Getenv(c.ConfigFile)
}

func (c *clientEnvironment) GetLogLevel() zerolog.Level {
	v := os.Getenv(c.LogLevel)
	if v == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(strings.ToLower(v))
	if err != nil {
		environmentLogger.Error().Msgf("Invalid log level [%s], using info", v)
		return zerolog.InfoLevel
	}
	return level
}
