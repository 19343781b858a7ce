package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ajstarna/poker-client/client"
	"github.com/ajstarna/poker-client/config"
	"github.com/ajstarna/poker-client/display"
	"github.com/ajstarna/poker-client/logging"
	"github.com/ajstarna/poker-client/state"
	"github.com/ajstarna/poker-client/util"
)

var (
	cmdArgs    arg
	mainLogger = logging.GetZeroLogger("main::main", nil)
)

type arg struct {
	configFile  string
	serverURL   string
	sessionFile string
	noSession   bool
}

func init() {
	flag.StringVar(&cmdArgs.configFile, "config", "", "Client config YAML file")
	flag.StringVar(&cmdArgs.serverURL, "server", "", "Game server URL (overrides config)")
	flag.StringVar(&cmdArgs.sessionFile, "session", "", "Session file (overrides config)")
	flag.BoolVar(&cmdArgs.noSession, "no-session", false, "Do not persist the session between runs")
	flag.Parse()
}

func main() {
	os.Exit(run())
}

func run() int {
	zerolog.SetGlobalLevel(util.Env.GetLogLevel())

	configFile := cmdArgs.configFile
	if configFile == "" {
		configFile = util.Env.GetConfigFile()
	}
	conf, err := config.ReadClientConfig(configFile)
	if err != nil {
		mainLogger.Error().Msgf("Error while reading config: %+v", err)
		return 1
	}

	serverURL := conf.ServerURL
	if url := util.Env.GetServerURL(); url != "" {
		serverURL = url
	}
	if cmdArgs.serverURL != "" {
		serverURL = cmdArgs.serverURL
	}
	mainLogger.Info().Msgf("Server url: %s", serverURL)

	store := sessionStore(conf)
	app := state.NewApp(conf.ChatHistorySize)
	manager := client.NewManager(serverURL, conf, app, store)
	defer manager.Close()

	game := display.NewGame(context.Background(), conf, app, manager)
	if err := display.Run(game, conf); err != nil {
		mainLogger.Error().Msgf("Display error: %+v", err)
		return 1
	}
	return 0
}

func sessionStore(conf *config.ClientConfig) state.SessionStore {
	if cmdArgs.noSession {
		return state.NewMemorySessionStore()
	}
	fileName := conf.SessionFile
	if cmdArgs.sessionFile != "" {
		fileName = cmdArgs.sessionFile
	}
	if fileName == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			mainLogger.Warn().Msgf("Unable to resolve home directory: %v. Session will not persist.", err)
			return state.NewMemorySessionStore()
		}
		fileName = filepath.Join(home, ".poker-client", "session.json")
	}
	return state.NewFileSessionStore(fileName)
}
