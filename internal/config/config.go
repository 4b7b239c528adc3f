package config

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	mprisServicePrefix = "org.mpris.MediaPlayer2."

	defaultPlayer = "audacious"
	// Discord application id of the bridge; safe to leave public.
	defaultDiscordAppID = "1048886631823843368"
	defaultEventBuffer  = 25
)

// AppConfig holds application configuration
type AppConfig struct {
	logger        *zap.Logger
	playerService string
	discordAppID  string
	eventBuffer   int
	daemonMode    bool
}

// NewAppConfig creates a new application configuration instance. Settings are
// read from environment variables with sensible defaults; the daemon switch
// comes from the command line.
func NewAppConfig(logger *zap.Logger, daemonMode bool) *AppConfig {
	player := os.Getenv("MEDIARPC_PLAYER")
	if player == "" {
		player = defaultPlayer
	}
	// Accept either a bare player name or a full MPRIS bus name
	service := player
	if !strings.HasPrefix(service, mprisServicePrefix) {
		service = mprisServicePrefix + player
	}

	appID := os.Getenv("MEDIARPC_DISCORD_APP_ID")
	if appID == "" {
		appID = defaultDiscordAppID
	}

	buffer := defaultEventBuffer
	if raw := os.Getenv("MEDIARPC_EVENT_BUFFER"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			buffer = parsed
		} else {
			logger.Warn("Ignoring invalid MEDIARPC_EVENT_BUFFER", zap.String("value", raw))
		}
	}

	logger.Info("Configuration loaded",
		zap.String("playerService", service),
		zap.Int("eventBuffer", buffer),
		zap.Bool("daemonMode", daemonMode))

	return &AppConfig{
		logger:        logger,
		playerService: service,
		discordAppID:  appID,
		eventBuffer:   buffer,
		daemonMode:    daemonMode,
	}
}

// PlayerService returns the well-known bus name of the media player
func (c *AppConfig) PlayerService() string {
	return c.playerService
}

// DiscordAppID returns the Discord application id used for rich presence
func (c *AppConfig) DiscordAppID() string {
	return c.discordAppID
}

// EventBuffer returns the capacity of the listener-to-actor channel
func (c *AppConfig) EventBuffer() int {
	return c.eventBuffer
}

// DaemonMode reports whether the console shutdown trigger is disabled
func (c *AppConfig) DaemonMode() bool {
	return c.daemonMode
}
