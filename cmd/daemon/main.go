package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dyercode/discord-mediaplayer-rpc/internal/config"
	"github.com/dyercode/discord-mediaplayer-rpc/internal/control"
	"github.com/dyercode/discord-mediaplayer-rpc/internal/domain"
	"github.com/dyercode/discord-mediaplayer-rpc/internal/mpris"
	"github.com/dyercode/discord-mediaplayer-rpc/internal/presence"
)

var daemonMode bool

// AppOptions assembles the dependency graph. Kept as a package variable so
// tests can check it with fx.ValidateApp.
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		newConfig,
		newDBusClient,
		newListener,
		newPresenceClient,
		newActor,
		control.NewController,
	),
	fx.Invoke(registerHooks),
)

func main() {
	pflag.BoolVarP(&daemonMode, "daemon", "d", false,
		"run until killed, without the console shutdown prompt")
	pflag.Parse()

	app := fx.New(
		AppOptions,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
	)

	// Run blocks until an OS signal or a Shutdowner call, then stops the
	// app gracefully (unsubscribe, drain, close the bus connection).
	app.Run()
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newConfig(logger *zap.Logger) domain.Config {
	return config.NewAppConfig(logger, daemonMode)
}

func newDBusClient() (mpris.DBusClient, error) {
	return mpris.NewStdDBusClient()
}

func newListener(logger *zap.Logger, conn mpris.DBusClient, cfg domain.Config) domain.Listener {
	return mpris.NewListener(logger, conn, cfg)
}

func newPresenceClient(cfg domain.Config) presence.Client {
	return presence.NewDiscordClient(cfg)
}

func newActor(logger *zap.Logger, client presence.Client, listener domain.Listener) domain.Presence {
	return presence.NewActor(logger, client, listener.Events())
}

// registerHooks wires the pipeline into the application lifecycle: subscribe,
// spawn the listener and actor tasks on start; trigger the drain protocol and
// wait for the actor on stop.
func registerHooks(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	logger *zap.Logger,
	cfg domain.Config,
	conn mpris.DBusClient,
	listener domain.Listener,
	actor domain.Presence,
	ctrl *control.Controller,
) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// The one subscription is mandatory; without it the process
			// has nothing to do.
			if err := listener.Subscribe(); err != nil {
				return fmt.Errorf("subscription setup: %w", err)
			}

			streamCtx, stopStream := context.WithCancel(context.Background())
			ctrl.Arm(listener, stopStream)

			go actor.Run()

			go func() {
				if err := listener.Run(streamCtx); err != nil {
					// Lost connection or unmodeled playback status:
					// crash loudly rather than limp along.
					logger.Fatal("Listener failed", zap.Error(err))
				}
				_ = sd.Shutdown()
			}()

			if !cfg.DaemonMode() {
				go watchConsole(logger, sd)
			}

			logger.Info("Media presence bridge started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctrl.Trigger()

			// The actor keeps consuming until the listener closes the
			// event channel, so everything queued still reaches Discord.
			select {
			case <-actor.Done():
			case <-ctx.Done():
				return ctx.Err()
			}

			if err := conn.Close(); err != nil {
				logger.Warn("Failed to close D-Bus connection", zap.Error(err))
			}
			logger.Info("Shutdown complete")
			return nil
		},
	})
}

// watchConsole blocks until the operator presses Enter, then requests
// shutdown. Daemon mode never starts this watcher.
func watchConsole(logger *zap.Logger, sd fx.Shutdowner) {
	logger.Info("Console mode: press Enter to exit")
	reader := bufio.NewReader(os.Stdin)
	if _, err := reader.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Console read failed", zap.Error(err))
	}
	if err := sd.Shutdown(); err != nil {
		logger.Warn("Shutdown request failed", zap.Error(err))
	}
}
