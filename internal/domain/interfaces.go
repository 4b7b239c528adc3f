package domain

import "context"

// Listener defines the interface for the player-signal side of the pipeline.
// Implementations subscribe to property-change notifications and turn them
// into PresenceEvents.
type Listener interface {
	// Subscribe registers the notification match rule on the bus and stores
	// the one-shot subscription token. Must be called before Run.
	Subscribe() error

	// Unsubscribe removes the notification match rule. The token is consumed
	// exactly once; further calls return an error.
	Unsubscribe() error

	// Run processes notifications until the context is cancelled or the bus
	// connection is lost. It closes the Events channel before returning, so
	// the consumer can drain.
	Run(ctx context.Context) error

	// Events returns the channel the listener emits PresenceEvents on
	Events() <-chan PresenceEvent
}

// Presence defines the interface for the consumer that mirrors events to the
// remote presence service.
type Presence interface {
	// Run consumes events until the listener's channel is closed and empty
	Run()

	// Done is closed once Run has drained every queued event and released
	// the presence connection
	Done() <-chan struct{}
}

// Config defines the interface for application configuration
type Config interface {
	// PlayerService returns the well-known bus name of the media player
	// (e.g. "org.mpris.MediaPlayer2.audacious")
	PlayerService() string

	// DiscordAppID returns the Discord application id used for rich presence
	DiscordAppID() string

	// EventBuffer returns the capacity of the listener-to-actor channel
	EventBuffer() int

	// DaemonMode reports whether the console shutdown trigger is disabled
	DaemonMode() bool
}
