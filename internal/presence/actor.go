package presence

import (
	"github.com/dyercode/discord-mediaplayer-rpc/internal/domain"
	"go.uber.org/zap"
)

// Actor is the single consumer of the listener's event channel. It owns the
// presence connection exclusively and applies set/clear operations strictly
// in arrival order, one at a time. Push failures are logged and dropped:
// presence is cosmetic, and a transiently unavailable Discord client must
// never stall or kill the pipeline.
type Actor struct {
	logger *zap.Logger
	client Client
	events <-chan domain.PresenceEvent
	done   chan struct{}

	// loggedIn tracks whether the IPC connection is open. rich-presence has
	// no dedicated clear call, so clearing is a logout and the next set
	// logs back in first.
	loggedIn bool
}

// NewActor creates a presence actor consuming the given event channel.
func NewActor(logger *zap.Logger, client Client, events <-chan domain.PresenceEvent) *Actor {
	return &Actor{
		logger: logger,
		client: client,
		events: events,
		done:   make(chan struct{}),
	}
}

// Run consumes events until the channel is closed and empty, then clears the
// remote status and closes Done. Everything queued before the listener closed
// its side is still pushed, which is what makes shutdown drain cleanly.
func (a *Actor) Run() {
	defer close(a.done)

	for ev := range a.events {
		a.apply(ev)
	}
	a.clear()
	a.logger.Info("Presence actor drained")
}

// Done is closed once Run has drained every queued event and released the
// presence connection
func (a *Actor) Done() <-chan struct{} {
	return a.done
}

// apply pushes one event to the presence service. Only a playing track with
// parsed metadata sets an activity; every other combination clears it.
func (a *Actor) apply(ev domain.PresenceEvent) {
	if ev.Info != nil && ev.Status == domain.StatusPlaying {
		a.set(NewActivity(*ev.Info))
		return
	}
	a.clear()
}

func (a *Actor) set(activity domain.Activity) {
	if !a.loggedIn {
		if err := a.client.Login(); err != nil {
			a.logger.Warn("Presence login failed, skipping update", zap.Error(err))
			return
		}
		a.loggedIn = true
	}
	if err := a.client.SetActivity(activity); err != nil {
		a.logger.Warn("Failed to set activity", zap.Error(err))
		return
	}
	a.logger.Debug("Activity set",
		zap.String("headline", activity.Headline),
		zap.String("subline", activity.Subline))
}

func (a *Actor) clear() {
	if !a.loggedIn {
		return
	}
	a.client.Logout()
	a.loggedIn = false
	a.logger.Debug("Activity cleared")
}
