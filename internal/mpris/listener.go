package mpris

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dyercode/discord-mediaplayer-rpc/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	objectPath      = "/org/mpris/MediaPlayer2"
	playerInterface = "org.mpris.MediaPlayer2.Player"

	propsInterface     = "org.freedesktop.DBus.Properties"
	propsChangedMember = "PropertiesChanged"
	propsChangedSignal = propsInterface + "." + propsChangedMember
)

// ErrConnectionLost is returned by Run when the bus connection itself dies.
// A single failed query is recoverable; a dead connection is not.
var ErrConnectionLost = errors.New("lost connection to D-Bus")

// ErrNoSubscription is returned by Unsubscribe when the subscription token
// was never created or has already been consumed.
var ErrNoSubscription = errors.New("no active subscription")

// subscription is the one-shot token identifying the active match rule.
// godbus unsubscribes by replaying the original match options.
type subscription struct {
	opts []dbus.MatchOption
}

// Listener subscribes to PropertiesChanged notifications for the configured
// media player and converts each one into a single PresenceEvent. The
// notification payload is never trusted; it only serves as a wake-up, after
// which the listener queries the player's current status and metadata.
type Listener struct {
	logger  *zap.Logger
	conn    DBusClient
	service string
	events  chan domain.PresenceEvent
	signals chan *dbus.Signal

	mu  sync.Mutex
	sub *subscription
}

// NewListener creates a signal listener for the player named in cfg.
func NewListener(logger *zap.Logger, conn DBusClient, cfg domain.Config) *Listener {
	return &Listener{
		logger:  logger,
		conn:    conn,
		service: cfg.PlayerService(),
		events:  make(chan domain.PresenceEvent, cfg.EventBuffer()),
		signals: make(chan *dbus.Signal, 10),
	}
}

// Subscribe adds the PropertiesChanged match rule scoped to the MPRIS object
// path and registers the signal channel. The resulting subscription token is
// held until Unsubscribe consumes it.
func (l *Listener) Subscribe() error {
	opts := []dbus.MatchOption{
		dbus.WithMatchObjectPath(objectPath),
		dbus.WithMatchInterface(propsInterface),
		dbus.WithMatchMember(propsChangedMember),
	}
	if err := l.conn.AddMatchSignal(opts...); err != nil {
		return fmt.Errorf("add signal match rule: %w", err)
	}
	l.conn.Signal(l.signals)

	l.mu.Lock()
	l.sub = &subscription{opts: opts}
	l.mu.Unlock()

	l.logger.Info("Subscribed to player notifications",
		zap.String("service", l.service),
		zap.String("path", objectPath))
	return nil
}

// Unsubscribe removes the match rule. The subscription token is consumed
// exactly once; a second call returns ErrNoSubscription.
func (l *Listener) Unsubscribe() error {
	l.mu.Lock()
	sub := l.sub
	l.sub = nil
	l.mu.Unlock()

	if sub == nil {
		return ErrNoSubscription
	}
	if err := l.conn.RemoveMatchSignal(sub.opts...); err != nil {
		return fmt.Errorf("remove signal match rule: %w", err)
	}
	l.logger.Info("Unsubscribed from player notifications")
	return nil
}

// Events returns the channel the listener emits PresenceEvents on
func (l *Listener) Events() <-chan domain.PresenceEvent {
	return l.events
}

// Run processes notifications one at a time until ctx is cancelled or the
// connection dies. Each notification is handled fully (both queries,
// classification, send) before the next is consumed, so events leave in
// notification order. The events channel is closed on return so the consumer
// can drain whatever is still queued.
//
// Return values: nil after cancellation, ErrConnectionLost when the bus closes
// the signal channel, or a classification error, which the caller must treat
// as fatal.
func (l *Listener) Run(ctx context.Context) error {
	defer close(l.events)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Notification stream stopped")
			return nil
		case sig, ok := <-l.signals:
			if !ok {
				return ErrConnectionLost
			}
			if sig == nil || sig.Name != propsChangedSignal {
				continue
			}
			ev, err := l.next()
			if err != nil {
				return err
			}
			// Blocking send: when the actor falls behind, this throttles
			// query frequency instead of dropping events.
			l.events <- ev
		}
	}
}

// next queries the player's current state and builds one PresenceEvent.
// Query failures count as absent values, never as errors; only an
// unrecognized status string makes next fail.
func (l *Listener) next() (domain.PresenceEvent, error) {
	raw, present := l.queryStatus()
	status, err := ClassifyPlayback(raw, present)
	if err != nil {
		return domain.PresenceEvent{}, err
	}

	ev := domain.PresenceEvent{Status: status}
	if status == domain.StatusPlaying || status == domain.StatusPaused {
		if metadata, ok := l.queryMetadata(); ok {
			if info, ok := ParseMetadata(metadata); ok {
				l.logger.Info("Track read", zap.Stringer("track", info),
					zap.String("status", string(status)))
				ev.Info = &info
			}
		}
	} else {
		l.logger.Info("Not playing", zap.String("status", string(status)))
	}
	return ev, nil
}

// queryStatus reads the PlaybackStatus property. Any failure, including an
// unexpected value type, is reported as "absent".
func (l *Listener) queryStatus() (string, bool) {
	variant, err := l.conn.GetProperty(l.service, objectPath, playerInterface+".PlaybackStatus")
	if err != nil {
		l.logger.Debug("Playback status query failed", zap.Error(err))
		return "", false
	}
	status, ok := variant.Value().(string)
	if !ok {
		l.logger.Warn("Playback status is not a string, treating as absent")
		return "", false
	}
	return status, true
}

// queryMetadata reads the Metadata property bag. Failures yield "no metadata"
// for the current event only; the listener keeps going.
func (l *Listener) queryMetadata() (map[string]dbus.Variant, bool) {
	variant, err := l.conn.GetProperty(l.service, objectPath, playerInterface+".Metadata")
	if err != nil {
		l.logger.Debug("Metadata query failed", zap.Error(err))
		return nil, false
	}
	metadata, ok := variant.Value().(map[string]dbus.Variant)
	if !ok {
		l.logger.Warn("Metadata is not a property map, treating as absent")
		return nil, false
	}
	return metadata, true
}
