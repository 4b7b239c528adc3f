package domain

import "fmt"

// PlaybackStatus represents the current state of the media player
type PlaybackStatus string

const (
	// StatusPlaying indicates the media is currently playing
	StatusPlaying PlaybackStatus = "Playing"
	// StatusPaused indicates the media is paused
	StatusPaused PlaybackStatus = "Paused"
	// StatusStopped indicates the media is stopped
	StatusStopped PlaybackStatus = "Stopped"
	// StatusClosed indicates the player is not reporting any status,
	// typically because it is not running
	StatusClosed PlaybackStatus = "Closed"
)

// MediaInfo identifies a single track. Built fresh for every notification and
// never mutated afterwards.
type MediaInfo struct {
	// Title of the currently playing track
	Title string
	// Artist names, joined with " & " when the player reports several
	Artist string
	// Album name, empty when the player does not report one
	Album string
}

// String renders the track as "artist - title on album"; the album part is
// omitted when empty.
func (mi MediaInfo) String() string {
	on := ""
	if mi.Album != "" {
		on = " on "
	}
	return fmt.Sprintf("%s - %s%s%s", mi.Artist, mi.Title, on, mi.Album)
}

// PresenceEvent is the unit passed from the signal listener to the presence
// actor. Info is non-nil only when Status is Playing or Paused and the track
// metadata parsed successfully.
type PresenceEvent struct {
	Info   *MediaInfo
	Status PlaybackStatus
}

// Activity is the two-line presentable form pushed to the presence service.
// An empty Subline means "absent".
type Activity struct {
	Headline string
	Subline  string
}
