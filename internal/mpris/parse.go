package mpris

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dyercode/discord-mediaplayer-rpc/internal/domain"
	"github.com/godbus/dbus/v5"
)

// MPRIS metadata keys (xesam vocabulary)
const (
	keyTitle  = "xesam:title"
	keyAlbum  = "xesam:album"
	keyArtist = "xesam:artist"
)

// ErrUnknownStatus is returned when the player reports a playback status
// outside the MPRIS vocabulary. The status set is closed on purpose: an
// unknown value means an assumption broke and must surface, not be guessed at.
var ErrUnknownStatus = errors.New("unknown playback status")

// ParseMetadata extracts track info from an MPRIS metadata property bag.
// Individual missing fields default to empty strings; ok is false only when
// title, album, and artist are all absent, meaning there is nothing to show.
// A player that briefly reports partial data still yields a (sparse) record.
func ParseMetadata(metadata map[string]dbus.Variant) (domain.MediaInfo, bool) {
	titleVar, hasTitle := metadata[keyTitle]
	albumVar, hasAlbum := metadata[keyAlbum]
	artistVar, hasArtist := metadata[keyArtist]

	if !hasTitle && !hasAlbum && !hasArtist {
		return domain.MediaInfo{}, false
	}

	var info domain.MediaInfo
	if hasTitle {
		if title, ok := titleVar.Value().(string); ok {
			info.Title = title
		}
	}
	if hasAlbum {
		if album, ok := albumVar.Value().(string); ok {
			info.Album = album
		}
	}
	if hasArtist {
		switch artists := artistVar.Value().(type) {
		case []string:
			info.Artist = strings.Join(artists, " & ")
		case string:
			// Some non-compliant players report a plain string
			info.Artist = artists
		}
	}
	return info, true
}

// ClassifyPlayback maps a raw PlaybackStatus value to a typed status. An
// absent value (present=false) means the player is not answering at all and
// classifies as Closed. Any unrecognized string is an ErrUnknownStatus.
func ClassifyPlayback(raw string, present bool) (domain.PlaybackStatus, error) {
	if !present {
		return domain.StatusClosed, nil
	}
	switch raw {
	case "Playing":
		return domain.StatusPlaying, nil
	case "Paused":
		return domain.StatusPaused, nil
	case "Stopped":
		return domain.StatusStopped, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}
