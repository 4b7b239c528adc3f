package presence

import (
	"fmt"

	"github.com/dyercode/discord-mediaplayer-rpc/internal/domain"
)

// NewActivity maps track info to the two-line presence form. The headline is
// always "Playing {artist} - {title}"; the subline carries the album and is
// absent (empty) when the track has none.
func NewActivity(info domain.MediaInfo) domain.Activity {
	activity := domain.Activity{
		Headline: fmt.Sprintf("Playing %s - %s", info.Artist, info.Title),
	}
	if info.Album != "" {
		activity.Subline = fmt.Sprintf("From %s", info.Album)
	}
	return activity
}
