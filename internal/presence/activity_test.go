package presence

import (
	"testing"

	"github.com/dyercode/discord-mediaplayer-rpc/internal/domain"
)

func TestNewActivity(t *testing.T) {
	tests := []struct {
		name string
		info domain.MediaInfo
		want domain.Activity
	}{
		{
			name: "Album Becomes Subline",
			info: domain.MediaInfo{Title: "title", Artist: "artist", Album: "album"},
			want: domain.Activity{Headline: "Playing artist - title", Subline: "From album"},
		},
		{
			name: "No Album Means No Subline",
			info: domain.MediaInfo{Title: "title", Artist: "artist"},
			want: domain.Activity{Headline: "Playing artist - title"},
		},
		{
			name: "Joined Artists Pass Through",
			info: domain.MediaInfo{Title: "Song", Artist: "Alice & Bob"},
			want: domain.Activity{Headline: "Playing Alice & Bob - Song"},
		},
		{
			name: "Sparse Record Still Maps",
			info: domain.MediaInfo{},
			want: domain.Activity{Headline: "Playing  - "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewActivity(tt.info); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
