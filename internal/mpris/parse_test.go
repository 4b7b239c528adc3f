package mpris

import (
	"errors"
	"testing"

	"github.com/dyercode/discord-mediaplayer-rpc/internal/domain"
	"github.com/godbus/dbus/v5"
)

func TestParseMetadata(t *testing.T) {
	tests := []struct {
		name     string
		metadata map[string]dbus.Variant
		wantOK   bool
		want     domain.MediaInfo
	}{
		{
			name: "Full Track",
			metadata: map[string]dbus.Variant{
				"xesam:title":  dbus.MakeVariant("Song"),
				"xesam:album":  dbus.MakeVariant("Record"),
				"xesam:artist": dbus.MakeVariant([]string{"Alice"}),
			},
			wantOK: true,
			want:   domain.MediaInfo{Title: "Song", Album: "Record", Artist: "Alice"},
		},
		{
			name: "Multiple Artists Joined",
			metadata: map[string]dbus.Variant{
				"xesam:title":  dbus.MakeVariant("Song"),
				"xesam:artist": dbus.MakeVariant([]string{"Alice", "Bob"}),
			},
			wantOK: true,
			want:   domain.MediaInfo{Title: "Song", Artist: "Alice & Bob"},
		},
		{
			name: "Artist as Plain String (Non-compliant Player)",
			metadata: map[string]dbus.Variant{
				"xesam:artist": dbus.MakeVariant("Solo Act"),
			},
			wantOK: true,
			want:   domain.MediaInfo{Artist: "Solo Act"},
		},
		{
			name: "Only Title Present",
			metadata: map[string]dbus.Variant{
				"xesam:title": dbus.MakeVariant("Untagged"),
			},
			wantOK: true,
			want:   domain.MediaInfo{Title: "Untagged"},
		},
		{
			name:     "All Keys Absent",
			metadata: map[string]dbus.Variant{"mpris:length": dbus.MakeVariant(int64(1000))},
			wantOK:   false,
		},
		{
			name:     "Empty Bag",
			metadata: map[string]dbus.Variant{},
			wantOK:   false,
		},
		{
			name:     "Nil Bag",
			metadata: nil,
			wantOK:   false,
		},
		{
			name: "Wrong Title Type Defaults Empty",
			metadata: map[string]dbus.Variant{
				"xesam:title": dbus.MakeVariant(42),
				"xesam:album": dbus.MakeVariant("Record"),
			},
			wantOK: true,
			want:   domain.MediaInfo{Album: "Record"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseMetadata(tt.metadata)
			if ok != tt.wantOK {
				t.Fatalf("ok: expected %v, got %v", tt.wantOK, ok)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestClassifyPlayback(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		present bool
		want    domain.PlaybackStatus
	}{
		{"Absent Means Closed", "", false, domain.StatusClosed},
		{"Playing", "Playing", true, domain.StatusPlaying},
		{"Paused", "Paused", true, domain.StatusPaused},
		{"Stopped", "Stopped", true, domain.StatusStopped},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyPlayback(tt.raw, tt.present)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClassifyPlaybackUnknownStatusFails(t *testing.T) {
	_, err := ClassifyPlayback("Buffering", true)
	if err == nil {
		t.Fatal("expected an error for a status outside the vocabulary")
	}
	if !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestMediaInfoString(t *testing.T) {
	withAlbum := domain.MediaInfo{Title: "Song", Artist: "Alice", Album: "Record"}
	if got := withAlbum.String(); got != "Alice - Song on Record" {
		t.Errorf("expected 'Alice - Song on Record', got %q", got)
	}

	noAlbum := domain.MediaInfo{Title: "Song", Artist: "Alice"}
	if got := noAlbum.String(); got != "Alice - Song" {
		t.Errorf("expected 'Alice - Song', got %q", got)
	}
}
