package presence

import (
	"github.com/dyercode/discord-mediaplayer-rpc/internal/domain"
	"github.com/hugolgst/rich-go/client"
)

// Client is the minimal surface of the rich-presence connection the actor
// needs. Kept narrow so tests can substitute a recording fake.
type Client interface {
	// Login opens the IPC connection to the local Discord client
	Login() error

	// Logout closes the connection, which also clears the shown activity
	Logout()

	// SetActivity pushes the given activity to Discord
	SetActivity(activity domain.Activity) error
}

// DiscordClient adapts the rich-go package-level API to the Client interface,
// binding it to one application id.
type DiscordClient struct {
	appID string
}

// NewDiscordClient creates a Discord rich-presence client for the configured
// application id.
func NewDiscordClient(cfg domain.Config) *DiscordClient {
	return &DiscordClient{appID: cfg.DiscordAppID()}
}

// Login opens the IPC connection to the local Discord client
func (c *DiscordClient) Login() error {
	return client.Login(c.appID)
}

// Logout closes the connection, which also clears the shown activity
func (c *DiscordClient) Logout() {
	client.Logout()
}

// SetActivity pushes the given activity. Details carries the headline and
// State the optional subline, matching how Discord stacks the two lines.
func (c *DiscordClient) SetActivity(activity domain.Activity) error {
	act := client.Activity{Details: activity.Headline}
	if activity.Subline != "" {
		act.State = activity.Subline
	}
	return client.SetActivity(act)
}
