package filament

import (
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// SlashContext is the [Context] of an application command invocation.
//
// It is bound to exactly one command interaction for its whole lifetime; every field
// accessor proxies that interaction. Responses are delivered against the interaction in
// two modes: the first respond call creates the initial interaction response, every
// later call creates a follow-up. The transition is one-way and permanent.
type SlashContext struct {
	baseContext
	event       *discordgo.InteractionCreate
	interaction *discordgo.Interaction
	data        discordgo.ApplicationCommandInteractionData
	rest        Rest
}

// NewSlashContext returns a [SlashContext] bound to the given interaction event.
//
// When the resolved command is flagged auto-defer, a deferred initial response is
// scheduled on a separate goroutine so the platform does not time the interaction out
// while the command body runs; construction does not wait for it. The deferral and the
// command body's own first respond call are serialized against each other, whichever
// runs second becomes a follow-up.
//
// Args:
//   - app: The application the context is linked to.
//   - event: The gateway event carrying the command interaction.
//   - command: The command definition resolved for the invocation.
//
// Returns:
//   - *SlashContext: The constructed context.
//   - error: [ErrNotCommandInteraction] when the event does not carry an application
//     command interaction.
func NewSlashContext(app *Application, event *discordgo.InteractionCreate, command ApplicationCommand) (*SlashContext, error) {
	if event == nil || event.Interaction == nil || event.Type != discordgo.InteractionApplicationCommand {
		return nil, ErrNotCommandInteraction
	}

	data := event.ApplicationCommandData()
	rawOptions := make(map[string]any, len(data.Options))
	for _, opt := range data.Options {
		rawOptions[opt.Name] = opt.Value
	}

	ctx := &SlashContext{
		baseContext: baseContext{app: app, command: command, rawOptions: rawOptions},
		event:       event,
		interaction: event.Interaction,
		data:        data,
		rest:        app.Rest,
	}

	if command != nil && command.AutoDefer() {
		go func() {
			if err := ctx.Defer(); err != nil {
				log.Error().Str("Command", command.Name()).Err(err).Msg("Auto defer failed")
			}
		}()
	}

	return ctx, nil
}

// Event returns the gateway event the context was constructed from.
func (c *SlashContext) Event() *discordgo.InteractionCreate {
	return c.event
}

// Interaction returns the command interaction bound to this context.
func (c *SlashContext) Interaction() *discordgo.Interaction {
	return c.interaction
}

// ChannelID returns the ID of the channel the command was invoked in.
func (c *SlashContext) ChannelID() string {
	return c.interaction.ChannelID
}

// GuildID returns the ID of the guild the command was invoked in, or "" in DMs.
func (c *SlashContext) GuildID() string {
	return c.interaction.GuildID
}

// Member returns the invoking guild member, or nil in DMs.
func (c *SlashContext) Member() *discordgo.Member {
	return c.interaction.Member
}

// Author returns the user that invoked the command.
//
// The platform populates either the member (in guilds) or the user (in DMs) on the
// interaction, never both.
func (c *SlashContext) Author() *discordgo.User {
	if c.interaction.Member != nil {
		return c.interaction.Member.User
	}

	return c.interaction.User
}

// User is an alias for [SlashContext.Author].
func (c *SlashContext) User() *discordgo.User {
	return c.Author()
}

// Attachments is always empty: interactions carry attachments through their resolved
// option data, not on the invocation itself.
func (c *SlashContext) Attachments() []*discordgo.MessageAttachment {
	return nil
}

// InvokedWith returns the name of the resolved command, falling back to the name in the
// interaction payload when no command was resolved.
func (c *SlashContext) InvokedWith() string {
	if c.command != nil {
		return c.command.Name()
	}

	return c.data.Name
}

// Prefix returns the platform's application command prefix.
func (c *SlashContext) Prefix() string {
	return "/"
}

// CommandID returns the platform-assigned ID of the invoked command.
func (c *SlashContext) CommandID() string {
	return c.data.ID
}

// Resolved returns the resolved option data of the interaction.
func (c *SlashContext) Resolved() *discordgo.ApplicationCommandInteractionDataResolved {
	return c.data.Resolved
}

// GetChannel resolves the invocation channel through the application's cache, by guild
// channel when the invocation happened in a guild and by DM channel otherwise.
func (c *SlashContext) GetChannel() (*discordgo.Channel, error) {
	if c.GuildID() != "" {
		return c.app.Cache.GuildChannel(c.ChannelID())
	}

	return c.app.Cache.DMChannel(c.Author().ID)
}

// GetGuild resolves the invocation guild through the application's cache, or nil in DMs.
func (c *SlashContext) GetGuild() (*discordgo.Guild, error) {
	return guildOf(c)
}

// Invoke dispatches to the resolved command's invocation logic.
//
// Returns:
//   - error: [ErrNoCommand] when no command was resolved for this context.
func (c *SlashContext) Invoke() error {
	return invokeCommand(c)
}

// Defer acknowledges the interaction with a deferred message response.
//
// It is a respond call like any other and therefore only meaningful as the first one.
func (c *SlashContext) Defer() error {
	_, err := c.Respond(WithResponseType(discordgo.InteractionResponseDeferredChannelMessageWithSource))
	return err
}

// Respond creates a response for this context and appends it to the history.
//
// The first call creates the initial interaction response, with the response type
// defaulting to a channel message; the platform returns no message body on this path,
// so the returned proxy resolves lazily through a fetch of the initial response. File
// uploads and reply references are not supported there and are dropped.
//
// Every later call creates a follow-up response instead; the response type does not
// apply there and the returned proxy wraps the created message directly.
//
// Returns:
//   - *ResponseProxy: Proxy wrapping the just-sent response.
//   - error: The platform error, unmodified, if delivery fails.
func (c *SlashContext) Respond(opts ...ResponseOption) (*ResponseProxy, error) {
	response := newResponse(opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.responses) > 0 {
		message, err := c.rest.FollowupMessageCreate(c.interaction, true, &discordgo.WebhookParams{
			Content:         response.Content,
			TTS:             response.TTS,
			Embeds:          response.Embeds,
			Components:      response.Components,
			Files:           response.Files,
			AllowedMentions: response.AllowedMentions,
			Flags:           response.flags(),
		})
		if err != nil {
			return nil, err
		}

		proxy := &ResponseProxy{message: message}
		c.responses = append(c.responses, proxy)

		return proxy, nil
	}

	if response.Type == 0 {
		response.Type = discordgo.InteractionResponseChannelMessageWithSource
	}

	err := c.rest.InteractionRespond(c.interaction, &discordgo.InteractionResponse{
		Type: response.Type,
		Data: &discordgo.InteractionResponseData{
			Content:         response.Content,
			TTS:             response.TTS,
			Embeds:          response.Embeds,
			Components:      response.Components,
			AllowedMentions: response.AllowedMentions,
			Flags:           response.flags(),
		},
	})
	if err != nil {
		return nil, err
	}

	proxy := &ResponseProxy{fetcher: func() (*discordgo.Message, error) {
		return c.rest.InteractionResponse(c.interaction)
	}}
	c.responses = append(c.responses, proxy)

	return proxy, nil
}
