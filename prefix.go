package filament

import (
	"github.com/bwmarrin/discordgo"
)

// PrefixContext is the [Context] of a prefix command invocation, triggered by an
// ordinary message whose content starts with the configured prefix.
//
// Unlike interactions, message responses return the created message directly, so every
// response proxy on this path is materialized immediately.
type PrefixContext struct {
	baseContext
	event       *discordgo.MessageCreate
	message     *discordgo.Message
	prefix      string
	invokedWith string
	args        []string
	rest        Rest
}

// NewPrefixContext returns a [PrefixContext] bound to the given message event.
//
// Args:
//   - app: The application the context is linked to.
//   - event: The gateway event carrying the triggering message.
//   - command: The command definition resolved for the invocation.
//   - prefix: The prefix the invocation used.
//   - invokedWith: The command name or alias the invocation used.
//   - args: The whitespace-split arguments following the command name.
func NewPrefixContext(app *Application, event *discordgo.MessageCreate, command Command, prefix, invokedWith string, args []string) *PrefixContext {
	return &PrefixContext{
		baseContext: baseContext{app: app, command: command},
		event:       event,
		message:     event.Message,
		prefix:      prefix,
		invokedWith: invokedWith,
		args:        args,
		rest:        app.Rest,
	}
}

// Event returns the gateway event the context was constructed from.
func (c *PrefixContext) Event() *discordgo.MessageCreate {
	return c.event
}

// Message returns the message that triggered the invocation.
func (c *PrefixContext) Message() *discordgo.Message {
	return c.message
}

// Interaction returns nil; prefix invocations carry no interaction.
func (c *PrefixContext) Interaction() *discordgo.Interaction {
	return nil
}

// Resolved returns nil; prefix invocations carry no resolved option data.
func (c *PrefixContext) Resolved() *discordgo.ApplicationCommandInteractionDataResolved {
	return nil
}

// ChannelID returns the ID of the channel the command was invoked in.
func (c *PrefixContext) ChannelID() string {
	return c.message.ChannelID
}

// GuildID returns the ID of the guild the command was invoked in, or "" in DMs.
func (c *PrefixContext) GuildID() string {
	return c.message.GuildID
}

// Member returns the invoking guild member, or nil in DMs.
func (c *PrefixContext) Member() *discordgo.Member {
	return c.message.Member
}

// Author returns the user that sent the triggering message.
func (c *PrefixContext) Author() *discordgo.User {
	return c.message.Author
}

// User is an alias for [PrefixContext.Author].
func (c *PrefixContext) User() *discordgo.User {
	return c.Author()
}

// Attachments returns the attachments of the triggering message.
func (c *PrefixContext) Attachments() []*discordgo.MessageAttachment {
	return c.message.Attachments
}

// InvokedWith returns the command name or alias the invocation used.
func (c *PrefixContext) InvokedWith() string {
	return c.invokedWith
}

// Prefix returns the prefix the invocation used.
func (c *PrefixContext) Prefix() string {
	return c.prefix
}

// Args returns the whitespace-split arguments following the command name.
func (c *PrefixContext) Args() []string {
	return c.args
}

// GetChannel resolves the invocation channel through the application's cache, by guild
// channel when the invocation happened in a guild and by DM channel otherwise.
func (c *PrefixContext) GetChannel() (*discordgo.Channel, error) {
	if c.GuildID() != "" {
		return c.app.Cache.GuildChannel(c.ChannelID())
	}

	return c.app.Cache.DMChannel(c.Author().ID)
}

// GetGuild resolves the invocation guild through the application's cache, or nil in DMs.
func (c *PrefixContext) GetGuild() (*discordgo.Guild, error) {
	return guildOf(c)
}

// Invoke dispatches to the resolved command's invocation logic.
//
// Returns:
//   - error: [ErrNoCommand] when no command was resolved for this context.
func (c *PrefixContext) Invoke() error {
	return invokeCommand(c)
}

// Respond posts a message to the invocation channel and appends it to the history.
//
// The created message is returned by the platform directly, so the proxy never fetches.
// Reply references and file uploads are supported on this path; interaction-only
// settings such as the response type and the ephemeral flag are dropped.
//
// Returns:
//   - *ResponseProxy: Proxy wrapping the just-sent response.
//   - error: The platform error, unmodified, if delivery fails.
func (c *PrefixContext) Respond(opts ...ResponseOption) (*ResponseProxy, error) {
	response := newResponse(opts)

	message, err := c.rest.ChannelMessageSendComplex(c.ChannelID(), &discordgo.MessageSend{
		Content:         response.Content,
		TTS:             response.TTS,
		Embeds:          response.Embeds,
		Components:      response.Components,
		Files:           response.Files,
		AllowedMentions: response.AllowedMentions,
		Reference:       response.Reference,
	})
	if err != nil {
		return nil, err
	}

	proxy := &ResponseProxy{message: message}

	c.mu.Lock()
	c.responses = append(c.responses, proxy)
	c.mu.Unlock()

	return proxy, nil
}
