package filament

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Context is the common surface of a single in-flight command invocation, regardless of
// its origin.
//
// A context is exclusively owned by the invocation it represents and is discarded when
// the invocation completes. The response history is append-only and ordered by send
// time. Command bodies must not call Respond concurrently from multiple goroutines on
// the same context; the only sanctioned concurrent writer is the auto-defer task, which
// the implementations serialize against internally.
type Context interface {
	// App returns the Application the context is linked to.
	App() *Application
	// Command returns the command object resolved for this invocation, or nil.
	Command() Command
	// ChannelID returns the ID of the channel the command was invoked in.
	ChannelID() string
	// GuildID returns the ID of the guild the command was invoked in, or "" in DMs.
	GuildID() string
	// Author returns the user that invoked the command.
	Author() *discordgo.User
	// User is an alias for Author.
	User() *discordgo.User
	// Member returns the invoking guild member, or nil outside guilds.
	Member() *discordgo.Member
	// Attachments returns the attachments carried by the invocation.
	Attachments() []*discordgo.MessageAttachment
	// InvokedWith returns the command name or alias used for the invocation.
	InvokedWith() string
	// Prefix returns the prefix used for the invocation.
	Prefix() string
	// Interaction returns the triggering interaction, or nil for prefix invocations.
	Interaction() *discordgo.Interaction
	// Resolved returns the resolved option data, or nil for prefix invocations.
	Resolved() *discordgo.ApplicationCommandInteractionDataResolved
	// RawOptions returns the mapping of option name to supplied value.
	RawOptions() map[string]any
	// Options returns an OptionsProxy wrapping RawOptions.
	Options() OptionsProxy
	// Responses returns the full ordered history of responses sent for this context.
	Responses() []*ResponseProxy
	// PreviousResponse returns the last response sent, or nil if none.
	PreviousResponse() *ResponseProxy
	// GetChannel resolves the invocation channel through the application's cache.
	GetChannel() (*discordgo.Channel, error)
	// GetGuild resolves the invocation guild through the application's cache, or nil
	// in DMs.
	GetGuild() (*discordgo.Guild, error)
	// Invoke dispatches to the resolved command's invocation logic.
	Invoke() error
	// Respond creates a response to this context and appends it to the history.
	Respond(opts ...ResponseOption) (*ResponseProxy, error)
}

// baseContext carries the invocation state shared by every context origin: the
// application handle, the resolved command, the supplied options, and the response
// history.
type baseContext struct {
	app        *Application
	command    Command
	rawOptions map[string]any

	mu        sync.Mutex // guards responses against the auto-defer task
	responses []*ResponseProxy
}

// App returns the [Application] the context is linked to.
func (c *baseContext) App() *Application {
	return c.app
}

// Command returns the command object resolved for this invocation, or nil.
func (c *baseContext) Command() Command {
	return c.command
}

// RawOptions returns the mapping of option name to supplied value.
func (c *baseContext) RawOptions() map[string]any {
	return c.rawOptions
}

// Options returns an [OptionsProxy] wrapping [baseContext.RawOptions].
func (c *baseContext) Options() OptionsProxy {
	return NewOptionsProxy(c.rawOptions)
}

// Responses returns the full ordered history of responses sent for this context.
func (c *baseContext) Responses() []*ResponseProxy {
	c.mu.Lock()
	defer c.mu.Unlock()

	responses := make([]*ResponseProxy, len(c.responses))
	copy(responses, c.responses)

	return responses
}

// PreviousResponse returns the last response sent for this context, or nil if none.
func (c *baseContext) PreviousResponse() *ResponseProxy {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.responses) == 0 {
		return nil
	}

	return c.responses[len(c.responses)-1]
}

// invokeCommand runs the resolved command of the given context.
//
// Returns:
//   - error: [ErrNoCommand] when no command was resolved, otherwise whatever the
//     command's invocation logic returns.
func invokeCommand(ctx Context) error {
	command := ctx.Command()
	if command == nil {
		return ErrNoCommand
	}

	return command.Invoke(ctx)
}

// guildOf resolves the guild of the given context through the application's cache.
//
// Returns:
//   - *discordgo.Guild: The guild, or nil when the context has no guild ID.
//   - error: An error if the cache lookup fails.
func guildOf(ctx Context) (*discordgo.Guild, error) {
	guildID := ctx.GuildID()
	if guildID == "" {
		return nil, nil
	}

	return ctx.App().Cache.Guild(guildID)
}
