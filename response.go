package filament

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Response collects the content and delivery settings of a single [Context.Respond] call.
//
// Not every field applies to every delivery path: initial interaction responses cannot
// carry files or reply references, follow-ups ignore the response type, and prefix
// responses ignore interaction-only settings such as the ephemeral flag. Each context
// drops what its path does not support.
type Response struct {
	Type            discordgo.InteractionResponseType // Type of the initial interaction response.
	Content         string                            // Content is the textual message content.
	Embeds          []*discordgo.MessageEmbed         // Embeds attached to the message.
	Components      []discordgo.MessageComponent      // Components attached to the message.
	Files           []*discordgo.File                 // Files uploaded with the message.
	AllowedMentions *discordgo.MessageAllowedMentions // AllowedMentions controls which mentions resolve.
	Reference       *discordgo.MessageReference       // Reference marks the message as a reply (prefix contexts only).
	TTS             bool                              // TTS requests text-to-speech delivery.
	Ephemeral       bool                              // Ephemeral makes the response visible to the invoker only.
}

// ResponseOption is a configurable parameter for a single respond call.
type ResponseOption func(*Response)

// WithResponseType sets the initial interaction response type.
//
// It only applies to the first response of a slash context; follow-ups and prefix
// responses ignore it.
func WithResponseType(t discordgo.InteractionResponseType) ResponseOption {
	return func(r *Response) {
		r.Type = t
	}
}

// WithContent sets the textual content of the response.
func WithContent(content string) ResponseOption {
	return func(r *Response) {
		r.Content = content
	}
}

// WithEmbeds sets the embeds of the response.
func WithEmbeds(embeds ...*discordgo.MessageEmbed) ResponseOption {
	return func(r *Response) {
		r.Embeds = embeds
	}
}

// WithComponents sets the message components of the response.
func WithComponents(components ...discordgo.MessageComponent) ResponseOption {
	return func(r *Response) {
		r.Components = components
	}
}

// WithFiles attaches file uploads to the response.
//
// Initial interaction responses do not support uploads; the files are dropped there.
func WithFiles(files ...*discordgo.File) ResponseOption {
	return func(r *Response) {
		r.Files = files
	}
}

// WithAllowedMentions sets the allowed mentions of the response.
func WithAllowedMentions(mentions *discordgo.MessageAllowedMentions) ResponseOption {
	return func(r *Response) {
		r.AllowedMentions = mentions
	}
}

// WithReply marks the response as a reply to the given message.
//
// Interaction responses are always tied to their interaction, so only prefix contexts
// honor the reference.
func WithReply(reference *discordgo.MessageReference) ResponseOption {
	return func(r *Response) {
		r.Reference = reference
	}
}

// WithTTS requests text-to-speech delivery of the response.
func WithTTS() ResponseOption {
	return func(r *Response) {
		r.TTS = true
	}
}

// WithEphemeral makes the response visible to the invoking user only.
//
// It has no effect on prefix responses.
func WithEphemeral() ResponseOption {
	return func(r *Response) {
		r.Ephemeral = true
	}
}

// newResponse builds a [Response] from the given options.
func newResponse(opts []ResponseOption) *Response {
	response := &Response{}
	for _, opt := range opts {
		opt(response)
	}

	return response
}

// flags returns the message flags of the response.
func (r *Response) flags() discordgo.MessageFlags {
	if r.Ephemeral {
		return discordgo.MessageFlagsEphemeral
	}
	return 0
}

// MessageFetcher produces the message created by an earlier response delivery.
type MessageFetcher func() (*discordgo.Message, error)

// ResponseProxy is a lazy handle to a message created by a respond call.
//
// Initial interaction responses return no message body from the platform, so the proxy
// is constructed with a fetcher and resolves on first use. Follow-up and prefix
// responses return the created message directly and the proxy wraps it as-is.
type ResponseProxy struct {
	mu      sync.Mutex
	message *discordgo.Message
	fetcher MessageFetcher
}

// NewResponseProxy returns a [ResponseProxy] holding either an already known message or
// a fetcher that produces it.
//
// Args:
//   - message: The created message, when the platform returned one.
//   - fetcher: A fetcher for the created message, when it did not.
//
// Returns:
//   - *ResponseProxy: The constructed proxy.
//   - error: [ErrNoMessageOrFetcher] when both arguments are nil.
func NewResponseProxy(message *discordgo.Message, fetcher MessageFetcher) (*ResponseProxy, error) {
	if message == nil && fetcher == nil {
		return nil, ErrNoMessageOrFetcher
	}

	return &ResponseProxy{message: message, fetcher: fetcher}, nil
}

// Message fetches and/or returns the created message of the response.
//
// A known message is returned without any platform call. Otherwise the fetcher runs and
// its first successful result is memoized for the lifetime of the proxy; a failed fetch
// is not cached, so callers may retry.
//
// Returns:
//   - *discordgo.Message: The response's created message.
//   - error: An error if the fetch fails.
func (rp *ResponseProxy) Message() (*discordgo.Message, error) {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	if rp.message != nil {
		return rp.message, nil
	}

	message, err := rp.fetcher()
	if err != nil {
		return nil, err
	}
	rp.message = message

	return message, nil
}
