package filament

import (
	"github.com/bwmarrin/discordgo"
)

// Rest is the subset of the discordgo REST client the contexts deliver responses
// through.
//
// *discordgo.Session satisfies it. Rate limiting, retries, and serialization are the
// client's responsibility; errors from these calls propagate to the caller unmodified.
type Rest interface {
	// InteractionRespond creates the initial response to an interaction. The platform
	// returns no message body for this call.
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	// InteractionResponse fetches the message created by the initial response.
	InteractionResponse(interaction *discordgo.Interaction, options ...discordgo.RequestOption) (*discordgo.Message, error)
	// FollowupMessageCreate creates a follow-up response and returns the created
	// message.
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	// ChannelMessageSendComplex posts a message to a channel and returns it.
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}
