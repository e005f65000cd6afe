package filament

import (
	"github.com/bwmarrin/discordgo"
)

// Cache resolves platform objects by ID for the context accessors.
//
// The default implementation reads from the discordgo session state, falling back to a
// REST call only where the state cannot answer (DM channels). Tests substitute a fake.
type Cache interface {
	// Guild returns the guild with the given ID.
	Guild(guildID string) (*discordgo.Guild, error)
	// GuildChannel returns the guild channel with the given ID.
	GuildChannel(channelID string) (*discordgo.Channel, error)
	// DMChannel returns the direct message channel with the given user.
	DMChannel(userID string) (*discordgo.Channel, error)
}

// sessionCache is the [Cache] backed by a discordgo session.
type sessionCache struct {
	session *discordgo.Session
}

// Guild returns the guild with the given ID from the session state.
func (sc *sessionCache) Guild(guildID string) (*discordgo.Guild, error) {
	return sc.session.State.Guild(guildID)
}

// GuildChannel returns the guild channel with the given ID from the session state.
func (sc *sessionCache) GuildChannel(channelID string) (*discordgo.Channel, error) {
	return sc.session.State.Channel(channelID)
}

// DMChannel returns the direct message channel with the given user.
//
// discordgo serves the channel from its state when it was created before, so repeated
// lookups do not hit the platform.
func (sc *sessionCache) DMChannel(userID string) (*discordgo.Channel, error) {
	return sc.session.UserChannelCreate(userID)
}
