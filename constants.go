package filament

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// Default values applied by [Application.checkConfig] when left unset.
const (
	DEFAULT_PREFIX  = "!"
	DEFAULT_INTENTS = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
)

// Suggestions for unknown commands are offered only when a registered name is
// within this levenshtein distance.
const MAX_SUGGEST_DISTANCE = 2

var (
	ErrNoMessageOrFetcher    = errors.New("one of message or fetcher must be provided")
	ErrNoCommand             = errors.New("no command was resolved for this context")
	ErrNotCommandInteraction = errors.New("event does not carry an application command interaction")

	ErrCommandNotFound = errors.New("command not found")
	ErrCheckFailed     = errors.New("a check for this command rejected the context")
)
