package filament

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestNewResponseProxy(t *testing.T) {
	message := &discordgo.Message{ID: "message1"}
	fetcher := func() (*discordgo.Message, error) { return message, nil }

	_, err := NewResponseProxy(nil, nil)
	assert.ErrorIs(t, err, ErrNoMessageOrFetcher, "construction without message and fetcher should fail")

	proxy, err := NewResponseProxy(message, nil)
	assert.NoError(t, err, "construction with a message should succeed")
	assert.NotNil(t, proxy)

	proxy, err = NewResponseProxy(nil, fetcher)
	assert.NoError(t, err, "construction with a fetcher should succeed")
	assert.NotNil(t, proxy)
}

func TestResponseProxyKnownMessage(t *testing.T) {
	message := &discordgo.Message{ID: "message1"}
	fetcherCalls := 0
	proxy, err := NewResponseProxy(message, func() (*discordgo.Message, error) {
		fetcherCalls++
		return nil, errors.New("should not run")
	})
	assert.NoError(t, err)

	got, err := proxy.Message()
	assert.NoError(t, err)
	assert.Equal(t, message, got, "a known message should be returned as-is")
	assert.Equal(t, 0, fetcherCalls, "a known message should never invoke the fetcher")
}

func TestResponseProxyFetchMemoized(t *testing.T) {
	message := &discordgo.Message{ID: "message1"}
	fetcherCalls := 0
	proxy, err := NewResponseProxy(nil, func() (*discordgo.Message, error) {
		fetcherCalls++
		return message, nil
	})
	assert.NoError(t, err)

	got, err := proxy.Message()
	assert.NoError(t, err)
	assert.Equal(t, message, got, "the fetched message should be returned")

	got, err = proxy.Message()
	assert.NoError(t, err)
	assert.Equal(t, message, got)
	assert.Equal(t, 1, fetcherCalls, "the first successful fetch should be memoized")
}

func TestResponseProxyFetchErrorNotCached(t *testing.T) {
	message := &discordgo.Message{ID: "message1"}
	fetchErr := errors.New("gateway hiccup")
	fetcherCalls := 0
	proxy, err := NewResponseProxy(nil, func() (*discordgo.Message, error) {
		fetcherCalls++
		if fetcherCalls == 1 {
			return nil, fetchErr
		}
		return message, nil
	})
	assert.NoError(t, err)

	_, err = proxy.Message()
	assert.ErrorIs(t, err, fetchErr, "a failed fetch should surface its error")

	got, err := proxy.Message()
	assert.NoError(t, err, "the fetch should be retried after a failure")
	assert.Equal(t, message, got)
	assert.Equal(t, 2, fetcherCalls)
}

func TestResponseOptions(t *testing.T) {
	embed := &discordgo.MessageEmbed{Title: "title"}
	reference := &discordgo.MessageReference{MessageID: "message1"}

	response := newResponse([]ResponseOption{
		WithResponseType(discordgo.InteractionResponseDeferredChannelMessageWithSource),
		WithContent("hello"),
		WithEmbeds(embed),
		WithReply(reference),
		WithTTS(),
		WithEphemeral(),
	})

	assert.Equal(t, discordgo.InteractionResponseDeferredChannelMessageWithSource, response.Type)
	assert.Equal(t, "hello", response.Content)
	assert.Equal(t, []*discordgo.MessageEmbed{embed}, response.Embeds)
	assert.Equal(t, reference, response.Reference)
	assert.True(t, response.TTS)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, response.flags(), "the ephemeral option should map to the message flag")

	assert.Equal(t, discordgo.MessageFlags(0), newResponse(nil).flags(), "no flags by default")
}
