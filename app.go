package filament

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Application represents the main application.
//
// It provides methods for managing the application's lifecycle, including initialization,
// starting, stopping, and registering commands, and turns inbound gateway events into
// invocation contexts that are dispatched to the registered commands.
// The gateway connection, rate limiting, and object caching are owned by the wrapped
// discordgo session; the application only routes.
type Application struct {
	Config      *Config                  // Config holds the configuration for the application.
	Session     *discordgo.Session       // Session is the wrapped platform client.
	Rest        Rest                     // Rest delivers responses; defaults to the session.
	Cache       Cache                    // Cache resolves platform objects; defaults to the session state.
	commands    SyncMap[string, Command] // commands contains the registered commands, keyed by name and alias.
	context     context.Context          // Context for running the application.
	cancelCtx   context.CancelFunc       // Function for stopping the application.
	initialized bool                     // initialized indicates whether the application has been initialized.
}

// New creates a new instance of the [Application] with the provided configuration.
//
// Args:
//   - config: The configuration for the application.
//
// Returns:
//   - *Application: A new instance of the [Application].
func New(config *Config) *Application {
	return &Application{
		Config:   config,
		commands: NewSyncMap[string, Command](),
	}
}

// AddCommand registers a command with the application.
//
// A [TextCommand] is additionally registered under each of its aliases. Registering a
// name twice replaces the earlier command.
//
// Args:
//   - command: The command to register.
//
// Returns:
//   - *Application: The application instance for method chaining.
func (app *Application) AddCommand(command Command) *Application {
	if _, ok := app.commands.Get(command.Name()); ok {
		log.Warn().Str("Command", command.Name()).Msg("Replacing a registered command")
	}

	app.commands.Set(command.Name(), command)
	if tc, ok := command.(*TextCommand); ok {
		for _, alias := range tc.Aliases {
			app.commands.Set(alias, command)
		}
	}

	return app
}

// RemoveCommand unregisters the command with the given name, along with its aliases.
//
// Args:
//   - name: The primary name of the command to unregister.
//
// Returns:
//   - *Application: The application instance for method chaining.
func (app *Application) RemoveCommand(name string) *Application {
	command, ok := app.commands.Get(name)
	if !ok {
		return app
	}

	app.commands.Del(name)
	if tc, ok := command.(*TextCommand); ok {
		for _, alias := range tc.Aliases {
			app.commands.Del(alias)
		}
	}

	return app
}

// GetCommand returns the command registered under the given name or alias.
//
// Args:
//   - name: The name to look up.
//
// Returns:
//   - Command: The registered command.
//   - error: [ErrCommandNotFound] when nothing is registered under the name.
func (app *Application) GetCommand(name string) (Command, error) {
	command, ok := app.commands.Get(name)
	if !ok {
		return nil, ErrCommandNotFound
	}

	return command, nil
}

// Initialize initializes the application.
//
// It creates the wrapped session from the configured token and wires the gateway
// handlers. The connection itself is not opened until [Application.Start].
//
// Returns:
//   - error: An error if the session cannot be created.
func (app *Application) Initialize() error {
	app.checkConfig()

	session, err := discordgo.New("Bot " + app.Config.Token)
	if err != nil {
		return err
	}

	session.Identify.Intents = app.Config.Intents
	session.AddHandler(app.onInteractionCreate)
	session.AddHandler(app.onMessageCreate)

	app.Session = session
	if app.Rest == nil {
		app.Rest = session
	}
	if app.Cache == nil {
		app.Cache = &sessionCache{session: session}
	}

	if app.Config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	app.initialized = true

	return nil
}

// checkConfig checks certain configurations and assigns default values if they are left unset.
func (app *Application) checkConfig() {
	if app.Config.Prefix == "" {
		app.Config.Prefix = DEFAULT_PREFIX
	}
	if app.Config.Intents == 0 {
		app.Config.Intents = DEFAULT_INTENTS
	}
}

// Start starts the application and opens the gateway connection.
//
// Args:
//   - ctx: The context for running the application.
//
// Returns:
//   - error: An error if the gateway connection cannot be opened.
func (app *Application) Start(ctx context.Context) error {
	if !app.initialized {
		panic("the application is not initialized")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	app.context, app.cancelCtx = context.WithCancel(ctx)

	if err := app.Session.Open(); err != nil {
		return err
	}

	log.Info().Str("Prefix", app.Config.Prefix).Msg("Started")

	return nil
}

// Park waits for the application to stop or receive an interrupt signal.
func (app *Application) Park() {
	intCh := make(chan os.Signal, 1)
	signal.Notify(intCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-app.context.Done():
	case <-intCh:
		app.Stop()
	}
}

// Stop stops the application and closes the gateway connection.
func (app *Application) Stop() {
	if err := app.Session.Close(); err != nil {
		log.Error().Err(err).Msg("Closing the session failed")
	}

	app.cancelCtx()
}

// GetContext returns the [context.Context] of the application.
//
// Returns:
//   - context.Context: The context of the application.
func (app *Application) GetContext() context.Context {
	return app.context
}

// onInteractionCreate receives interaction events from the gateway.
func (app *Application) onInteractionCreate(_ *discordgo.Session, event *discordgo.InteractionCreate) {
	app.dispatchInteraction(event)
}

// onMessageCreate receives message events from the gateway.
func (app *Application) onMessageCreate(session *discordgo.Session, event *discordgo.MessageCreate) {
	// The bot's own responses come back through the gateway as well.
	if session.State != nil && session.State.User != nil &&
		event.Author != nil && event.Author.ID == session.State.User.ID {
		return
	}

	app.dispatchMessage(event)
}

// dispatchInteraction builds a slash context from a command interaction and invokes the
// registered command.
//
// An unknown command name still produces a context; its invocation fails with
// [ErrNoCommand], which is reported together with a near-name suggestion.
func (app *Application) dispatchInteraction(event *discordgo.InteractionCreate) {
	if event == nil || event.Interaction == nil || event.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := event.ApplicationCommandData().Name

	var command ApplicationCommand
	if registered, err := app.GetCommand(name); err == nil {
		command, _ = registered.(ApplicationCommand)
	}

	ctx, err := NewSlashContext(app, event, command)
	if err != nil {
		log.Error().Str("Command", name).Err(err).Msg("Malformed interaction event")
		return
	}

	app.invoke(ctx)
}

// dispatchMessage parses a prefixed message, builds a prefix context, and invokes the
// registered command.
func (app *Application) dispatchMessage(event *discordgo.MessageCreate) {
	if event == nil || event.Message == nil || event.Author == nil || event.Author.Bot {
		return
	}

	prefix := app.Config.Prefix
	text := strings.TrimLeft(event.Content, "\r\n\t ")
	if !strings.HasPrefix(text, prefix) {
		return
	}

	text = strings.TrimLeft(text[len(prefix):], "\r\n\t ")
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return
	}

	command, err := app.GetCommand(fields[0])
	if err != nil {
		log.Debug().
			Str("Command", fields[0]).
			Str("Suggestion", app.suggest(fields[0])).
			Msg("Unknown prefix command")
		return
	}

	ctx := NewPrefixContext(app, event, command, prefix, fields[0], fields[1:])
	app.invoke(ctx)
}

// invoke runs the context's command, recovering panics so a misbehaving command cannot
// take down the gateway handler.
func (app *Application) invoke(ctx Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("Command", ctx.InvokedWith()).Interface("Panic", r).Msg("Command panicked")
		}
	}()

	if err := ctx.Invoke(); err != nil {
		event := log.Warn().Str("Command", ctx.InvokedWith()).Err(err)
		if errors.Is(err, ErrNoCommand) {
			if suggestion := app.suggest(ctx.InvokedWith()); suggestion != "" {
				event = event.Str("Suggestion", suggestion)
			}
		}
		event.Msg("Command invocation failed")
	}
}

// suggest returns the registered command name closest to the given one, or "" when none
// is within [MAX_SUGGEST_DISTANCE].
func (app *Application) suggest(name string) (best string) {
	bestDistance := MAX_SUGGEST_DISTANCE + 1

	app.commands.Range(func(registered string, _ Command) bool {
		distance := levenshtein.DistanceForStrings([]rune(name), []rune(registered), levenshtein.DefaultOptions)
		if distance < bestDistance {
			bestDistance = distance
			best = registered
		}
		return true
	})

	return
}
