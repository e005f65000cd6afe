package filament

// Command is the invocation surface the context layer needs from a command definition.
//
// Registration and parsing of command declarations live with the surrounding bot; the
// context layer only resolves a command for an invocation and dispatches to it.
type Command interface {
	// Name returns the primary name the command is registered under.
	Name() string
	// Invoke runs the command's invocation logic under the given context.
	Invoke(Context) error
}

// ApplicationCommand is a command that can be bound to an interaction invocation.
type ApplicationCommand interface {
	Command
	// AutoDefer reports whether the interaction should be acknowledged immediately,
	// before the command body runs.
	AutoDefer() bool
}

// SlashCommand is a callback-backed [ApplicationCommand].
type SlashCommand struct {
	CommandName string              // CommandName is the name the command is invoked with.
	Description string              // Description is shown in the platform's command picker.
	Defer       bool                // Defer acknowledges the interaction before the callback runs.
	Checks      []Check             // Checks are evaluated before the callback; any failure aborts.
	Callback    func(Context) error // Callback is the command body.
}

// Name returns the name the command is invoked with.
func (sc *SlashCommand) Name() string {
	return sc.CommandName
}

// AutoDefer reports whether the interaction is acknowledged before the callback runs.
func (sc *SlashCommand) AutoDefer() bool {
	return sc.Defer
}

// Invoke evaluates the command's checks and runs the callback.
//
// Returns:
//   - error: [ErrCheckFailed] when a check rejects the context, otherwise the
//     callback's result.
func (sc *SlashCommand) Invoke(ctx Context) error {
	for _, check := range sc.Checks {
		if !check.Check(ctx) {
			return ErrCheckFailed
		}
	}

	return sc.Callback(ctx)
}

// NewSlashCommand returns a new [SlashCommand].
func NewSlashCommand(name, description string, autoDefer bool, callback func(Context) error, checks ...Check) *SlashCommand {
	return &SlashCommand{
		CommandName: name,
		Description: description,
		Defer:       autoDefer,
		Checks:      checks,
		Callback:    callback,
	}
}

// TextCommand is a callback-backed [Command] invoked through a message prefix.
type TextCommand struct {
	CommandName string              // CommandName is the primary name the command is invoked with.
	Aliases     []string            // Aliases are alternative names for the command.
	Checks      []Check             // Checks are evaluated before the callback; any failure aborts.
	Callback    func(Context) error // Callback is the command body.
}

// Name returns the primary name the command is invoked with.
func (tc *TextCommand) Name() string {
	return tc.CommandName
}

// Invoke evaluates the command's checks and runs the callback.
func (tc *TextCommand) Invoke(ctx Context) error {
	for _, check := range tc.Checks {
		if !check.Check(ctx) {
			return ErrCheckFailed
		}
	}

	return tc.Callback(ctx)
}

// NewTextCommand returns a new [TextCommand].
func NewTextCommand(callback func(Context) error, checks []Check, name string, aliases ...string) *TextCommand {
	return &TextCommand{
		CommandName: name,
		Aliases:     aliases,
		Checks:      checks,
		Callback:    callback,
	}
}
