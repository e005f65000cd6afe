// filament package is a lightweight command framework for Discord bots built on top of
// github.com/bwmarrin/discordgo. It models a single in-flight command invocation as a
// context object: who invoked the command, which options were supplied, and how responses
// are delivered back to the platform and tracked.
//
// Key Features:
//   - Invocation Contexts: A common Context surface for slash-command and prefix-command
//     invocations, with per-origin response delivery.
//   - Response Tracking: Every response sent through a context is recorded as a
//     ResponseProxy, a lazy handle that resolves to the created message on demand.
//   - Auto Defer: Commands can be flagged to acknowledge the interaction immediately so
//     the platform does not time it out while the command body runs.
//   - Composable Checks: Invocation predicates with And/Or/Not combinators evaluated
//     before a command runs.
//   - Thin Dispatch: Gateway events are turned into contexts and routed to registered
//     commands; everything network-facing stays inside discordgo.
//
// Usage Example:
//
//	package main
//
//	import (
//	    "context"
//
//	    "github.com/lumenbot/filament"
//	)
//
//	func main() {
//	    config := &filament.Config{
//	        Token:  "bot token",
//	        Prefix: "!",
//	    }
//
//	    app := filament.New(config)
//
//	    app.AddCommand(filament.NewSlashCommand("ping", "Measures nothing.", false,
//	        func(ctx filament.Context) error {
//	            _, err := ctx.Respond(filament.WithContent("pong"))
//	            return err
//	        }))
//
//	    if err := app.Initialize(); err != nil {
//	        panic(err)
//	    }
//
//	    ctx := context.Background()
//	    if err := app.Start(ctx); err != nil {
//	        panic(err)
//	    }
//
//	    // The `app.Park()` call is blocking, use CTRL + C to stop the application.
//	    app.Park()
//	}
package filament
