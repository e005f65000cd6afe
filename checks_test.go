package filament

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newGuildContext(t *testing.T) *SlashContext {
	t.Helper()

	app := newTestApp(&fakeRest{}, &fakeCache{})
	ctx, err := NewSlashContext(app, newCommandEvent("greet"), nil)
	assert.NoError(t, err)

	return ctx
}

func newDMContext(t *testing.T) *SlashContext {
	t.Helper()

	app := newTestApp(&fakeRest{}, &fakeCache{})
	ctx, err := NewSlashContext(app, newDMCommandEvent("greet"), nil)
	assert.NoError(t, err)

	return ctx
}

func TestGuildOnlyCheck(t *testing.T) {
	check := NewGuildOnlyCheck()

	assert.True(t, check.Check(newGuildContext(t)), "guild invocations should pass")
	assert.False(t, check.Check(newDMContext(t)), "DM invocations should not pass")
}

func TestDMOnlyCheck(t *testing.T) {
	check := NewDMOnlyCheck()

	assert.False(t, check.Check(newGuildContext(t)), "guild invocations should not pass")
	assert.True(t, check.Check(newDMContext(t)), "DM invocations should pass")
}

func TestUserCheck(t *testing.T) {
	allowed := NewUserCheck("user1", "user2")
	denied := NewUserCheck("user9")

	ctx := newGuildContext(t)
	assert.True(t, allowed.Check(ctx), "listed users should pass")
	assert.False(t, denied.Check(ctx), "unlisted users should not pass")
}

func TestCheckCombinators(t *testing.T) {
	guildCtx := newGuildContext(t)
	dmCtx := newDMContext(t)

	guildOnly := NewGuildOnlyCheck()
	user := NewUserCheck("user1")
	stranger := NewUserCheck("user9")

	assert.True(t, guildOnly.And(user).Check(guildCtx), "And should pass when both pass")
	assert.False(t, guildOnly.And(stranger).Check(guildCtx), "And should fail when one fails")
	assert.True(t, guildOnly.Or(stranger).Check(guildCtx), "Or should pass when one passes")
	assert.True(t, stranger.Or(user).Check(dmCtx), "Or should pass when the right side passes")
	assert.False(t, guildOnly.Not().Check(guildCtx), "Not should negate")
	assert.True(t, guildOnly.Not().Check(dmCtx), "Not should negate")
	assert.True(t, user.Or(guildOnly).And(stranger.Not()).Check(guildCtx), "combinators should nest")
}

func TestCommandChecksGateInvocation(t *testing.T) {
	invoked := false
	command := NewSlashCommand("admin", "", false, func(Context) error {
		invoked = true
		return nil
	}, NewGuildOnlyCheck())

	assert.ErrorIs(t, command.Invoke(newDMContext(t)), ErrCheckFailed, "a failing check should abort the invocation")
	assert.False(t, invoked, "the callback should not run when a check fails")

	assert.NoError(t, command.Invoke(newGuildContext(t)), "a passing check should let the invocation through")
	assert.True(t, invoked)
}
