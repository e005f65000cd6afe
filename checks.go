package filament

import (
	"github.com/lumenbot/filament/utils"
)

// This approach aims to simplify the syntax of combining checks.
// For example:
//   check := Check.And(Check.And(Check)).Or(Check.Not())
// Instead of:
//   check := Or(And(Check, And(Check, Check)), Not(Check)) (excluding the package name)
//
// Since Go does not support type inheritance nor method declaration with multiple receivers,
// everything needs to be explicitly declared.

// Check is an interface that defines the methods for gating command invocations.
type Check interface {
	Check(Context) bool // Check evaluates if the given context passes the check conditions.
	And(Check) Check    // And returns a new check that combines the current check with another using logical AND.
	Or(Check) Check     // Or returns a new check that combines the current check with another using logical OR.
	Not() Check         // Not returns a new check that negates the current check using logical NOT.
}

const (
	// CombineCheckAnd combines checks using logical AND.
	CombineCheckAnd int = iota
	// CombineCheckOr combines checks using logical OR.
	CombineCheckOr
)

// CombineCheck is a struct that represents the logical combination of two checks.
type CombineCheck struct {
	Left  Check // Left represents the first check to be combined.
	Right Check // Right represents the second check to be combined.
	Mode  int   // Mode specifies the combination mode: 0 for AND, 1 for OR.
}

// Check returns the combined result of the left and right checks.
func (c *CombineCheck) Check(ctx Context) bool {
	switch c.Mode {
	case CombineCheckAnd:
		return c.Left.Check(ctx) && c.Right.Check(ctx)
	case CombineCheckOr:
		return c.Left.Check(ctx) || c.Right.Check(ctx)
	default:
		return false
	}
}

// And returns a new CombineCheck that combines the current check with the provided check using logical AND.
func (c *CombineCheck) And(check Check) Check {
	return &CombineCheck{c, check, CombineCheckAnd}
}

// Or returns a new CombineCheck that combines the current check with the provided check using logical OR.
func (c *CombineCheck) Or(check Check) Check {
	return &CombineCheck{c, check, CombineCheckOr}
}

// Not returns a new NotCheck negating the current check.
func (c *CombineCheck) Not() Check {
	return &NotCheck{c}
}

// NotCheck is a struct that represents the logical NOT of a check.
type NotCheck struct {
	Base Check // Base represents the check to be negated.
}

// Check returns the logical negation of the check's result.
func (c *NotCheck) Check(ctx Context) bool {
	return !c.Base.Check(ctx)
}

// And returns a new CombineCheck that combines the current check with the provided check using logical AND.
func (c *NotCheck) And(check Check) Check {
	return &CombineCheck{c, check, CombineCheckAnd}
}

// Or returns a new CombineCheck that combines the current check with the provided check using logical OR.
func (c *NotCheck) Or(check Check) Check {
	return &CombineCheck{c, check, CombineCheckOr}
}

// Not returns a new NotCheck negating the current check.
func (c *NotCheck) Not() Check {
	return &NotCheck{c}
}

// GuildOnlyCheck passes only for invocations made inside a guild.
type GuildOnlyCheck struct{}

// Check checks if the context carries a guild ID.
func (c *GuildOnlyCheck) Check(ctx Context) bool {
	return ctx.GuildID() != ""
}

// And returns a new CombineCheck that combines the current check with the provided check using logical AND.
func (c *GuildOnlyCheck) And(check Check) Check {
	return &CombineCheck{c, check, CombineCheckAnd}
}

// Or returns a new CombineCheck that combines the current check with the provided check using logical OR.
func (c *GuildOnlyCheck) Or(check Check) Check {
	return &CombineCheck{c, check, CombineCheckOr}
}

// Not returns a new NotCheck negating the current check.
func (c *GuildOnlyCheck) Not() Check {
	return &NotCheck{c}
}

// NewGuildOnlyCheck returns a new [GuildOnlyCheck].
func NewGuildOnlyCheck() Check {
	return &GuildOnlyCheck{}
}

// NewDMOnlyCheck returns a check passing only for invocations made in direct messages.
func NewDMOnlyCheck() Check {
	return NewGuildOnlyCheck().Not()
}

// UserCheck passes only for invocations made by one of the listed users.
type UserCheck struct {
	UserIDs []string // UserIDs is the list of user IDs allowed through the check.
}

// Check checks if the context's author is in the check's list of users.
func (c *UserCheck) Check(ctx Context) bool {
	author := ctx.Author()
	if author == nil {
		return false
	}

	return utils.Contains(c.UserIDs, author.ID)
}

// And returns a new CombineCheck that combines the current check with the provided check using logical AND.
func (c *UserCheck) And(check Check) Check {
	return &CombineCheck{c, check, CombineCheckAnd}
}

// Or returns a new CombineCheck that combines the current check with the provided check using logical OR.
func (c *UserCheck) Or(check Check) Check {
	return &CombineCheck{c, check, CombineCheckOr}
}

// Not returns a new NotCheck negating the current check.
func (c *UserCheck) Not() Check {
	return &NotCheck{c}
}

// NewUserCheck returns a new [UserCheck] for the given user IDs.
func NewUserCheck(userIDs ...string) Check {
	return &UserCheck{UserIDs: userIDs}
}
