// Package session models the authentication state of one caller as an
// explicit value passed through request handling, rather than ambient
// process-wide state. A context starts Unauthenticated, moves to
// Authenticating while credentials or a token are being verified, and lands
// in Authenticated on success or back in Unauthenticated on failure or
// logout.
package session

import "fmt"

// State is the authentication state of a session context.
type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Context tracks the acting identity for one caller. Username is set only
// while Authenticated.
type Context struct {
	state    State
	username string
}

// New returns a fresh, unauthenticated context.
func New() *Context {
	return &Context{state: Unauthenticated}
}

// State reports the current authentication state.
func (c *Context) State() State {
	return c.state
}

// Username returns the authenticated username, or "" when not authenticated.
func (c *Context) Username() string {
	if c.state != Authenticated {
		return ""
	}
	return c.username
}

// Begin marks the start of credential or token verification. It is an error
// to begin verification while one is already in flight.
func (c *Context) Begin() error {
	if c.state == Authenticating {
		return fmt.Errorf("authentication already in progress")
	}
	c.state = Authenticating
	c.username = ""
	return nil
}

// Succeed completes an in-flight verification with the identified user.
func (c *Context) Succeed(username string) error {
	if c.state != Authenticating {
		return fmt.Errorf("no authentication in progress")
	}
	if username == "" {
		return fmt.Errorf("authenticated username must not be empty")
	}
	c.state = Authenticated
	c.username = username
	return nil
}

// Fail completes an in-flight verification unsuccessfully.
func (c *Context) Fail() {
	c.state = Unauthenticated
	c.username = ""
}

// Logout drops an authenticated identity. Calling it on an already
// unauthenticated context is harmless.
func (c *Context) Logout() {
	c.state = Unauthenticated
	c.username = ""
}

// Verified builds an Authenticated context directly from an already
// verified identity, as the token middleware does once signature and expiry
// checks have passed.
func Verified(username string) *Context {
	return &Context{state: Authenticated, username: username}
}
