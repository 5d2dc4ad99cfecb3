package session_test

import (
	"testing"

	"cardvault/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestContext_InitialState(t *testing.T) {
	ctx := session.New()
	assert.Equal(t, session.Unauthenticated, ctx.State())
	assert.Empty(t, ctx.Username())
}

func TestContext_SuccessfulLoginFlow(t *testing.T) {
	ctx := session.New()

	assert.NoError(t, ctx.Begin())
	assert.Equal(t, session.Authenticating, ctx.State())
	// No identity is visible while verification is in flight.
	assert.Empty(t, ctx.Username())

	assert.NoError(t, ctx.Succeed("alice"))
	assert.Equal(t, session.Authenticated, ctx.State())
	assert.Equal(t, "alice", ctx.Username())
}

func TestContext_FailedLoginFlow(t *testing.T) {
	ctx := session.New()

	assert.NoError(t, ctx.Begin())
	ctx.Fail()
	assert.Equal(t, session.Unauthenticated, ctx.State())
	assert.Empty(t, ctx.Username())
}

func TestContext_Logout(t *testing.T) {
	ctx := session.Verified("alice")
	assert.Equal(t, session.Authenticated, ctx.State())

	ctx.Logout()
	assert.Equal(t, session.Unauthenticated, ctx.State())
	assert.Empty(t, ctx.Username())

	// Logging out twice is harmless.
	ctx.Logout()
	assert.Equal(t, session.Unauthenticated, ctx.State())
}

func TestContext_InvalidTransitions(t *testing.T) {
	ctx := session.New()

	// Succeed without Begin is rejected.
	assert.Error(t, ctx.Succeed("alice"))
	assert.Equal(t, session.Unauthenticated, ctx.State())

	// Begin twice is rejected.
	assert.NoError(t, ctx.Begin())
	assert.Error(t, ctx.Begin())

	// An empty identity cannot authenticate.
	assert.Error(t, ctx.Succeed(""))
}

func TestContext_ReauthenticationAfterLogout(t *testing.T) {
	ctx := session.Verified("alice")
	ctx.Logout()

	assert.NoError(t, ctx.Begin())
	assert.NoError(t, ctx.Succeed("bob"))
	assert.Equal(t, "bob", ctx.Username())
}

func TestVerified(t *testing.T) {
	ctx := session.Verified("alice")
	assert.Equal(t, session.Authenticated, ctx.State())
	assert.Equal(t, "alice", ctx.Username())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unauthenticated", session.Unauthenticated.String())
	assert.Equal(t, "authenticating", session.Authenticating.String())
	assert.Equal(t, "authenticated", session.Authenticated.String())
}
