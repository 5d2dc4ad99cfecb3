package events_test

import (
	"testing"

	"cardvault/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestNilClientIsNoOp(t *testing.T) {
	// Deployments without a broker run with a nil client; publishing and
	// closing must both be safe.
	var c *events.Client
	assert.NoError(t, c.Publish("card.created", map[string]interface{}{"id": "card-1"}))
	assert.NoError(t, c.Close())
}
