//go:build unit

package session_test

import (
	"testing"

	"venue-booking/internal/usecase/session"

	"github.com/stretchr/testify/assert"
)

func TestHub(t *testing.T) {
	hub := session.NewHub(1)
	a, unsubA := hub.Subscribe()
	b, unsubB := hub.Subscribe()
	assert.Equal(t, 2, hub.Subscribers())

	hub.Publish(session.Event{Type: session.EventRebuilt, Generation: 1})
	// buffer is full; the second publish is dropped instead of blocking
	hub.Publish(session.Event{Type: session.EventRebuilt, Generation: 2})

	assert.Equal(t, uint64(1), (<-a).Generation)
	assert.Equal(t, uint64(1), (<-b).Generation)

	unsubA()
	unsubA()
	_, open := <-a
	assert.False(t, open)
	assert.Equal(t, 1, hub.Subscribers())

	unsubB()
	assert.Equal(t, 0, hub.Subscribers())
}
