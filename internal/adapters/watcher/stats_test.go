package watcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounters_Drain(t *testing.T) {
	var c counters
	c.eventReceived()
	c.eventReceived()
	c.unknownEvent()
	receiveErr := errors.New("queue overflowed")
	c.errorReceived(receiveErr)

	first := c.drain()
	assert.Equal(t, 2, first.EventsReceived)
	assert.True(t, first.UnknownEventEncountered)
	assert.Equal(t, receiveErr, first.ErrorWhileReceiving)

	second := c.drain()
	assert.Equal(t, 0, second.EventsReceived)
	assert.False(t, second.UnknownEventEncountered)
	assert.NoError(t, second.ErrorWhileReceiving)
}
