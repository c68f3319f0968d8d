package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAMQPSinkCloseWithoutConnection(t *testing.T) {
	// Close must be safe on a sink that never finished connecting.
	sink := &AMQPSink{}
	assert.NoError(t, sink.Close())
}
