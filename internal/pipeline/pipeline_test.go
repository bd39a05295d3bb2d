// File: internal/pipeline/pipeline_test.go
package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_SingleWriter(t *testing.T) {
	var g Guard
	assert.Equal(t, StateIdle, g.Current())

	require.True(t, g.Enter(StateValidating))
	assert.False(t, g.Enter(StateValidating), "second entry must be rejected, not queued")
	assert.False(t, g.Enter(StateSubmitting))

	g.Advance(StateSubmitting)
	assert.Equal(t, StateSubmitting, g.Current())

	g.Release()
	assert.Equal(t, StateIdle, g.Current())
	assert.True(t, g.Enter(StateSubmitting), "released guard admits the next attempt")
	g.Release()
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "validating", StateValidating.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "unknown", State(99).String())
}

func TestErrors(t *testing.T) {
	assert.Equal(t, "template not found", (&ServerError{StatusCode: 404, Message: "template not found"}).Error())
	assert.Equal(t, "service returned status 502", (&ServerError{StatusCode: 502}).Error())

	ne := &NetworkError{Err: assert.AnError}
	assert.ErrorIs(t, ne, assert.AnError)
	assert.Contains(t, ne.Error(), "network failure")
}
