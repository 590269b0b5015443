package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationStatus_Valid(t *testing.T) {
	for _, s := range ApplicationStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, ApplicationStatus("archived").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestApplicationStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusShortlisted.Terminal())
	assert.True(t, StatusHired.Terminal())
	assert.True(t, StatusRejected.Terminal())
}

func TestCallStatus_Valid(t *testing.T) {
	require.True(t, CallStatusOpen.Valid())
	require.True(t, CallStatusClosed.Valid())
	require.False(t, CallStatus("archived").Valid())
}

func TestCallTitle_Fallback(t *testing.T) {
	app := CastingApplication{}
	assert.Equal(t, "Casting Call", app.CallTitle())

	app.CastingCall = &CastingCall{Title: "Feature Film Lead"}
	assert.Equal(t, "Feature Film Lead", app.CallTitle())
}
