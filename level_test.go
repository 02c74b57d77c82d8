package meltimers_test

import (
	"testing"

	meltimers "github.com/natehaby/mel-timers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_OrderingFormsAScale(t *testing.T) {
	t.Parallel()
	// Assert
	require.Less(t, meltimers.LevelTrace, meltimers.LevelDebug)
	require.Less(t, meltimers.LevelDebug, meltimers.LevelInfo)
	require.Less(t, meltimers.LevelInfo, meltimers.LevelWarning)
	require.Less(t, meltimers.LevelWarning, meltimers.LevelError)
	require.Less(t, meltimers.LevelError, meltimers.LevelCritical)
}

func TestLevel_String(t *testing.T) {
	t.Parallel()
	// Assert
	assert.Equal(t, "trace", meltimers.LevelTrace.String())
	assert.Equal(t, "debug", meltimers.LevelDebug.String())
	assert.Equal(t, "info", meltimers.LevelInfo.String())
	assert.Equal(t, "warning", meltimers.LevelWarning.String())
	assert.Equal(t, "error", meltimers.LevelError.String())
	assert.Equal(t, "critical", meltimers.LevelCritical.String())
	assert.Equal(t, "info", meltimers.Level(99).String(), "unknown values render as info")
}
