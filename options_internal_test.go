package meltimers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyOptions_NoOptions_ReturnsDefaults(t *testing.T) {
	t.Parallel()

	// Act
	cfg := applyOptions()

	// Assert
	assert.Equal(t, defaultCompletionLevel, cfg.completionLevel, "completionLevel should be default")
	assert.Equal(t, defaultAbandonmentLevel, cfg.abandonmentLevel, "abandonmentLevel should be default")
	assert.Equal(t, time.Duration(0), cfg.warningThreshold)
}

func TestApplyOptions_WithCompletionLevel_SetsOnlyThatField(t *testing.T) {
	t.Parallel()

	// Act
	cfg := applyOptions(WithCompletionLevel(LevelDebug))

	// Assert
	assert.Equal(t, LevelDebug, cfg.completionLevel)
	assert.Equal(t, defaultAbandonmentLevel, cfg.abandonmentLevel)
	assert.Equal(t, time.Duration(0), cfg.warningThreshold)
}

func TestApplyOptions_WithAbandonmentLevel_SetsOnlyThatField(t *testing.T) {
	t.Parallel()

	// Act
	cfg := applyOptions(WithAbandonmentLevel(LevelCritical))

	// Assert
	assert.Equal(t, defaultCompletionLevel, cfg.completionLevel)
	assert.Equal(t, LevelCritical, cfg.abandonmentLevel)
}

func TestApplyOptions_WithLevels_SetsBothFields(t *testing.T) {
	t.Parallel()

	// Act
	cfg := applyOptions(WithLevels(LevelTrace, LevelError))

	// Assert
	assert.Equal(t, LevelTrace, cfg.completionLevel)
	assert.Equal(t, LevelError, cfg.abandonmentLevel)
}

func TestApplyOptions_WithWarningThreshold_SetsField(t *testing.T) {
	t.Parallel()

	// Arrange
	d := 250 * time.Millisecond

	// Act
	cfg := applyOptions(WithWarningThreshold(d))

	// Assert
	assert.Equal(t, d, cfg.warningThreshold)
	assert.Equal(t, defaultCompletionLevel, cfg.completionLevel)
	assert.Equal(t, defaultAbandonmentLevel, cfg.abandonmentLevel)
}

func TestApplyOptions_WithNegativeWarningThreshold_NormalizesToDisabled(t *testing.T) {
	t.Parallel()

	// Act
	cfg := applyOptions(WithWarningThreshold(-time.Second))

	// Assert
	assert.Equal(t, time.Duration(0), cfg.warningThreshold)
}
