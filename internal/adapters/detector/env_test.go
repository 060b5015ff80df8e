package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scribibble/dpnd/internal/adapters/detector"
)

func TestResolveMode(t *testing.T) {
	assert.Equal(t, detector.ModeJSON, detector.ResolveMode(detector.ModePretty, true))
	assert.Equal(t, detector.ModeJSON, detector.ResolveMode(detector.ModeJSON, true))
	assert.Equal(t, detector.ModePretty, detector.ResolveMode(detector.ModePretty, false))
	assert.Equal(t, detector.ModeJSON, detector.ResolveMode(detector.ModeJSON, false))
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModeJSON, detector.DetectEnvironment())
}
