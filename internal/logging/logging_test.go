package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsForEveryEnvironment(t *testing.T) {
	for _, environment := range []string{"production", "staging", "uat", "local", "development", ""} {
		logger, err := New(environment, "info")
		require.NoError(t, err, "environment %q", environment)
		assert.NotNil(t, logger)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New("local", "verbose")
	assert.Error(t, err)
}
