package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mverkaik/elights/internal/logging"
)

func TestConfigure_DefaultConfig(t *testing.T) {
	logger := logging.Configure(logging.Config{Level: "INFO"})
	require.NotNil(t, logger)
}

func TestConfigure_AllLogLevels(t *testing.T) {
	levels := []string{"DEBUG", "INFO", "WARN", "WARNING", "ERROR", "debug", "invalid", ""}

	for _, level := range levels {
		t.Run(level, func(t *testing.T) {
			logger := logging.Configure(logging.Config{Level: level})
			assert.NotNil(t, logger)
		})
	}
}

func TestConfigure_StructuredJSON(t *testing.T) {
	logger := logging.Configure(logging.Config{
		Level:            "INFO",
		Structured:       true,
		StructuredFormat: "json",
	})
	assert.NotNil(t, logger)
}

func TestConfigure_WithExtraFieldsAndPID(t *testing.T) {
	logger := logging.Configure(logging.Config{
		Level:       "INFO",
		IncludePID:  true,
		ExtraFields: map[string]string{"app": "elights"},
	})
	assert.NotNil(t, logger)
}
