package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", &buf)

	logger.Info("session started", "business_id", "tech_example.com")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "session started", record["msg"])
	assert.Equal(t, "tech_example.com", record["business_id"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("error", &buf)

	logger.Debug("noise")
	logger.Info("also noise")
	assert.Zero(t, buf.Len())

	logger.Error("kept")
	assert.NotZero(t, buf.Len())
}

func TestWithCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", &buf).With("session_id", "abc")

	logger.Info("turn processed")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "abc", record["session_id"])
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("verbose", &buf)

	logger.Debug("dropped")
	assert.Zero(t, buf.Len())

	logger.Info("kept")
	assert.NotZero(t, buf.Len())
}
