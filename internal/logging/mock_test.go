package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("started")
	mock.Warn("careful", Field{Key: FieldCount, Value: 3})

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "started"))
	assert.True(t, mock.HasEntry("WARN", "careful"))
	assert.False(t, mock.HasEntry("ERROR", "careful"))
}

func TestMockLoggerChainedEntriesReachRoot(t *testing.T) {
	mock := &MockLogger{}

	mock.WithField(FieldFile, "rules.yaml").
		WithError(errors.New("boom")).
		Error("load failed")

	require.Len(t, mock.Entries, 1)
	entry := mock.Entries[0]
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "load failed", entry.Message)
	assert.EqualError(t, entry.Error, "boom")
	require.Len(t, entry.Fields, 1)
	assert.Equal(t, FieldFile, entry.Fields[0].Key)
}

func TestMockLoggerEntriesByLevel(t *testing.T) {
	mock := &MockLogger{}

	mock.Warn("first")
	mock.Info("between")
	mock.WithField(FieldPattern, "coffee*").Warn("second")

	warns := mock.EntriesByLevel("WARN")
	require.Len(t, warns, 2)
	assert.Equal(t, "first", warns[0].Message)
	assert.Equal(t, "second", warns[1].Message)
}
