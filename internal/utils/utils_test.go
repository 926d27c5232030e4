package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 0, CountWords(" \n\t"))
	assert.Equal(t, 11, CountWords("The cat sat. The dog ran. The bird flew fast today."))
	assert.Equal(t, 3, CountWords("  one\ttwo\nthree  "))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Unknown", Truncate("   ", 10))
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	// "é" is two bytes; cutting inside it drops the partial rune
	assert.Equal(t, "ab", Truncate("abé", 3))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, LevelError, parseLogLevel("error"))
	assert.Equal(t, LevelInfo, parseLogLevel("verbose"))
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := NewLoggerWithFile("debug", false, &LogFileConfig{Path: path, MaxSizeMB: 1})

	reqID := "req-1"
	logger.Info(&reqID, "summarized %d sentences", 3)
	logger.Debug(nil, "debug line")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[req-1] summarized 3 sentences")
	assert.Contains(t, string(data), "debug line")
}

func TestLoggerLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := NewLoggerWithFile("error", false, &LogFileConfig{Path: path, MaxSizeMB: 1})

	logger.Info(nil, "hidden info")
	logger.Debug(nil, "hidden debug")
	logger.Error(nil, "visible error")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "visible error")
}

func TestLoggerFatalClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := NewLoggerWithFile("info", false, &LogFileConfig{Path: path, MaxSizeMB: 1})

	code := -1
	var logged string
	exit = func(c int) {
		code = c
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		logged = string(data)
	}
	t.Cleanup(func() { exit = os.Exit })

	logger.Fatal("listen failed:", "address in use")

	assert.Equal(t, 1, code)
	assert.Contains(t, logged, "FATAL: ")
	assert.Contains(t, logged, "address in use")
	assert.Nil(t, logger.file.Close(), "closing again is a no-op")
}
