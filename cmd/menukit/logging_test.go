package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogging_RejectsUnknownLevel(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	assert.NoError(t, setupLogging("debug"))
	assert.NoError(t, setupLogging("error"))
	assert.Error(t, setupLogging("verbose"))
}

func TestSimpleHandler_FormatsAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := &simpleHandler{level: slog.LevelInfo, writer: &buf}
	logger := slog.New(handler)

	logger.Info("menu loaded", "file", "menu.json")
	logger.Debug("should be filtered")

	assert.Contains(t, buf.String(), "INFO: menu loaded (file='menu.json')")
	assert.NotContains(t, buf.String(), "should be filtered")
}

func TestSimpleHandler_Enabled(t *testing.T) {
	handler := &simpleHandler{level: slog.LevelWarn}
	assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
}
