package logger

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(cfg, &buf)
	t.Cleanup(func() { Init(NewConfig(), io.Discard) })
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := withBuffer(t, NewConfig())

	Debugf("debug line")
	Infof("info line %d", 1)

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line 1")
}

func TestDisabledTag(t *testing.T) {
	cfg := NewConfig()
	cfg.Level = "debug"
	cfg.DisabledTags = []string{"Drag"}
	buf := withBuffer(t, cfg)

	DebugTagf("drag", "pointer moved")
	DebugTagf("history", "snapshot saved")

	assert.NotContains(t, buf.String(), "pointer moved")
	assert.Contains(t, buf.String(), "snapshot saved")
	assert.Contains(t, buf.String(), "tag=history")
}

func TestEnabledTagsHideUntagged(t *testing.T) {
	cfg := NewConfig()
	cfg.Level = "debug"
	cfg.EnabledTags = []string{"history"}
	buf := withBuffer(t, cfg)

	Infof("untagged")
	DebugTagf("history", "tagged")

	assert.NotContains(t, buf.String(), "untagged")
	assert.Contains(t, buf.String(), "tagged")
}

func TestPackageFilter(t *testing.T) {
	cfg := NewConfig()
	cfg.DisabledPackages = []string{"logger"}
	buf := withBuffer(t, cfg)

	Errorf("from the logger package")

	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
