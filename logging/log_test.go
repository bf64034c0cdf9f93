//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func TestContext(t *testing.T) {
	logger := zaptest.NewLogger(t)
	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	assert.NotNil(t, FromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level)

	_, err = ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, zap.InfoLevel, "", true)
	logger.Debug("hidden")
	logger.Info("multiply", zap.Int("iterations", 4))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"iterations":4`)
}

func TestLogFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tlmul.log")
	var buf bytes.Buffer
	logger := NewWriter(&buf, zap.WarnLevel, file, false)
	logger.Debug("to file only")
	require.NoError(t, logger.Sync())

	assert.Empty(t, buf.String())
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file only")
}
