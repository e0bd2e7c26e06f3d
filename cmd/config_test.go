package cmd

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "fixtkit", configBaseName)
	assert.Equal(t, "fixtkit.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "hash.mode", hashModeConfigKey)
	assert.Equal(t, "hash.parallel", hashParallelConfigKey)
	assert.Equal(t, "fixtures.path", fixturesPathConfigKey)
	assert.Equal(t, "stub", defaultHashMode)
	assert.Equal(t, 4, defaultHashParallel)
	assert.Equal(t, "FIXTKIT", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtkit.log")

	configureLogger(path, true)
	t.Cleanup(func() { configureLogger(disabledLogFilename, false) })

	slog.Debug("debug record", "key", "value")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug record")
	assert.Contains(t, string(data), "key=value")
}

func TestConfigureLogger_Disabled(t *testing.T) {
	configureLogger(disabledLogFilename, true)

	require.NotNil(t, globalLogger)
	assert.Same(t, globalLogger, slog.Default())
}

func TestReadConfig_MissingFileIsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.NoError(t, readConfig())
}

func TestReadConfig_MalformedFileIsReported(t *testing.T) {
	tempDir := t.TempDir()
	t.Chdir(tempDir)

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, configFileName), []byte("hash: [unclosed\n"), 0o644))

	err := readConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), configFileName)
}

func TestReportConfigReadErr(t *testing.T) {
	configureLogger(disabledLogFilename, false)

	var out bytes.Buffer
	reportConfigReadErr(&out, nil)
	assert.Empty(t, out.String())

	reportConfigReadErr(&out, errors.New("read config ./fixtkit.yaml: bad indent"))
	assert.Equal(t, "warning: read config ./fixtkit.yaml: bad indent; using defaults\n", out.String())
}
