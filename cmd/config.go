package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "fixtkit.dev/pkg/fixtkit/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "fixtkit"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	logFlagName      = "log"
	verboseFlagName  = "verbose"
	plainFlagName    = "plain"
	modeFlagName     = "mode"
	fileFlagName     = "file"
	parallelFlagName = "parallel"

	plainConfigKey        = "ui.plain"
	hashModeConfigKey     = "hash.mode"
	hashParallelConfigKey = "hash.parallel"
	fixturesPathConfigKey = "fixtures.path"

	defaultHashMode     = string(m.HashModeStub)
	defaultHashParallel = 4
	defaultFixturesPath = "fixtures.yaml"
	defaultPlain        = false

	envPrefix = "FIXTKIT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".fixtkit.log"
	defaultLogLevel      = "info"
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true

	// disabledLogFilename turns file logging off.
	disabledLogFilename = "-"
)

var globalLogger *slog.Logger

// configReadErr holds a config file that exists but could not be read.
var configReadErr error

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(plainConfigKey, defaultPlain)
	viper.SetDefault(hashModeConfigKey, defaultHashMode)
	viper.SetDefault(hashParallelConfigKey, defaultHashParallel)
	viper.SetDefault(fixturesPathConfigKey, defaultFixturesPath)

	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	configReadErr = readConfig()
}

// readConfig loads fixtkit.yaml into viper. A missing file is not an error.
func readConfig() error {
	err := viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("read config %s: %w", viper.ConfigFileUsed(), err)
}

// reportConfigReadErr tells the user that the config file was skipped.
// It runs once the logger is configured.
func reportConfigReadErr(w io.Writer, err error) {
	if err == nil {
		return
	}

	slog.Warn("config file ignored", "error", err)
	fmt.Fprintf(w, "warning: %v; using defaults\n", err)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level (Info); if verbose is true it
// logs at Debug. A log path of "-" discards all records.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	var logWriter io.Writer = io.Discard
	if logPath != disabledLogFilename {
		logWriter = &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    viper.GetInt(logMaxSizeKey),
			MaxBackups: viper.GetInt(logMaxBackupsKey),
			MaxAge:     viper.GetInt(logMaxAgeKey),
			Compress:   viper.GetBool(logCompressKey),
		}
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
