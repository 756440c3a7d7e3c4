package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"rocqtrace.dev/pkg/rocqtrace/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "rocqtrace"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	configPathFlagName         = "config-path"
	portFlagName               = "port"
	maxMemoryFlagName          = "max-memory"
	tocTimeoutFlagName         = "toc-timeout"
	extractTimeoutFlagName     = "extract-timeout"
	tacticTimeoutFlagName      = "tactic-timeout"
	killCloneFlagName          = "kill-clone"
	rebuildFlagName            = "rebuild"
	parallelFlagName           = "parallel"
	failOnPackageErrorFlagName = "fail-on-package-error"
	metricsTextfileFlagName    = "metrics-textfile"
	verboseFlagName            = "verbose"

	configPathKey         = "config_path"
	portKey               = "port"
	maxMemoryKey          = "max_memory"
	tocTimeoutKey         = "toc_timeout"
	extractTimeoutKey     = "extract_timeout"
	tacticTimeoutKey      = "tactic_timeout"
	killCloneKey          = "kill_clone"
	rebuildKey            = "rebuild"
	parallelKey           = "parallel"
	failOnPackageErrorKey = "fail_on_package_error"
	recoverGraceKey       = "recover_grace"
	serverStartTimeoutKey = "server_start_timeout"
	metricsTextfileKey    = "metrics.textfile"

	defaultConfigPath         = "config"
	defaultPort               = 8765
	defaultMaxMemory          = 0.80
	defaultTOCTimeout         = "5m"
	defaultExtractTimeout     = "2m"
	defaultTacticTimeout      = "30s"
	defaultKillClone          = false
	defaultRebuild            = false
	defaultParallel           = 1
	defaultFailOnPackageError = false
	defaultRecoverGrace       = "250ms"
	defaultServerStartTimeout = "30s"
	defaultMetricsTextfile    = ""

	envPrefix = "ROCQTRACE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".rocqtrace.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(configPathKey, defaultConfigPath)
	viper.SetDefault(portKey, defaultPort)
	viper.SetDefault(maxMemoryKey, defaultMaxMemory)
	viper.SetDefault(tocTimeoutKey, defaultTOCTimeout)
	viper.SetDefault(extractTimeoutKey, defaultExtractTimeout)
	viper.SetDefault(tacticTimeoutKey, defaultTacticTimeout)
	viper.SetDefault(killCloneKey, defaultKillClone)
	viper.SetDefault(rebuildKey, defaultRebuild)
	viper.SetDefault(parallelKey, defaultParallel)
	viper.SetDefault(failOnPackageErrorKey, defaultFailOnPackageError)
	viper.SetDefault(recoverGraceKey, defaultRecoverGrace)
	viper.SetDefault(serverStartTimeoutKey, defaultServerStartTimeout)
	viper.SetDefault(metricsTextfileKey, defaultMetricsTextfile)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// workflowOptions reads the run knobs from flags, environment and the
// config file, in that order of precedence.
func workflowOptions() domain.WorkflowOptions {
	return domain.WorkflowOptions{
		Extractor: domain.ExtractorOptions{
			TOCTimeout:     viper.GetDuration(tocTimeoutKey),
			ExtractTimeout: viper.GetDuration(extractTimeoutKey),
			MaxMemory:      viper.GetFloat64(maxMemoryKey),
		},
		BasePort:           viper.GetInt(portKey),
		KillClones:         viper.GetBool(killCloneKey),
		ServerStartTimeout: viper.GetDuration(serverStartTimeoutKey),
		RecoverGrace:       viper.GetDuration(recoverGraceKey),
		Parallel:           viper.GetInt(parallelKey),
		FailOnPackageError: viper.GetBool(failOnPackageErrorKey),
		Rebuild:            viper.GetBool(rebuildKey),
		MetricsTextfile:    viper.GetString(metricsTextfileKey),
	}
}

func tacticTimeout() time.Duration {
	return viper.GetDuration(tacticTimeoutKey)
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
// By default it logs at Info; if verbose is true it logs at Debug.
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

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
