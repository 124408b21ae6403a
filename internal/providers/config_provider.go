package providers

import (
	"fmt"
	"github.com/spf13/viper"
	"path/filepath"
	"strings"
	"time"
	"urlchecker/internal/structures"
)

const (
	DefaultHistoryKey   = "urlHistory"
	DefaultEventsQueue  = "urlchecker.scans"
	DefaultScanLatency  = 1500 * time.Millisecond
	DefaultCopiedWindow = 2 * time.Second
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	v.SetDefault("webServer.host", "0.0.0.0")
	v.SetDefault("webServer.port", 8080)
	v.SetDefault("persistence.driver", "file")
	v.SetDefault("persistence.key", DefaultHistoryKey)
	v.SetDefault("persistence.compress", true)
	v.SetDefault("persistence.saveInterval", 30*time.Second)
	v.SetDefault("scanner.latency", DefaultScanLatency)
	v.SetDefault("scanner.copiedDisplay", DefaultCopiedWindow)
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("events.queue", DefaultEventsQueue)

	v.BindEnv("logger.level", "URLCHECKER_LOG_LEVEL")
	v.BindEnv("scanner.latency", "URLCHECKER_SCAN_LATENCY")
	v.BindEnv("persistence.driver", "URLCHECKER_STORAGE_DRIVER")
	v.BindEnv("persistence.dir", "URLCHECKER_STORAGE_DIR")
	v.BindEnv("persistence.valkeyAddress", "URLCHECKER_VALKEY_ADDRESS")
	v.BindEnv("persistence.postgresDsn", "URLCHECKER_POSTGRES_DSN")
	v.BindEnv("events.url", "URLCHECKER_EVENTS_URL")
	v.BindEnv("cache.enabled", "URLCHECKER_CACHE_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "URLChecker"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
