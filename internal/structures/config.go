package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Persistence struct {
	Driver        string        `yaml:"driver" validate:"required|in:file,memory,valkey,postgres"`
	Key           string        `yaml:"key" validate:"required"`
	Dir           string        `yaml:"dir"`
	Compress      bool          `yaml:"compress"`
	SaveInterval  time.Duration `yaml:"saveInterval" validate:"required|min:1"`
	ValkeyAddress string        `yaml:"valkeyAddress"`
	PostgresDsn   string        `yaml:"postgresDsn"`
}

type ScannerConfig struct {
	Latency       time.Duration `yaml:"latency"`
	CopiedDisplay time.Duration `yaml:"copiedDisplay" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	Ttl     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type EventsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Url     string `yaml:"url"`
	Queue   string `yaml:"queue"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	WebServer   Server        `yaml:"webServer"`
	Persistence Persistence   `yaml:"persistence"`
	Scanner     ScannerConfig `yaml:"scanner"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
	Events      EventsConfig  `yaml:"events"`
}
