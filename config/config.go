package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/readmio/bookshelf-service/pkg/kafka"
	"github.com/readmio/bookshelf-service/pkg/logger"
	"github.com/readmio/bookshelf-service/pkg/sqlitedb"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

type Catalog struct {
	BaseURL string `envconfig:"CATALOG_BASE_URL"`
	APIKey  string `envconfig:"CATALOG_API_KEY"`
}

type Metadata struct {
	BaseURL string `envconfig:"METADATA_BASE_URL"`
}

type Search struct {
	Debounce  time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"2s"`
	ProbeAddr string        `envconfig:"NET_PROBE_ADDR"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Database sqlitedb.Config
	Catalog  Catalog
	Metadata Metadata
	Search   Search
	Kafka    kafka.Config
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}
