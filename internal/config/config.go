package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Источники каталога
const (
	SourceSeed     = "seed"
	SourceCSV      = "csv"
	SourceDatabase = "database"
)

// Режимы выдачи каталога запросам
const (
	ModeCached = "cached"
	ModeLive   = "live"
)

// Слушатели событий перезагрузки каталога
const (
	ListenerNone     = ""
	ListenerPostgres = "postgres"
	ListenerAMQP     = "amqp"
)

type Config struct {
	Server struct {
		Host            string        `mapstructure:"host"`
		Port            int           `mapstructure:"port"`
		Env             string        `mapstructure:"env"`
		CORSOrigins     []string      `mapstructure:"cors_origins"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"server"`

	Database struct {
		Driver      string `mapstructure:"driver"` // postgres, mysql
		DSN         string `mapstructure:"url"`
		PingRetries int    `mapstructure:"ping_retries"`
	} `mapstructure:"database"`

	Catalog struct {
		Source           string        `mapstructure:"source"` // seed, csv, database
		Mode             string        `mapstructure:"mode"`   // cached, live
		UniversitiesPath string        `mapstructure:"universities_path"`
		ScholarshipsPath string        `mapstructure:"scholarships_path"`
		RefreshInterval  time.Duration `mapstructure:"refresh_interval"`
	} `mapstructure:"catalog"`

	Storage struct {
		Region    string `mapstructure:"region"`
		Endpoint  string `mapstructure:"endpoint"` // R2 или совместимый S3
		AccessKey string `mapstructure:"access_key"`
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"storage"`

	Events struct {
		Listener     string `mapstructure:"listener"` // "", postgres, amqp
		Channel      string `mapstructure:"channel"`  // канал LISTEN/NOTIFY
		AMQPURL      string `mapstructure:"amqp_url"`
		AMQPExchange string `mapstructure:"amqp_exchange"`
	} `mapstructure:"events"`
}

var (
	AppConfig *Config
	loadOnce  sync.Mutex
)

// переменные окружения, которые исторически задаются без префикса
var envBindings = map[string]string{
	"database.url":              "DATABASE_URL",
	"database.driver":           "DATABASE_DRIVER",
	"server.port":               "SERVER_PORT",
	"server.env":                "SERVER_ENV",
	"catalog.source":            "CATALOG_SOURCE",
	"catalog.mode":              "CATALOG_MODE",
	"catalog.universities_path": "UNIVERSITIES_PATH",
	"catalog.scholarships_path": "SCHOLARSHIPS_PATH",
	"storage.access_key":        "STORAGE_ACCESS_KEY",
	"storage.secret_key":        "STORAGE_SECRET_KEY",
	"events.amqp_url":           "RABBITMQ_URL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.env", "development")
	v.SetDefault("server.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.url", "")
	v.SetDefault("database.ping_retries", 3)

	v.SetDefault("catalog.source", SourceSeed)
	v.SetDefault("catalog.mode", ModeCached)
	v.SetDefault("catalog.universities_path", "data/universities.csv")
	v.SetDefault("catalog.scholarships_path", "data/scholarships.csv")
	v.SetDefault("catalog.refresh_interval", "0s")

	v.SetDefault("storage.region", "auto")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.access_key", "")
	v.SetDefault("storage.secret_key", "")

	v.SetDefault("events.listener", ListenerNone)
	v.SetDefault("events.channel", "catalog_updated")
	v.SetDefault("events.amqp_url", "")
	v.SetDefault("events.amqp_exchange", "catalog.events")
}

// Load читает конфигурацию: .env -> config.yaml (если есть) -> переменные окружения.
// path пустой - берётся CONFIG_PATH или config/config.yaml.
func Load(v *viper.Viper, path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = "config/config.yaml"
	}
	v.SetConfigFile(path)
	// файл необязателен: без него работают значения по умолчанию и окружение
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность секций
func (c *Config) Validate() error {
	switch c.Catalog.Source {
	case SourceSeed, SourceCSV:
	case SourceDatabase:
		if c.Database.DSN == "" {
			return fmt.Errorf("catalog.source=database requires database.url")
		}
	default:
		return fmt.Errorf("unsupported catalog source: %q", c.Catalog.Source)
	}

	switch c.Catalog.Mode {
	case ModeCached, ModeLive:
	default:
		return fmt.Errorf("unsupported catalog mode: %q", c.Catalog.Mode)
	}

	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}

	switch c.Events.Listener {
	case ListenerNone:
	case ListenerPostgres:
		if c.Database.Driver != "postgres" || c.Database.DSN == "" {
			return fmt.Errorf("events.listener=postgres requires a postgres database.url")
		}
	case ListenerAMQP:
		if c.Events.AMQPURL == "" {
			return fmt.Errorf("events.listener=amqp requires events.amqp_url")
		}
	default:
		return fmt.Errorf("unsupported events listener: %q", c.Events.Listener)
	}
	return nil
}

// Address - адрес для http.Server
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// LoadConfig загружает глобальную конфигурацию, падая при ошибке
func LoadConfig() {
	loadOnce.Lock()
	defer loadOnce.Unlock()

	cfg, err := Load(viper.GetViper(), viper.GetString("config"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	AppConfig = cfg
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
