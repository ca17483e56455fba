package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/yungbote/eerste-dingen/internal/data/db"
	"github.com/yungbote/eerste-dingen/internal/modules/course/audio"
	"github.com/yungbote/eerste-dingen/internal/observability"
	"github.com/yungbote/eerste-dingen/internal/platform/envutil"
)

const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

type DBConfig struct {
	SQLitePath       string `yaml:"sqlitePath"`
	PostgresHost     string `yaml:"postgresHost"`
	PostgresPort     string `yaml:"postgresPort"`
	PostgresUser     string `yaml:"postgresUser"`
	PostgresPassword string `yaml:"postgresPassword"`
	PostgresName     string `yaml:"postgresName"`
	PostgresSSLMode  string `yaml:"postgresSSLMode"`
}

type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db" validate:"gte=0"`
	TTL      time.Duration `yaml:"ttl" validate:"gte=0"`
}

type SpeechConfig struct {
	Lang string  `yaml:"lang" validate:"required"`
	Rate float64 `yaml:"rate" validate:"gt=0,lte=2"`
}

type OtelConfig struct {
	Enabled     bool    `yaml:"enabled"`
	SampleRatio float64 `yaml:"sampleRatio" validate:"gte=0,lte=1"`
	Endpoint    string  `yaml:"endpoint"`
	Headers     string  `yaml:"headers"`
	Insecure    bool    `yaml:"insecure"`
}

type Config struct {
	Port            string   `yaml:"port" validate:"required,numeric"`
	LogMode         string   `yaml:"logMode" validate:"oneof=production development"`
	Environment     string   `yaml:"environment"`
	Version         string   `yaml:"version"`
	DataDir         string   `yaml:"dataDir" validate:"required"`
	PreferenceStore string   `yaml:"preferenceStore" validate:"oneof=sqlite postgres redis memory"`
	AllowedOrigins  []string `yaml:"allowedOrigins"`
	SecureCookies   bool     `yaml:"secureCookies"`

	DB     DBConfig     `yaml:"db"`
	Redis  RedisConfig  `yaml:"redis"`
	Speech SpeechConfig `yaml:"speech"`
	Otel   OtelConfig   `yaml:"otel"`
}

func DefaultConfig() Config {
	return Config{
		Port:            "8080",
		LogMode:         "development",
		Environment:     "local",
		DataDir:         "data",
		PreferenceStore: StoreSQLite,
		DB: DBConfig{
			SQLitePath:      "var/eerste-dingen.db",
			PostgresHost:    "localhost",
			PostgresPort:    "5432",
			PostgresName:    "eerste_dingen",
			PostgresSSLMode: "disable",
		},
		Redis: RedisConfig{
			TTL: 180 * 24 * time.Hour,
		},
		Speech: SpeechConfig{
			Lang: audio.DefaultLanguage,
			Rate: audio.DefaultRate,
		},
		Otel: OtelConfig{
			SampleRatio: 0.1,
		},
	}
}

// LoadConfig layers defaults, the optional YAML file at path and the
// environment, in that order, then validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Port = envutil.String("PORT", cfg.Port)
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)
	cfg.Environment = envutil.String("APP_ENV", cfg.Environment)
	cfg.Version = envutil.String("APP_VERSION", cfg.Version)
	cfg.DataDir = envutil.String("COURSE_DATA_DIR", cfg.DataDir)
	cfg.PreferenceStore = strings.ToLower(envutil.String("PREFERENCE_STORE", cfg.PreferenceStore))
	cfg.AllowedOrigins = envutil.List("CORS_ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.SecureCookies = envutil.Bool("SECURE_COOKIES", cfg.SecureCookies)

	cfg.DB.SQLitePath = envutil.String("SQLITE_PATH", cfg.DB.SQLitePath)
	cfg.DB.PostgresHost = envutil.String("POSTGRES_HOST", cfg.DB.PostgresHost)
	cfg.DB.PostgresPort = envutil.String("POSTGRES_PORT", cfg.DB.PostgresPort)
	cfg.DB.PostgresUser = envutil.String("POSTGRES_USER", cfg.DB.PostgresUser)
	cfg.DB.PostgresPassword = envutil.String("POSTGRES_PASSWORD", cfg.DB.PostgresPassword)
	cfg.DB.PostgresName = envutil.String("POSTGRES_NAME", cfg.DB.PostgresName)
	cfg.DB.PostgresSSLMode = envutil.String("POSTGRES_SSLMODE", cfg.DB.PostgresSSLMode)

	cfg.Redis.Addr = envutil.String("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envutil.String("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = envutil.Int("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.TTL = time.Duration(envutil.Int("REDIS_PREFERENCE_TTL_SECONDS", int(cfg.Redis.TTL/time.Second))) * time.Second

	cfg.Speech.Lang = envutil.String("SPEECH_LANG", cfg.Speech.Lang)
	cfg.Speech.Rate = envutil.Float("SPEECH_RATE", cfg.Speech.Rate)

	cfg.Otel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.Otel.Enabled)
	cfg.Otel.SampleRatio = envutil.Float("OTEL_SAMPLER_RATIO", cfg.Otel.SampleRatio)
	cfg.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint)
	cfg.Otel.Headers = envutil.String("OTEL_EXPORTER_OTLP_HEADERS", cfg.Otel.Headers)
	cfg.Otel.Insecure = envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", cfg.Otel.Insecure)
}

var validate = validator.New()

// Validate checks struct constraints and canonicalizes the speech language
// tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	tag, err := language.Parse(c.Speech.Lang)
	if err != nil {
		return fmt.Errorf("invalid config: speech language %q: %w", c.Speech.Lang, err)
	}
	c.Speech.Lang = tag.String()
	switch c.PreferenceStore {
	case StoreRedis:
		if c.Redis.Addr == "" {
			return errors.New("invalid config: redis preference store needs REDIS_ADDR")
		}
	case StorePostgres:
		if c.DB.PostgresUser == "" || c.DB.PostgresHost == "" {
			return errors.New("invalid config: postgres preference store needs POSTGRES_HOST and POSTGRES_USER")
		}
	}
	return nil
}

func (c Config) dbConfig() db.Config {
	return db.Config{
		Driver:           c.PreferenceStore,
		SQLitePath:       c.DB.SQLitePath,
		PostgresHost:     c.DB.PostgresHost,
		PostgresPort:     c.DB.PostgresPort,
		PostgresUser:     c.DB.PostgresUser,
		PostgresPassword: c.DB.PostgresPassword,
		PostgresName:     c.DB.PostgresName,
		PostgresSSLMode:  c.DB.PostgresSSLMode,
	}
}

func (c Config) otelConfig() observability.OtelConfig {
	return observability.OtelConfig{
		Enabled:     c.Otel.Enabled,
		ServiceName: serviceName,
		Environment: c.Environment,
		Version:     c.Version,
		SampleRatio: c.Otel.SampleRatio,
		Endpoint:    c.Otel.Endpoint,
		Headers:     c.Otel.Headers,
		Insecure:    c.Otel.Insecure,
	}
}
