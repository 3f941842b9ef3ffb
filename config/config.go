package config

import (
	"errors"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Log      LogConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Dialogue DialogueConfig
}

type AppConfig struct {
	Port               string
	Env                string
	Timezone           string
	CORSOrigin         string
	CompletionInterval time.Duration
}

type LogConfig struct {
	Level string
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Migrate  bool
}

type RedisConfig struct {
	Host           string
	Port           string
	Password       string
	DB             int
	DoctorCacheTTL time.Duration
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type DialogueConfig struct {
	MinConfidence float64
}

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

var ErrUnsupportedDriver = errors.New("DB_DRIVER must be postgres or mysql")

// LoadConfig reads .env from the working directory. Environment variables win.
func LoadConfig() (*Config, error) {
	return Load(".env")
}

// Load reads the given env file, which may be absent.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}
	}

	config := &Config{
		App: AppConfig{
			Port:               v.GetString("APP_PORT"),
			Env:                v.GetString("APP_ENV"),
			Timezone:           v.GetString("APP_TIMEZONE"),
			CORSOrigin:         v.GetString("CORS_ORIGIN"),
			CompletionInterval: durationOr(v.GetString("COMPLETION_INTERVAL"), 15*time.Minute),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		DB: DBConfig{
			Driver:   v.GetString("DB_DRIVER"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Migrate:  v.GetBool("DB_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:           v.GetString("REDIS_HOST"),
			Port:           v.GetString("REDIS_PORT"),
			Password:       v.GetString("REDIS_PASSWORD"),
			DB:             v.GetInt("REDIS_DB"),
			DoctorCacheTTL: durationOr(v.GetString("DOCTOR_CACHE_TTL"), 10*time.Minute),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: durationOr(v.GetString("JWT_ACCESS_EXPIRY"), 15*time.Minute),
		},
		Dialogue: DialogueConfig{
			MinConfidence: v.GetFloat64("DIALOGUE_MIN_CONFIDENCE"),
		},
	}

	if config.DB.Driver != DriverPostgres && config.DB.Driver != DriverMySQL {
		return nil, ErrUnsupportedDriver
	}

	return config, nil
}

// Location resolves APP_TIMEZONE, falling back to UTC.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "Europe/Bucharest")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "medical_bot")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("DIALOGUE_MIN_CONFIDENCE", 0.6)
}

func durationOr(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
