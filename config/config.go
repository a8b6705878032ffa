package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string        `mapstructure:"PORT"`
	AdminPassword     string        `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash string        `mapstructure:"ADMIN_PASSWORD_HASH"`
	AdminTokenSecret  string        `mapstructure:"ADMIN_TOKEN_SECRET"`
	AdminTokenTTL     time.Duration `mapstructure:"ADMIN_TOKEN_TTL"`
	AllowedOrigins    string        `mapstructure:"ALLOWED_ORIGINS"`
	LogMode           string        `mapstructure:"LOG_MODE"`
	GinMode           string        `mapstructure:"GIN_MODE"`

	StoreDriver string `mapstructure:"STORE_DRIVER"`
	DataDir     string `mapstructure:"DATA_DIR"`
	SQLitePath  string `mapstructure:"SQLITE_PATH"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	RedisAddr   string `mapstructure:"REDIS_ADDR"`
	RedisPrefix string `mapstructure:"REDIS_PREFIX"`

	MongoURI string `mapstructure:"MONGO_URI"`
	MongoDB  string `mapstructure:"MONGO_DB"`
}

var keys = []string{
	"PORT", "ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH", "ADMIN_TOKEN_SECRET", "ADMIN_TOKEN_TTL",
	"ALLOWED_ORIGINS", "LOG_MODE", "GIN_MODE",
	"STORE_DRIVER", "DATA_DIR", "SQLITE_PATH",
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
	"REDIS_ADDR", "REDIS_PREFIX",
	"MONGO_URI", "MONGO_DB",
}

// LoadConfig reads path/app.env when present and lets the environment
// override it. A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("PORT", "3000")
	v.SetDefault("ADMIN_TOKEN_TTL", "12h")
	v.SetDefault("STORE_DRIVER", "file")
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("SQLITE_PATH", "data/cms.db")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PREFIX", "cms:")
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DB", "cms")
	v.SetDefault("LOG_MODE", "dev")

	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = v.Unmarshal(&config)
	return
}

// Addr is the listen address for PORT, accepting both "3000" and ":3000".
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
