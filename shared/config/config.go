package config

import (
	"os"
	"path"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort       int           `yaml:"http_port" validate:"required"`
	LogLevel       string        `yaml:"log_level"`
	LogJSON        bool          `yaml:"log_json"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" validate:"required"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	AutoMigrate    bool          `yaml:"auto_migrate"`

	MaxTitleLength   int `yaml:"max_title_length" validate:"required"`
	MaxContentLength int `yaml:"max_content_length" validate:"required"`

	// number of comments enriched with replies and likes in parallel on thread read
	EnrichConcurrency int `yaml:"enrich_concurrency"`

	// write endpoints, per user (or per IP when anonymous)
	WriteRateLimit float64 `yaml:"write_rate_limit" validate:"required"` // requests per second
	WriteRateBurst int     `yaml:"write_rate_burst" validate:"required"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg              Pg     `yaml:"pg"`
	AccessTokenKey  string `yaml:"access_token_key" validate:"required"`
	RefreshTokenKey string `yaml:"refresh_token_key" validate:"required"`
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder, applies
// environment overrides (a .env file is loaded if present) and panics if a
// required field is still missing.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	_ = godotenv.Load() // .env is optional
	applyEnv(&private)

	cfg := &Config{Public: public, Private: private}
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		panic("invalid config: " + err.Error())
	}
	return cfg
}

func applyEnv(private *Private) {
	setString(&private.Pg.Host, "PGHOST")
	setString(&private.Pg.User, "PGUSER")
	setString(&private.Pg.Password, "PGPASSWORD")
	setString(&private.Pg.Dbname, "PGDATABASE")
	setString(&private.AccessTokenKey, "ACCESS_TOKEN_KEY")
	setString(&private.RefreshTokenKey, "REFRESH_TOKEN_KEY")
	if port, err := strconv.Atoi(os.Getenv("PGPORT")); err == nil {
		private.Pg.Port = port
	}
}

func setString(dst *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*dst = value
	}
}
