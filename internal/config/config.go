package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"

	"github.com/kudosboard/kudos-board/pkg/logger"
)

// Config is the full application configuration shared by cmd/api,
// cmd/migrate and cmd/kudos.
type Config struct {
	Env       string          `yaml:"env"`
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Cache     CacheConfig     `yaml:"cache"`
	Giphy     GiphyConfig     `yaml:"giphy"`
	Client    ClientConfig    `yaml:"client"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type ServerConfig struct {
	Port            int `yaml:"port"`
	ShutdownTimeout int `yaml:"shutdown_timeout"` // seconds
}

// DatabaseConfig selects the gorm dialect. "sqlite" uses Path, "mysql"
// uses DSN when set and otherwise builds one from the discrete fields.
type DatabaseConfig struct {
	Driver          string `yaml:"driver"`
	DSN             string `yaml:"dsn"`
	Path            string `yaml:"path"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	Name            string `yaml:"name"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // seconds
	LogSQL          bool   `yaml:"log_sql"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

type CacheConfig struct {
	BoardsTTL int `yaml:"boards_ttl"` // seconds
}

type GiphyConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Limit   int    `yaml:"limit"`
	Rating  string `yaml:"rating"`
}

// ClientConfig configures the client core used by cmd/kudos.
type ClientConfig struct {
	APIURL  string `yaml:"api_url"`
	Timeout int    `yaml:"timeout"` // seconds
}

type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Env: "local",
		Server: ServerConfig{
			Port:            3000,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:          "sqlite",
			Path:            "kudos.db",
			Host:            "localhost",
			Port:            3306,
			User:            "kudos",
			Name:            "kudos",
			MaxIdleConns:    5,
			MaxOpenConns:    20,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     6379,
			PoolSize: 10,
		},
		Cache: CacheConfig{
			BoardsTTL: 30,
		},
		Giphy: GiphyConfig{
			BaseURL: "https://api.giphy.com/v1/gifs",
			Limit:   12,
			Rating:  "g",
		},
		Client: ClientConfig{
			APIURL:  "http://localhost:3000/api",
			Timeout: 10,
		},
		CORS: CORSConfig{
			AllowOrigins: "http://localhost:3001,http://localhost:5173",
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 120,
		},
	}
}

// Load reads the YAML file at path on top of Default and then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// PathForEnv returns configs/config.{env}.yaml, with env defaulting to "local".
func PathForEnv(env string) string {
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func applyEnv(cfg *Config) {
	setString(&cfg.Env, "APP_ENV")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setInt(&cfg.Server.Port, "PORT")

	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.DSN, "DB_DSN")
	setString(&cfg.Database.Path, "DB_PATH")
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")

	setBool(&cfg.Redis.Enabled, "REDIS_ENABLED")
	setString(&cfg.Redis.Host, "REDIS_HOST")
	setInt(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "REDIS_DB")

	setString(&cfg.Giphy.APIKey, "GIPHY_API_KEY")
	setString(&cfg.Giphy.BaseURL, "GIPHY_API_URL")

	setString(&cfg.Client.APIURL, "KUDOS_API_URL")
	setInt(&cfg.Client.Timeout, "KUDOS_API_TIMEOUT")

	setString(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// IsDevelopment reports whether the app runs in a local/dev environment.
func (c *Config) IsDevelopment() bool {
	switch c.Env {
	case "", "local", "dev", "development":
		return true
	}
	return false
}

// GetDSN returns the MySQL DSN, building it from discrete fields when DSN is empty.
func (d DatabaseConfig) GetDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	mc := mysqldriver.NewConfig()
	mc.User = d.User
	mc.Passwd = d.Password
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", d.Host, d.Port)
	mc.DBName = d.Name
	mc.ParseTime = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

// ConnMaxLifetimeDuration converts ConnMaxLifetime to a time.Duration.
func (d DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// Addr is the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func (c CacheConfig) BoardsTTLDuration() time.Duration {
	return time.Duration(c.BoardsTTL) * time.Second
}

func (c ClientConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// AllowOriginList splits the comma separated CORS origins.
func (c CORSConfig) AllowOriginList() []string {
	var out []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// LogResolved logs the effective configuration with secrets masked.
func LogResolved(cfg *Config) {
	log := logger.GetLogger()
	log.Info().
		Str("env", cfg.Env).
		Int("port", cfg.Server.Port).
		Str("db_driver", cfg.Database.Driver).
		Str("db_target", dbTarget(cfg.Database)).
		Bool("redis", cfg.Redis.Enabled).
		Str("redis_addr", cfg.Redis.Addr()).
		Bool("giphy_key", cfg.Giphy.APIKey != "").
		Strs("cors_origins", cfg.CORS.AllowOriginList()).
		Msg("config resolved")
}

func dbTarget(d DatabaseConfig) string {
	if d.Driver == "sqlite" {
		return d.Path
	}
	mc, err := mysqldriver.ParseDSN(d.GetDSN())
	if err != nil {
		return "invalid dsn"
	}
	return fmt.Sprintf("%s@%s/%s", mc.User, mc.Addr, mc.DBName)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
