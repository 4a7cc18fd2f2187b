package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ModeConsole = "console"
	ModeMCP     = "mcp"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config defines application configuration.
type Config struct {
	Mode string    `yaml:"mode"`
	DB   DBConfig  `yaml:"db"`
	Log  LogConfig `yaml:"log"`
}

type DBConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	URL    string `yaml:"url"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

const defaultEnvFile = ".env"

// Load builds the configuration from defaults, an optional YAML file, an
// optional .env file and environment variables, in that order.
func Load() (Config, error) {
	cfg := Config{
		Mode: ModeConsole,
		DB: DBConfig{
			Driver: DriverSQLite,
			Path:   "projects.db",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}

	if path := os.Getenv("PROJECTS_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	if mode := os.Getenv("PROJECTS_MODE"); mode != "" {
		cfg.Mode = mode
	}
	if driver := os.Getenv("PROJECTS_DB_DRIVER"); driver != "" {
		cfg.DB.Driver = driver
	}
	if dbPath := os.Getenv("PROJECTS_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if url := os.Getenv("PROJECTS_DB_URL"); url != "" {
		cfg.DB.URL = url
	}
	if level := os.Getenv("PROJECTS_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("PROJECTS_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Mode, validation.Required, validation.In(ModeConsole, ModeMCP)),
		validation.Field(&c.DB),
		validation.Field(&c.Log),
	)
}

func (c DBConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Driver, validation.Required, validation.In(DriverSQLite, DriverPostgres)),
		validation.Field(&c.Path, validation.When(c.Driver == DriverSQLite, validation.Required)),
		validation.Field(&c.URL, validation.When(c.Driver == DriverPostgres, validation.Required.Error("is required for the postgres driver"))),
	)
}

func (c LogConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("debug", "info", "warn", "error")),
	)
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// loadEnvFile sets variables from the .env file without overriding the real
// environment. A missing default file is ignored; a missing file named by
// PROJECTS_ENV_FILE is an error.
func loadEnvFile() error {
	path := os.Getenv("PROJECTS_ENV_FILE")
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file: %w", err)
}
