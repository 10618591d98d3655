package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config - invalid")

type (
	// Config -.
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"logger"`
		BMC        `yaml:"bmc"`
		Secrets    `yaml:"secrets"`
		DB         `yaml:"db"`
		Sync       `yaml:"sync"`
		Features   []Feature `yaml:"features" validate:"dive"`
		SecureBoot `yaml:"secure_boot"`
		Status     `yaml:"status"`
	}

	// App -.
	App struct {
		Name    string `env-required:"true" yaml:"name" env:"APP_NAME"`
		Repo    string `env-required:"true" yaml:"repo" env:"APP_REPO"`
		Version string `env-required:"true"`
	}

	// Log -.
	Log struct {
		Level string `env-required:"true" yaml:"log_level" env:"LOG_LEVEL"`
	}

	// BMC is the remote Redfish service.
	BMC struct {
		URL                string `env-required:"true" yaml:"url" env:"BMC_URL"`
		Username           string `yaml:"username" env:"BMC_USERNAME"`
		Password           string `yaml:"password" env:"BMC_PASSWORD"`
		InsecureSkipVerify bool   `yaml:"insecure_skip_verify" env:"BMC_INSECURE_SKIP_VERIFY"`
		CredentialKey      string `yaml:"credential_key" env:"BMC_CREDENTIAL_KEY"`
	}

	// Secrets -.
	Secrets struct {
		Address string `yaml:"address" env:"SECRETS_ADDR"`
		Token   string `yaml:"token" env:"SECRETS_TOKEN"`
		Path    string `yaml:"path" env:"SECRETS_PATH"`
	}

	// DB -.
	DB struct {
		PoolMax int    `env-required:"true" yaml:"pool_max" env:"DB_POOL_MAX"`
		URL     string `yaml:"url" env:"DB_URL"`
	}

	// Sync -.
	Sync struct {
		Interval          time.Duration `yaml:"interval" env:"SYNC_INTERVAL"`
		ExpandTasks       bool          `yaml:"expand_tasks" env:"SYNC_EXPAND_TASKS"`
		TaskCollectionURI string        `yaml:"task_collection_uri" env:"SYNC_TASK_COLLECTION_URI"`
	}

	// Feature binds a schema to the URI of its resource or collection.
	Feature struct {
		Schema string `yaml:"schema" validate:"required"`
		URI    string `yaml:"uri" validate:"required,startswith=/"`
	}

	// SecureBoot -.
	SecureBoot struct {
		Enabled   bool   `yaml:"enabled" env:"SECURE_BOOT_ENABLED"`
		ListenURI string `yaml:"listen_uri" env:"SECURE_BOOT_LISTEN_URI"`
	}

	// Status is the local health and metrics server.
	Status struct {
		Enabled bool   `yaml:"enabled" env:"STATUS_ENABLED"`
		Host    string `yaml:"host" env:"STATUS_HOST"`
		Port    string `yaml:"port" env:"STATUS_PORT"`
		Pprof   bool   `yaml:"pprof" env:"STATUS_PPROF"`
	}
)

// defaultConfig constructs the in-memory default configuration.
func defaultConfig() *Config {
	return &Config{
		App: App{
			Name:    "redfish-sync",
			Repo:    "device-management-toolkit/redfish-sync",
			Version: "DEVELOPMENT",
		},
		Log: Log{
			Level: "info",
		},
		BMC: BMC{
			URL:                "https://localhost:8443",
			Username:           "",
			Password:           "",
			InsecureSkipVerify: false,
			CredentialKey:      "bmc_password",
		},
		Secrets: Secrets{
			Address: "",
			Token:   "",
			Path:    "secret/data/redfish-sync",
		},
		DB: DB{
			PoolMax: 2,
			URL:     "",
		},
		Sync: Sync{
			Interval:          time.Minute,
			ExpandTasks:       true,
			TaskCollectionURI: "/redfish/v1/TaskService/Tasks",
		},
		Features: []Feature{
			{Schema: "Bios", URI: "/redfish/v1/Systems/1/Bios"},
			{Schema: "ComputerSystem", URI: "/redfish/v1/Systems"},
			{Schema: "Memory", URI: "/redfish/v1/Systems/1/Memory"},
			{Schema: "SecureBoot", URI: "/redfish/v1/Systems/1/SecureBoot"},
		},
		SecureBoot: SecureBoot{
			Enabled:   true,
			ListenURI: "/redfish/v1/Systems/1/SecureBoot/SecureBootDatabases",
		},
		Status: Status{
			Enabled: false,
			Host:    "localhost",
			Port:    "8182",
			Pprof:   false,
		},
	}
}

// resolveConfigPath determines the effective config file path based on a flag value or default location.
func resolveConfigPath(configPathFlag string) (string, error) {
	if configPathFlag != "" {
		return configPathFlag, nil
	}

	ex, err := os.Executable()
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(ex), "config", "config.yml"), nil
}

// readOrInitConfig attempts to read the config file; if it doesn't exist, writes the provided cfg to disk.
func readOrInitConfig(configPath string, cfg *Config) error {
	err := cleanenv.ReadConfig(configPath, cfg)
	if err == nil {
		return nil
	}

	var pathErr *os.PathError
	if !errors.As(err, &pathErr) {
		return err
	}

	if mkErr := os.MkdirAll(filepath.Dir(configPath), os.ModePerm); mkErr != nil {
		return mkErr
	}

	file, cErr := os.Create(configPath)
	if cErr != nil {
		return cErr
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	defer encoder.Close()

	return encoder.Encode(cfg)
}

// NewConfig returns app config read from configPath (or the default
// location when empty) and then from the environment.
func NewConfig(configPath string) (*Config, error) {
	cfg := defaultConfig()

	path, err := resolveConfigPath(configPath)
	if err != nil {
		return nil, err
	}

	if err := readOrInitConfig(path, cfg); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate -.
func (c *Config) Validate() error {
	if c.Sync.Interval <= 0 {
		return fmt.Errorf("%w: sync.interval must be positive, got %s", ErrInvalidConfig, c.Sync.Interval)
	}

	if c.SecureBoot.Enabled && c.SecureBoot.ListenURI == "" {
		return fmt.Errorf("%w: secure_boot.listen_uri is required", ErrInvalidConfig)
	}

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	seen := make(map[string]bool, len(c.Features))

	for _, f := range c.Features {
		if seen[f.URI] {
			return fmt.Errorf("%w: uri %s bound twice", ErrInvalidConfig, f.URI)
		}

		seen[f.URI] = true
	}

	return nil
}
