package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/checkin/internal/constants"
	"github.com/julianstephens/checkin/internal/logger"
	"github.com/julianstephens/checkin/internal/utils"
)

// File is the on-disk config.yaml.
type File struct {
	Storage    string                    `yaml:"storage,omitempty"`
	Timezone   string                    `yaml:"timezone,omitempty"`
	WeekStart  string                    `yaml:"week_start,omitempty"`
	MonthLabel constants.MonthLabelStyle `yaml:"month_label,omitempty"`
	Debug      bool                      `yaml:"debug,omitempty"`
}

// Config is the resolved configuration.
type Config struct {
	// Dir holds config.yaml, logs, backups and the default database
	Dir  string
	Path string

	Storage    string
	Timezone   string
	WeekStart  string
	MonthLabel constants.MonthLabelStyle
	Debug      bool

	// DBConnection is a full PostgreSQL connection string taken from the
	// environment. It may carry a password and is never written to disk.
	DBConnection string
}

// Options are the command-line overrides, applied last.
type Options struct {
	ConfigFile string
	Storage    string
	Debug      bool
	// EnvFile defaults to ".env" in the working directory
	EnvFile string
	// Getenv defaults to os.Getenv
	Getenv func(string) string
}

// Default returns the built-in configuration rooted at dir.
func Default(dir string) *Config {
	return &Config{
		Dir:        dir,
		Path:       filepath.Join(dir, constants.ConfigFileName),
		Storage:    filepath.Join(dir, constants.AppName+".db"),
		Timezone:   constants.DefaultTimezone,
		WeekStart:  constants.DefaultWeekStart,
		MonthLabel: constants.DefaultMonthLabel,
	}
}

// Load resolves configuration from defaults, config.yaml, .env, the
// environment and opts, in increasing precedence.
func Load(opts Options) (*Config, error) {
	path := utils.ExpandPath(opts.ConfigFile)
	if path == "" {
		path = filepath.Join(utils.ExpandPath(constants.DefaultConfigDir), constants.ConfigFileName)
	}
	cfg := Default(filepath.Dir(path))
	cfg.Path = path

	file, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.apply(file)

	getenv, err := envLookup(opts)
	if err != nil {
		return nil, err
	}
	if v := getenv(constants.EnvStorage); v != "" {
		cfg.Storage = v
	}
	if v := getenv(constants.EnvTimezone); v != "" {
		cfg.Timezone = v
	}
	if v := getenv(constants.EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("config invalid bool, ignoring", "key", constants.EnvDebug, "value", v)
		} else {
			cfg.Debug = b
		}
	}
	cfg.DBConnection = getenv(constants.EnvDBConnection)

	if opts.Storage != "" {
		cfg.Storage = opts.Storage
	}
	if opts.Debug {
		cfg.Debug = true
	}
	cfg.Storage = utils.ExpandPath(cfg.Storage)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envLookup returns a getter that prefers the real environment over the
// .env file.
func envLookup(opts Options) (func(string) string, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	dotenv, err := godotenv.Read(envFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		logger.Debug("no .env file found, using environment variables")
		dotenv = map[string]string{}
	}

	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}, nil
}

func (c *Config) apply(f File) {
	if f.Storage != "" {
		c.Storage = f.Storage
	}
	if f.Timezone != "" {
		c.Timezone = f.Timezone
	}
	if f.WeekStart != "" {
		c.WeekStart = f.WeekStart
	}
	if f.MonthLabel != "" {
		c.MonthLabel = f.MonthLabel
	}
	if f.Debug {
		c.Debug = true
	}
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	if !utils.ValidateTimezone(c.Timezone) {
		return fmt.Errorf("invalid timezone %q", c.Timezone)
	}
	if !strings.EqualFold(c.WeekStart, constants.DefaultWeekStart) {
		return fmt.Errorf("unsupported week_start %q: calendars always start on %s", c.WeekStart, constants.DefaultWeekStart)
	}
	switch c.MonthLabel {
	case constants.MonthLabelEnglish, constants.MonthLabelChinese:
	default:
		return fmt.Errorf("invalid month_label %q (expected %s or %s)", c.MonthLabel, constants.MonthLabelEnglish, constants.MonthLabelChinese)
	}
	if strings.TrimSpace(c.Storage) == "" {
		return errors.New("storage target cannot be empty")
	}
	return nil
}

// Location returns the configured time zone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := utils.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// BackupDir is where file backups are kept.
func (c *Config) BackupDir() string {
	return filepath.Join(c.Dir, constants.BackupDirName)
}

// LockPath is the writer lockfile location.
func (c *Config) LockPath() string {
	return filepath.Join(c.Dir, constants.LockfileName)
}

// File returns the settings that belong in config.yaml.
func (c *Config) File() File {
	return File{
		Storage:    c.Storage,
		Timezone:   c.Timezone,
		WeekStart:  c.WeekStart,
		MonthLabel: c.MonthLabel,
		Debug:      c.Debug,
	}
}

// ReadFile parses a config.yaml. A missing file yields an empty File.
func ReadFile(path string) (File, error) {
	var f File
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return f, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return f, nil
}

// WriteFile writes f as YAML to path, creating the directory if needed.
func WriteFile(path string, f File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
