package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "RESUME"

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Export  ExportConfig  `mapstructure:"export"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

func (s ServerConfig) Addr() string { return fmt.Sprintf("%s:%d", s.Host, s.Port) }

// StorageConfig selects the persistence backend. Driver is one of sqlite,
// file, postgres or memory; Path is the database file (sqlite) or the
// directory (file); DSN is only read by postgres.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	DSN    string `mapstructure:"dsn"`
}

type ExportConfig struct {
	Dir        string        `mapstructure:"dir"`
	Attempts   int           `mapstructure:"attempts"`
	ChromePath string        `mapstructure:"chrome_path"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3000)
	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("export.dir", "resume-data/generated")
	v.SetDefault("export.attempts", 3)
	v.SetDefault("export.chrome_path", "")
	v.SetDefault("export.timeout", 60*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Load resolves configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. An empty path falls back
// to $RESUME_CONFIG; a missing file is only an error when one was named.
// A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// unprefixed names the server has always honoured
	_ = v.BindEnv("server.port", envPrefix+"_SERVER_PORT", "PORT")
	_ = v.BindEnv("export.chrome_path", envPrefix+"_EXPORT_CHROME_PATH", "CHROME_PATH")
	_ = v.BindEnv("storage.dsn", envPrefix+"_STORAGE_DSN", "DATABASE_URL")

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config to struct: %w", err)
	}
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = defaultStoragePath(cfg.Storage.Driver)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultStoragePath(driver string) string {
	if driver == "file" {
		return "resume-data/store"
	}
	return "resume-data/resume.db"
}

func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Driver {
	case "sqlite", "file", "memory":
	case "postgres":
		if c.Storage.DSN == "" {
			errs = append(errs, errors.New("storage.dsn is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Export.Attempts < 1 {
		errs = append(errs, errors.New("export.attempts must be at least 1"))
	}
	return errors.Join(errs...)
}
