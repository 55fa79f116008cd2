package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"time"
)

var (
	ErrConfigNotLoaded = errors.New("config not loaded")
)

type Environment string

const (
	Production  Environment = "prod"
	Development Environment = "dev"
)

func (e *Environment) SetValue(s string) error {
	*e = Environment(s)
	if *e != Production && *e != Development {
		return configNotLoadedErr(`only "prod" and "dev" environments are allowed`)
	}
	return nil
}

type Config struct {
	App struct {
		Env Environment `yaml:"env" env:"ENV" env-default:"dev"`
	} `yaml:"app" env-prefix:"APP_"`

	Server struct {
		Host              string        `yaml:"host" env:"HOST" env-default:"localhost"`
		Port              int           `yaml:"port" env:"PORT" env-default:"8080"`
		ReadTimeout       time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT" env-default:"10s"`
		WriteTimeout      time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT" env-default:"10s"`
		IdleTimeout       time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT" env-default:"10s"`
		ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"READ_HEADER_TIMEOUT" env-default:"5s"`
		MaxHeaderBytes    int           `yaml:"max_header_bytes" env:"MAX_HEADER_BYTES" env-default:"4096"`
		ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	} `yaml:"server" env-prefix:"SERVER_"`

	Console struct {
		LineDelay   time.Duration `yaml:"line_delay" env:"LINE_DELAY" env-default:"200ms"`
		MaxAttempts int           `yaml:"max_attempts" env:"MAX_ATTEMPTS" env-default:"0"`
	} `yaml:"console" env-prefix:"CONSOLE_"`

	Render struct {
		Width      int    `yaml:"width" env:"WIDTH" env-default:"600"`
		Height     int    `yaml:"height" env:"HEIGHT" env-default:"420"`
		Background string `yaml:"background" env:"BACKGROUND" env-default:"lightgray"`
		FontFamily string `yaml:"font_family" env:"FONT_FAMILY" env-default:"Arial"`
		FontSize   int    `yaml:"font_size" env:"FONT_SIZE" env-default:"14"`
	} `yaml:"render" env-prefix:"RENDER_"`
}

// Load reads filePath and applies environment overrides. An empty path
// configures from the environment alone.
func Load(filePath string) (*Config, error) {
	cfg := &Config{}
	var err error
	if filePath == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(filePath, cfg)
	}
	if err != nil {
		return nil, configNotLoadedErr("config not loaded: %w", err)
	}

	return cfg, nil
}

func MustLoad(filePath string) *Config {
	cfg, err := Load(filePath)
	if err != nil {
		panic(err)
	}
	return cfg
}

func configNotLoadedErr(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrConfigNotLoaded)
}
