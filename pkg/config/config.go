package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	envPrefix = "COURSESCHED"
)

type Config struct {
	Env       string          `mapstructure:"env"`
	Log       LogConfig       `mapstructure:"log"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Solver    SolverConfig    `mapstructure:"solver"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SchedulerConfig selects the search strategy used when none is given on the command line
type SchedulerConfig struct {
	Strategy string `mapstructure:"strategy"`
}

// SolverConfig selects the SAT solver used for feasibility checks
type SolverConfig struct {
	Name       string `mapstructure:"name"`
	KissatPath string `mapstructure:"kissatPath"`
}

// Load reads configuration from the optional file at path, a .env file in the working directory and COURSESCHED_* environment variables, in increasing order of precedence
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("cannot read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", EnvDevelopment)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("scheduler.strategy", "backtracking")
	v.SetDefault("solver.name", "gini")
	v.SetDefault("solver.kissatPath", "kissat")
}

func (cfg *Config) validate() error {
	switch cfg.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("invalid env %q", cfg.Env)
	}
	switch cfg.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", cfg.Log.Format)
	}
	switch strings.ToLower(cfg.Solver.Name) {
	case "gini", "kissat":
	default:
		return fmt.Errorf("invalid solver %q", cfg.Solver.Name)
	}
	return nil
}
