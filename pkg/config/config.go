package config

import (
	"github.com/spf13/viper"
)

// DefaultThreads is the worker-pool size used when neither flag nor
// config file says otherwise.
const DefaultThreads = 4

// Config holds tool settings loaded from an optional .pig.yaml file at
// the project root. Explicit command-line flags take precedence over
// values loaded here.
type Config struct {
	Threads     int      `mapstructure:"threads"`
	Backup      bool     `mapstructure:"backup"`
	Gitignore   bool     `mapstructure:"gitignore"`
	StdModules  []string `mapstructure:"std_modules"`
	ExcludeDirs []string `mapstructure:"exclude_dirs"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Threads:   DefaultThreads,
		Gitignore: true,
	}
}

// Load reads .pig.yaml from the given directory, falling back to
// defaults when no file is present.
func Load(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("threads", DefaultThreads)
	v.SetDefault("backup", false)
	v.SetDefault("gitignore", true)

	v.SetConfigName(".pig")
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Default(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
