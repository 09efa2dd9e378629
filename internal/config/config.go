package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Submit SubmitConfig `mapstructure:"submit"`
	Policy PolicyConfig `mapstructure:"policy"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type SubmitConfig struct {
	Confirm bool `mapstructure:"confirm"`
}

type PolicyConfig struct {
	Path string `mapstructure:"path"`
}

func Defaults() Config {
	return Config{
		Output: OutputConfig{Format: "json"},
		Submit: SubmitConfig{Confirm: true},
	}
}

// Load reads the optional user config. A missing file is not an error;
// command-line flags always win over config values.
func Load(configPath string) (Config, error) {
	cfg := Defaults()

	path := configPath
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "gh-pr-review", "config.yaml")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "json"
	}
	return cfg, nil
}
