package config

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/idleberg/bun-plugin-coffeescript/pluginapi"
)

const Name = "coffeescript"

var Paths []string = []string{
	".",
	"$HOME/.config/coffeescript",
}

var (
	ErrBindEnv         = errors.New("failed to bind env")
	ErrReadConfig      = errors.New("failed to read config")
	ErrUnmarshalConfig = errors.New("failed to unmarshal config")
)

var envs = map[string][]string{
	"bare":       {"COFFEE_BARE"},
	"header":     {"COFFEE_HEADER"},
	"inline_map": {"COFFEE_INLINE_MAP"},
	"log.level":  {"COFFEE_LOG_LEVEL"},
}

type Config struct {
	Bare      bool `mapstructure:"bare"`
	Header    bool `mapstructure:"header"`
	InlineMap bool `mapstructure:"inline_map"`
	Log       struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// CompilerOptions flattens the file configuration into the option bag the
// plugin constructor takes. The inline-map key is included here; the plugin
// strips it before the compiler sees it.
func (c *Config) CompilerOptions() pluginapi.CompilerOptions {
	return pluginapi.CompilerOptions{
		"bare":      c.Bare,
		"header":    c.Header,
		"inlineMap": c.InlineMap,
	}
}

func Load() (*Config, error) {
	viper.SetConfigName(Name)
	for _, path := range Paths {
		viper.AddConfigPath(path)
	}
	viper.AutomaticEnv()

	for envName, keys := range envs {
		binding := []string{envName}
		binding = append(binding, keys...)

		if err := viper.BindEnv(binding...); err != nil {
			return nil, errors.Join(ErrBindEnv, err)
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Join(ErrReadConfig, err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Join(ErrUnmarshalConfig, err)
	}

	return &cfg, nil
}
