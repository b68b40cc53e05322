package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/jpdb/jpdb"
)

type Config struct {
	JPDB JPDBConfig `mapstructure:"jpdb"`
}

type JPDBConfig struct {
	Token        string        `mapstructure:"token"`
	BaseURL      string        `mapstructure:"base_url" validate:"required,http_url"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gt=0s"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0s,ltefield=ReadTimeout"`
}

// ClientOptions converts the settings into options for jpdb.NewClient.
func (c JPDBConfig) ClientOptions(logger *slog.Logger) []jpdb.Option {
	return []jpdb.Option{
		jpdb.WithBaseURL(c.BaseURL),
		jpdb.WithReadTimeout(c.ReadTimeout),
		jpdb.WithWriteTimeout(c.WriteTimeout),
		jpdb.WithLogger(logger),
	}
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/jpdb")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("jpdb.base_url", jpdb.DefaultBaseURL)
	v.SetDefault("jpdb.read_timeout", jpdb.DefaultReadTimeout)
	v.SetDefault("jpdb.write_timeout", jpdb.DefaultWriteTimeout)

	// Bind the token to an environment variable so it can stay out of config files
	if err := v.BindEnv("jpdb.token", "JPDB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind JPDB_TOKEN environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
