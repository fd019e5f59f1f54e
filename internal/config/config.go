package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/kapu/slack-channel-provisioner/internal/constants"
	"github.com/kapu/slack-channel-provisioner/pkg/errors"
)

type Config struct {
	Slack    SlackConfig
	Inputs   InputConfig
	Throttle ThrottleConfig
	Logging  LoggingConfig
}

type SlackConfig struct {
	Token          string
	BaseURL        string
	RequestTimeout time.Duration
}

type InputConfig struct {
	ChannelsFile string
	InviteesFile string
}

type ThrottleConfig struct {
	ProvisionInterval time.Duration
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Slack: SlackConfig{
			Token:          getEnv("SLACK_TOKEN", ""),
			BaseURL:        getEnv("SLACK_API_URL", constants.APIConfig.SlackBaseURL),
			RequestTimeout: getEnvDuration("SLACK_REQUEST_TIMEOUT_SECONDS", constants.HTTPConfig.RequestTimeout),
		},
		Inputs: InputConfig{
			ChannelsFile: getEnv("CHANNELS_FILE", constants.InputConfig.ChannelsFile),
			InviteesFile: getEnv("INVITE_USERS_FILE", constants.InputConfig.InviteesFile),
		},
		Throttle: ThrottleConfig{
			ProvisionInterval: getEnvDuration("PROVISION_INTERVAL_SECONDS", constants.ThrottleConfig.ProvisionInterval),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Slack.Token == "" {
		return errors.NewConfigError("SLACK_TOKEN is required", "env")
	}
	if c.Slack.BaseURL == "" {
		return errors.NewConfigError("SLACK_API_URL must not be empty", "env")
	}
	if c.Slack.RequestTimeout <= 0 {
		return errors.NewConfigError("SLACK_REQUEST_TIMEOUT_SECONDS must be positive", "env")
	}
	if c.Throttle.ProvisionInterval < 0 {
		return errors.NewConfigError("PROVISION_INTERVAL_SECONDS must not be negative", "env")
	}
	if c.Inputs.ChannelsFile == "" {
		return errors.NewConfigError("CHANNELS_FILE must not be empty", "env")
	}
	if c.Inputs.InviteesFile == "" {
		return errors.NewConfigError("INVITE_USERS_FILE must not be empty", "env")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	seconds, err := strconv.ParseFloat(value, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid %s value %q, using default\n", key, value)
		return defaultValue
	}
	return time.Duration(seconds * float64(time.Second))
}
