package main

import "github.com/ilyakaznacheev/cleanenv"

// envConfig carries settings read from the environment. Flags take
// precedence when both are supplied.
type envConfig struct {
	DataFile string `env:"HOLDEM_COACH_DATA" env-default:""`
	LogLevel string `env:"HOLDEM_COACH_LOG_LEVEL" env-default:"info"`
}

// loadEnvConfig reads environment variables into an envConfig instance.
func loadEnvConfig() (*envConfig, error) {
	cfg := &envConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
