package config

import "fmt"

func ValidateForRun(cfg *Config) error {
	if cfg.Port == "" {
		return ErrPortMissing
	}
	if err := cfg.Policy.Validate(); err != nil {
		return fmt.Errorf("attendance policy: %w", err)
	}
	return nil
}
