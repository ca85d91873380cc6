package config

import (
	"errors"
	"fmt"

	"github.com/FengLee1113/sentry/internal/cli/output"
	"github.com/FengLee1113/sentry/pkg/core"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	for key := range c.Labels.Methods {
		if _, err := core.ParseMethodType(key); err != nil {
			errs = append(errs, fmt.Errorf("labels.methods: %w", err))
		}
	}
	for key := range c.Labels.Types {
		if _, err := core.ParseRuleType(key); err != nil {
			errs = append(errs, fmt.Errorf("labels.types: %w", err))
		}
	}

	return errors.Join(errs...)
}
