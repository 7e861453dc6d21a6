package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidIndustry is returned when an industry name is not in the
// catalog. The message is client-facing.
var ErrInvalidIndustry = errors.New("Invalid industry. Please provide a valid industry name.")

// ConfigError indicates a required setting is absent. Requests cannot
// proceed without it, but the process itself stays up.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s environment variable not set.", e.Setting)
}

// SynthesisError wraps a model failure during the market flow. It is
// recorded, not surfaced: the flow degrades to placeholder output.
type SynthesisError struct {
	Provider string
	Err      error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("synthesis via %s failed: %v", e.Provider, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
