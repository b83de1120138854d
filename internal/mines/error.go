package mines

import (
	"errors"
	"fmt"
)

var ErrInvalidParams = errors.New("invalid game params")

// ConfigError is returned by [Generate] when the requested board cannot be
// built. It matches [ErrInvalidParams] under errors.Is.
type ConfigError struct {
	Params GameParams
	Reason string
}

// [ConfigError] implements [error]
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %s: %s", ErrInvalidParams, e.Params, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidParams
}
