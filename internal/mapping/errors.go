package mapping

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is matched by every ConfigError.
var ErrInvalidConfig = errors.New("invalid filter configuration")

// ConfigError reports a configuration input that could not be read or does
// not have the expected shape.
type ConfigError struct {
	// Source names the input, e.g. "allow-list" or "mapping table".
	Source string
	// Origin is the file path, or empty for inline text.
	Origin string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Origin != "" {
		return fmt.Sprintf("%s %s: %v", e.Source, e.Origin, e.Err)
	}

	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ConfigError against ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
