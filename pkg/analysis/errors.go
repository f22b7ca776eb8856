package analysis

import (
	"errors"
	"fmt"
)

// ErrSegmenterUnavailable reports that the segmentation dictionary could
// not be loaded. The pipeline cannot produce partial output without it.
var ErrSegmenterUnavailable = errors.New("segmentation dictionary unavailable")

// ConfigError reports a missing or unreadable configuration resource,
// such as the stopword list. It aborts a run before any tokenization.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config resource %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
