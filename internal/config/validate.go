package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions: at least one extension is required")
	}
	for _, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("scan.extensions: invalid extension %q", ext)
		}
	}
	if c.Scan.Jobs < 0 {
		return fmt.Errorf("scan.jobs: must not be negative, got %d", c.Scan.Jobs)
	}

	if len(c.Profiles.Targets) == 0 {
		return errors.New("profiles.targets: at least one target profile is required")
	}

	if c.MediaInfo.TimeoutSeconds <= 0 {
		return fmt.Errorf("mediainfo.timeout_seconds: must be positive, got %d", c.MediaInfo.TimeoutSeconds)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}

	return nil
}
