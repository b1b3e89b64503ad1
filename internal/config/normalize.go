package config

import "strings"

// normalize trims string fields and canonicalizes extensions and log
// settings. Target profiles are left untouched apart from dropping empty
// entries: matching is exact and case-sensitive, so no case folding or
// trimming may be applied to them.
func (c *Config) normalize() {
	extensions := make([]string, 0, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions = append(extensions, ext)
	}
	c.Scan.Extensions = extensions

	targets := make([]string, 0, len(c.Profiles.Targets))
	for _, target := range c.Profiles.Targets {
		if target == "" {
			continue
		}
		targets = append(targets, target)
	}
	c.Profiles.Targets = targets

	c.MediaInfo.Binary = strings.TrimSpace(c.MediaInfo.Binary)
	if c.MediaInfo.Binary == "" {
		c.MediaInfo.Binary = defaultMediaInfoBinary
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
