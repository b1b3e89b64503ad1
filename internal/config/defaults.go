package config

const (
	defaultMediaInfoBinary  = "mediainfo"
	defaultTimeoutSeconds   = 30
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultCandidateFileExt = ".mkv"
)

// defaultTargets are the high-tier HEVC profiles that trip up older
// playback hardware (FireTV-era devices) or force server-side transcoding.
var defaultTargets = []string{
	"Main 10@L5.1@High",
	"Main 10@L5@High",
	"Main 10@L5.2@High",
	"High 10@L5",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Scan: Scan{
			Extensions: []string{defaultCandidateFileExt},
		},
		Profiles: Profiles{
			Targets: append([]string(nil), defaultTargets...),
		},
		MediaInfo: MediaInfo{
			Binary:         defaultMediaInfoBinary,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
