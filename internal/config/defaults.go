package config

const (
	defaultClipsDir             = "~/.local/share/soundboard/clips"
	defaultUploadDir            = "~/.cache/soundboard/uploads"
	defaultLogDir               = "~/.local/share/soundboard/logs"
	defaultLogRetentionDays     = 14
	defaultLogFormat            = "console"
	defaultLogLevel             = "info"
	defaultAPIBind              = "127.0.0.1:7488"
	defaultCatalogFile          = "catalog.toml"
	defaultPlayerBinary         = "ffplay"
	defaultFFprobeBinary        = "ffprobe"
	defaultProbeTimeoutSeconds  = 5
	defaultMaxVisualMillis      = 5000
	defaultFallbackVisualMillis = 1500
	defaultPressPulseMillis     = 120
	defaultUploadMaxBytes       = 20 << 20
)

var defaultPlayerArgs = []string{"-nodisp", "-autoexit", "-loglevel", "error", "{file}"}

var defaultAllowedExtensions = []string{
	".mp3", ".wav", ".ogg", ".oga", ".m4a", ".aac", ".flac", ".webm", ".opus",
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ClipsDir:  defaultClipsDir,
			UploadDir: defaultUploadDir,
			LogDir:    defaultLogDir,
			APIBind:   defaultAPIBind,
		},
		Playback: Playback{
			PlayerBinary:         defaultPlayerBinary,
			PlayerArgs:           append([]string(nil), defaultPlayerArgs...),
			FFprobeBinary:        defaultFFprobeBinary,
			ProbeTimeoutSeconds:  defaultProbeTimeoutSeconds,
			MaxVisualMillis:      defaultMaxVisualMillis,
			FallbackVisualMillis: defaultFallbackVisualMillis,
			PressPulseMillis:     defaultPressPulseMillis,
		},
		Upload: Upload{
			MaxBytes:          defaultUploadMaxBytes,
			AllowedExtensions: append([]string(nil), defaultAllowedExtensions...),
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
