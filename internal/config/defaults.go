package config

const (
	defaultOutputDir    = "./output"
	defaultHistoryDir   = "~/.local/share/contentgen/history"
	defaultStateDir     = "~/.local/share/contentgen"
	defaultTemplate     = "ct2022"
	defaultFetchTimeout = 30
	defaultUserAgent    = "contentgen/1.0"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir:  defaultOutputDir,
			HistoryDir: defaultHistoryDir,
			StateDir:   defaultStateDir,
		},
		Defaults: Defaults{
			Template: defaultTemplate,
		},
		Source: Source{
			FetchTimeout: defaultFetchTimeout,
			UserAgent:    defaultUserAgent,
		},
		History: History{
			Enabled:   true,
			JSONFiles: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
