package config

// logConfiguration holds the log verbosity knobs, analogous to the
// teacher's LogLevel/SearchLogLevel/TestLogLevel globals.
type logConfiguration struct {
	LogLevel       string
	SearchLogLevel string
}

func init() {
	Settings.Log.LogLevel = "INFO"
	Settings.Log.SearchLogLevel = "WARNING"
}
