package constants

const (
	AppName           = "koffee"
	DefaultConfigPath = "~/.config/koffee/koffee.db"
	Version           = "v0.1.0"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// TimePattern is the accepted shape of user-entered clock times (24-hour HH:MM)
	TimePattern = `^([01]\d|2[0-3]):([0-5]\d)$`

	// Log constants
	LogDirName  = "logs"
	LogFileName = "koffee.log"

	// Server constants
	DefaultServeAddr = "127.0.0.1:8080"
)
