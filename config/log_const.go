package config

// Color constants for component loggers
const (
	ColorGreen   = "\033[32m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
	ColorReset   = "\033[0m"
)
