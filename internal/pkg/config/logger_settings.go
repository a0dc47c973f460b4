package config

// Log levels, from most to least verbose
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Log sinks
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Record encodings. The file sink always writes JSON.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// LoggerSettings selects the log sink, its threshold and, for the file sink, lumberjack rotation.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=debug info warning error critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size" validate:"required_if=LogType file,omitempty,min=1,max=100"`
	MaxBackups int    `mapstructure:"max_backups" validate:"required_if=LogType file,omitempty,min=1,max=10"`
	MaxAge     int    `mapstructure:"max_age" validate:"required_if=LogType file,omitempty,min=1,max=365"`
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error { return validateStruct("LoggerSettings", s) }
