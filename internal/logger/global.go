package logger

import (
	"strings"
	"sync/atomic"
)

var global atomic.Pointer[Logger]

func init() {
	global.Store(NewDefault())
}

var (
	levelNames = map[string]LogLevel{
		"debug":   DEBUG,
		"info":    INFO,
		"warn":    WARN,
		"warning": WARN,
		"error":   ERROR,
		"fatal":   FATAL,
	}
	formatNames = map[string]LogFormat{
		"json":    JSONFormat,
		"text":    TextFormat,
		"console": TextFormat,
	}
)

// Configure applies LOG_LEVEL and LOG_FORMAT values to the global logger.
// Empty or unknown values leave the current setting untouched.
func Configure(level, format string) {
	l := GetGlobalLogger()
	if lvl := ParseLogLevel(level); lvl != -1 {
		l.SetLevel(lvl)
	}
	if f := ParseLogFormat(format); f != -1 {
		l.SetFormat(f)
	}
}

// ParseLogLevel returns -1 for an unknown level.
func ParseLogLevel(level string) LogLevel {
	if lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]; ok {
		return lvl
	}
	return -1
}

// ParseLogFormat returns -1 for an unknown format.
func ParseLogFormat(format string) LogFormat {
	if f, ok := formatNames[strings.ToLower(strings.TrimSpace(format))]; ok {
		return f
	}
	return -1
}

// GetGlobalLogger returns the process-wide logger used by the commands.
func GetGlobalLogger() *Logger {
	return global.Load()
}

// SetGlobalLogger replaces the process-wide logger. Loggers already derived
// with WithComponent keep their parent.
func SetGlobalLogger(l *Logger) {
	if l != nil {
		global.Store(l)
	}
}

func Debug(message string, fields ...map[string]interface{}) {
	GetGlobalLogger().Debug(message, fields...)
}

func Info(message string, fields ...map[string]interface{}) {
	GetGlobalLogger().Info(message, fields...)
}

func Error(message string, err error, fields ...map[string]interface{}) {
	GetGlobalLogger().Error(message, err, fields...)
}

// Fatal logs through the global logger and exits with status 1.
func Fatal(message string, err error, fields ...map[string]interface{}) {
	GetGlobalLogger().Fatal(message, err, fields...)
}
