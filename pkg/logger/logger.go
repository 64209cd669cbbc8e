package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Log *zap.Logger

// Init builds the global logger. Debug mode uses the colored development
// encoder. Otherwise logs are JSON at the given level, and an empty level
// silences logging so stdout carries only command output.
func Init(debug bool, level string) {
	var config zap.Config
	if debug {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	}
	config.OutputPaths = []string{"stderr"}

	var err error
	Log, err = config.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
}

// ParseLevel maps a LOG_LEVEL value to a zap level. Unknown and empty values
// resolve to a level above Fatal, which disables output.
func ParseLevel(level string) zapcore.Level {
	if level == "" {
		return zapcore.FatalLevel + 1
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.FatalLevel + 1
	}
	return l
}

// ValidLevel reports whether level is empty or a recognised zap level name.
func ValidLevel(level string) bool {
	if level == "" {
		return true
	}
	var l zapcore.Level
	return l.UnmarshalText([]byte(level)) == nil
}

func SetLogger(l *zap.Logger) {
	Log = l
}

func GetLogger() *zap.Logger {
	if Log == nil {
		Init(false, "")
	}
	return Log
}

func WithField(key string, value interface{}) *zap.Logger {
	return GetLogger().With(zap.Any(key, value))
}
