package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

// Init builds the global zap logger. Console encoding in debug mode,
// JSON otherwise.
func Init(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	sugar = l.Sugar()
}

// S returns the global sugared logger, initializing a default one if
// Init was never called (keeps tests and helpers simple).
func S() *zap.SugaredLogger {
	if sugar == nil {
		Init(true)
	}
	return sugar
}

func Infof(format string, args ...interface{})  { S().Infof(format, args...) }
func Warnf(format string, args ...interface{})  { S().Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { S().Errorf(format, args...) }
