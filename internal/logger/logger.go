// Package logger builds the process-wide zap logger.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the logger flavor and optional rotated file output.
type Options struct {
	Mode     string // "production" or "development"
	Filename string
}

// New builds a logger and installs it as the zap global.
func New(opts Options) (*zap.Logger, error) {
	var zapConfig zap.Config
	if opts.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var (
		log *zap.Logger
		err error
	)
	if opts.Filename != "" {
		rotated := &lumberjack.Logger{
			Filename:   opts.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(rotated),
				zapConfig.Level,
			),
			zapcore.NewCore(
				consoleEncoder(opts.Mode),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		log = zap.New(core, zap.AddCaller())
	} else {
		log, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			return nil, err
		}
	}

	zap.ReplaceGlobals(log)
	return log, nil
}

func consoleEncoder(mode string) zapcore.Encoder {
	if mode == "production" {
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	return zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
}
