// Package logging builds the service logger: JSON lines to stdout and,
// when a log file is configured, to that file as well.
package logging

import (
	"os"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"order-notify-service/internal/config"
)

// New returns a logger teed to stdout and cfg.LogFile. The returned close
// function flushes the logger and releases the file.
func New(cfg *config.Config) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "parse log level %q", cfg.LogLevel)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	enc := zapcore.NewJSONEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level),
	}

	var file *os.File
	if cfg.LogFile != "" {
		file, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open log file %q", cfg.LogFile)
		}
		cores = append(cores, zapcore.NewCore(enc.Clone(), zapcore.AddSync(file), level))
	}

	lg := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	closeFn := func() {
		_ = lg.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return lg, closeFn, nil
}
