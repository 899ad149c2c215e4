package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

// L is the process-wide logger. It starts at info level and is replaced by
// Init once the configuration is loaded.
var L *Logger

func init() {
	L, _ = New("info")
	if L == nil {
		L = &Logger{SugaredLogger: zap.NewNop().Sugar()}
	}
}

// New builds a production (JSON) logger at the given level.
func New(level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: z.Sugar()}, nil
}

// Init replaces the global logger.
func Init(level string) error {
	l, err := New(level)
	if err != nil {
		return err
	}
	L = l
	return nil
}
