package logx

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(template string, args ...interface{})
	Info(args ...interface{})
	Infof(template string, args ...interface{})
	Warn(args ...interface{})
	Warnf(template string, args ...interface{})
	Error(args ...interface{})
	Errorf(template string, args ...interface{})
	Named(name string) Logger
	Sync() error
}

type Options struct {
	Level   zapcore.Level
	Dev     bool // development encoder config
	Console bool // console encoding to stdout instead of JSON to the writer
}

type Logx struct {
	sugar *zap.SugaredLogger
}

var levels = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

// LevelFromString falls back to info for unknown names.
func LevelFromString(lvl string) zapcore.Level {
	level, ok := levels[lvl]
	if !ok {
		return zapcore.InfoLevel
	}
	return level
}

func New(w io.Writer, opts Options) *Logx {
	var sink zapcore.WriteSyncer
	if opts.Console || w == nil {
		sink = zapcore.AddSync(os.Stdout)
	} else {
		sink = zapcore.AddSync(w)
	}

	var cfg zapcore.EncoderConfig
	if opts.Dev {
		cfg = zap.NewDevelopmentEncoderConfig()
	} else {
		cfg = zap.NewProductionEncoderConfig()
	}
	cfg.LevelKey = "LEVEL"
	cfg.CallerKey = "CALLER"
	cfg.TimeKey = "TIME"
	cfg.NameKey = "NAME"
	cfg.MessageKey = "MESSAGE"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if opts.Console {
		enc = zapcore.NewConsoleEncoder(cfg)
	} else {
		enc = zapcore.NewJSONEncoder(cfg)
	}

	core := zapcore.NewCore(enc, sink, zap.NewAtomicLevelAt(opts.Level))
	return &Logx{sugar: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()}
}

// NewNop discards everything.
func NewNop() *Logx {
	return &Logx{sugar: zap.NewNop().Sugar()}
}

func (l *Logx) Debug(args ...interface{}) {
	l.sugar.Debug(args...)
}

func (l *Logx) Debugf(template string, args ...interface{}) {
	l.sugar.Debugf(template, args...)
}

func (l *Logx) Info(args ...interface{}) {
	l.sugar.Info(args...)
}

func (l *Logx) Infof(template string, args ...interface{}) {
	l.sugar.Infof(template, args...)
}

func (l *Logx) Warn(args ...interface{}) {
	l.sugar.Warn(args...)
}

func (l *Logx) Warnf(template string, args ...interface{}) {
	l.sugar.Warnf(template, args...)
}

func (l *Logx) Error(args ...interface{}) {
	l.sugar.Error(args...)
}

func (l *Logx) Errorf(template string, args ...interface{}) {
	l.sugar.Errorf(template, args...)
}

func (l *Logx) Named(name string) Logger {
	return &Logx{sugar: l.sugar.Named(name)}
}

func (l *Logx) Sync() error {
	return l.sugar.Sync()
}
