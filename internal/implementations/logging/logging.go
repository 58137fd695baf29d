package logging

import (
	"context"
	"studybot/internal/core/domain/logging"

	"go.uber.org/zap"
)

type ZapLogger struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

// NewZapLogger builds a production logger, or a development one with debug
// output in test mode.
func NewZapLogger(isTestMode bool) *ZapLogger {
	build := zap.NewProduction
	if isTestMode {
		build = zap.NewDevelopment
	}
	logger, err := build(zap.AddCallerSkip(1))
	if err != nil {
		panic("Could not create Zap logger.")
	}
	return FromZap(logger)
}

func FromZap(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger, sugar: logger.Sugar()}
}

func (l *ZapLogger) Sync() {
	l.logger.Sync()
}

func (l *ZapLogger) Debug(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Debugw(msg, prepareArgs(ctx, entries)...)
}

func (l *ZapLogger) Info(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Infow(msg, prepareArgs(ctx, entries)...)
}

func (l *ZapLogger) Warning(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Warnw(msg, prepareArgs(ctx, entries)...)
}

func (l *ZapLogger) Error(ctx context.Context, msg string, entries ...logging.LogEntry) {
	l.sugar.Errorw(msg, prepareArgs(ctx, entries)...)
}

// prepareArgs puts entries carried by ctx ahead of the call site ones.
func prepareArgs(ctx context.Context, entries []logging.LogEntry) []interface{} {
	inherited := logging.EntriesFrom(ctx)
	args := make([]interface{}, 0, (len(inherited)+len(entries))*2)
	for _, e := range inherited {
		args = append(args, e.Key, e.Value)
	}
	for _, e := range entries {
		args = append(args, e.Key, e.Value)
	}
	return args
}
