package logging

import (
	"context"
	"sync"
)

const DEBUG = "debug"
const INFO = "info"
const WARNING = "warning"
const ERROR = "error"

type FakeLoggerRecord struct {
	Level   string
	Msg     string
	Entries []LogEntry
}

type FakeLogger struct {
	logged []FakeLoggerRecord
	lock   sync.RWMutex
}

func NewFakeLogger() *FakeLogger {
	return &FakeLogger{}
}

func (l *FakeLogger) Debug(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(ctx, DEBUG, msg, entries...)
}

func (l *FakeLogger) Info(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(ctx, INFO, msg, entries...)
}

func (l *FakeLogger) Warning(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(ctx, WARNING, msg, entries...)
}

func (l *FakeLogger) Error(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(ctx, ERROR, msg, entries...)
}

func (l *FakeLogger) Logged() []FakeLoggerRecord {
	l.lock.RLock()
	defer l.lock.RUnlock()
	return append([]FakeLoggerRecord(nil), l.logged...)
}

func (l *FakeLogger) CountLevel(level string) int {
	count := 0
	for _, record := range l.Logged() {
		if record.Level == level {
			count++
		}
	}
	return count
}

func (l *FakeLogger) log(ctx context.Context, level string, msg string, entries ...LogEntry) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.logged = append(l.logged, FakeLoggerRecord{
		Level:   level,
		Msg:     msg,
		Entries: append(append([]LogEntry(nil), EntriesFrom(ctx)...), entries...),
	})
}
