package logging

import "context"

type LogEntry struct {
	Key   string
	Value interface{}
}

func Entry(k string, v interface{}) LogEntry {
	return LogEntry{Key: k, Value: v}
}

type Logger interface {
	Debug(ctx context.Context, msg string, entries ...LogEntry)
	Info(ctx context.Context, msg string, entries ...LogEntry)
	Warning(ctx context.Context, msg string, entries ...LogEntry)
	Error(ctx context.Context, msg string, entries ...LogEntry)
}

// Error logs an unexpected error together with the given entries.
func Error(ctx context.Context, log Logger, err error, entries ...LogEntry) {
	entries = append(entries, Entry("err", err))
	log.Error(ctx, "Unexpected error.", entries...)
}

type contextKey struct{}

// WithEntries returns a context whose log records carry entries in
// addition to the ones passed at the call site.
func WithEntries(ctx context.Context, entries ...LogEntry) context.Context {
	if len(entries) == 0 {
		return ctx
	}
	inherited := EntriesFrom(ctx)
	merged := make([]LogEntry, 0, len(inherited)+len(entries))
	merged = append(merged, inherited...)
	merged = append(merged, entries...)
	return context.WithValue(ctx, contextKey{}, merged)
}

func EntriesFrom(ctx context.Context) []LogEntry {
	if ctx == nil {
		return nil
	}
	entries, _ := ctx.Value(contextKey{}).([]LogEntry)
	return entries
}
