package bot

import (
	"strings"
	"unicode/utf8"
)

// Batch joins entries greedily into messages of at most limit characters.
// The current batch is flushed when the next entry would not fit; an entry
// that alone exceeds the limit is split.
func Batch(entries []string, limit int) []string {
	if limit <= 0 {
		panic("batch limit must be positive")
	}
	batches := make([]string, 0, 1)
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if currentLen > 0 {
			batches = append(batches, current.String())
			current.Reset()
			currentLen = 0
		}
	}

	for _, entry := range entries {
		entryLen := utf8.RuneCountInString(entry)
		if currentLen+entryLen > limit {
			flush()
		}
		for entryLen > limit {
			head, tail := splitRunes(entry, limit)
			batches = append(batches, head)
			entry = tail
			entryLen -= limit
		}
		current.WriteString(entry)
		currentLen += entryLen
	}
	flush()
	return batches
}

func splitRunes(s string, n int) (string, string) {
	count := 0
	for ix := range s {
		if count == n {
			return s[:ix], s[ix:]
		}
		count++
	}
	return s, ""
}
