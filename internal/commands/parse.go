package commands

import (
	"strings"
	"unicode"
)

// Parse splits "<prefix><name>[@bot] rest" into the command name and the
// raw remainder. ok is false when text is not a command.
func Parse(text string, prefix string) (name string, rest string, ok bool) {
	text = strings.TrimSpace(text)
	if prefix == "" || !strings.HasPrefix(text, prefix) {
		return "", "", false
	}
	text = text[len(prefix):]

	end := strings.IndexFunc(text, unicode.IsSpace)
	if end < 0 {
		end = len(text)
	}
	name, rest = text[:end], strings.TrimSpace(text[end:])
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return "", "", false
	}
	return name, rest, true
}

var closingQuote = map[rune]rune{
	'"': '"',
	'“': '”',
	'„': '“',
	'«': '»',
}

// Split breaks args into words. A quoted run of text, including an empty
// one, is a single word; an unterminated quote runs to the end of args.
func Split(args string) []string {
	words := make([]string, 0)
	var word strings.Builder
	inWord := false
	var closing rune

	for _, r := range args {
		switch {
		case closing != 0 && (r == closing || r == '"'):
			closing = 0
		case closing != 0:
			word.WriteRune(r)
		case closingQuote[r] != 0:
			closing = closingQuote[r]
			inWord = true
		case unicode.IsSpace(r):
			if inWord {
				words = append(words, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		words = append(words, word.String())
	}
	return words
}
