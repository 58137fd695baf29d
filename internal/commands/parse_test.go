package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		id   string
		text string
		name string
		rest string
		ok   bool
	}{
		{id: "bare", text: "/help", name: "help", ok: true},
		{id: "with args", text: "  /quizme  World History ", name: "quizme", rest: "World History", ok: true},
		{id: "bot mention", text: "/listReminders@StudyBot", name: "listReminders", ok: true},
		{id: "mention and args", text: "/deleteReminder@StudyBot gym", name: "deleteReminder", rest: "gym", ok: true},
		{id: "newline separates args", text: "/createFlashcard\nmath q a", name: "createFlashcard", rest: "math q a", ok: true},
		{id: "plain text", text: "hello", ok: false},
		{id: "prefix only", text: "/", ok: false},
		{id: "mention only", text: "/@StudyBot", ok: false},
		{id: "empty", text: "", ok: false},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			name, rest, ok := Parse(testcase.text, "/")
			require.Equal(t, testcase.ok, ok)
			require.Equal(t, testcase.name, name)
			require.Equal(t, testcase.rest, rest)
		})
	}
}

func TestParseCustomPrefix(t *testing.T) {
	name, rest, ok := Parse("!createReminder gym 01/01/2030 10:00", "!")
	require.True(t, ok)
	require.Equal(t, "createReminder", name)
	require.Equal(t, "gym 01/01/2030 10:00", rest)

	_, _, ok = Parse("/help", "!")
	require.False(t, ok)
}

func TestSplit(t *testing.T) {
	cases := []struct {
		id       string
		args     string
		expected []string
	}{
		{id: "empty", args: "", expected: []string{}},
		{id: "words", args: "math  2+2 4", expected: []string{"math", "2+2", "4"}},
		{id: "quoted", args: `Math "What is 2+2?" "four"`, expected: []string{"Math", "What is 2+2?", "four"}},
		{id: "typographic", args: "Math “What is 2+2?” 4", expected: []string{"Math", "What is 2+2?", "4"}},
		{id: "typographic closed by straight", args: "“a b\" c", expected: []string{"a b", "c"}},
		{id: "empty quotes", args: `a "" b`, expected: []string{"a", "", "b"}},
		{id: "glued quote", args: `x"y z"w`, expected: []string{"xy zw"}},
		{id: "unterminated", args: `a "b c`, expected: []string{"a", "b c"}},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			require.Equal(t, testcase.expected, Split(testcase.args))
		})
	}
}
