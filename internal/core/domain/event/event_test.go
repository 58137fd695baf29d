package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	events := []Event{
		{ID: "101", Name: "Study group"},
		{ID: "102", Name: "101"},
		{ID: "103", Name: "Exam"},
	}
	cases := []struct {
		identifier string
		expected   ID
		found      bool
	}{
		{"101", "101", true},
		{"103", "103", true},
		{"exam", "103", true},
		{"STUDY GROUP", "101", true},
		{" Exam ", "103", true},
		{"104", "", false},
		{"party", "", false},
	}
	for _, testcase := range cases {
		t.Run(testcase.identifier, func(t *testing.T) {
			ev, ok := Find(events, testcase.identifier)
			require.Equal(t, testcase.found, ok)
			require.Equal(t, testcase.expected, ev.ID)
		})
	}
}
