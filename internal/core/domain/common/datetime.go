package common

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-module/carbon/v2"
)

const (
	DateTimeInputLayout  = "1/2/2006 15:04"
	DateTimeOutputLayout = "01/02/2006 15:04"
)

var ErrInvalidDateTime = errors.New("invalid date/time, expected MM/DD/YYYY HH:MM")

// ParseDateTime reads a "MM/DD/YYYY" date and a "HH:MM" clock time as a wall
// time in loc.
func ParseDateTime(date string, clock string, loc *time.Location) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return time.Time{}, ErrInvalidDateTime
	}
	parsed := carbon.ParseByLayout(date+" "+clock, DateTimeInputLayout, loc.String())
	if parsed.Error != nil || parsed.IsZero() {
		return time.Time{}, ErrInvalidDateTime
	}
	return parsed.Carbon2Time().In(loc), nil
}

func FormatDateTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateTimeOutputLayout)
}
