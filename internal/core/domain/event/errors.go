package event

import "errors"

var (
	ErrEventPastDue         = errors.New("event time is not in the future")
	ErrEventDoesNotExist    = errors.New("event does not exist")
	ErrEventServiceDisabled = errors.New("event service is not configured")
)
