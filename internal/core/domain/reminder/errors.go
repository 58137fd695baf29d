package reminder

import "errors"

var (
	ErrReminderPastDue       = errors.New("reminder time is not in the future")
	ErrReminderDuplicateName = errors.New("reminder with this name already exists")
	ErrReminderDoesNotExist  = errors.New("reminder does not exist")
)
