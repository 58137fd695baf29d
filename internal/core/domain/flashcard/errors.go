package flashcard

import "errors"

var ErrFlashcardDoesNotExist = errors.New("flashcard does not exist")
