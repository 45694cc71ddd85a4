package services

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrQuizExpired        = errors.New("quiz is no longer available")
	ErrAlreadyCompleted   = errors.New("quiz has already been completed")
	ErrAttemptNotFound    = errors.New("quiz attempt not found")
	ErrTimeLimitExceeded  = errors.New("time limit for this quiz has been exceeded")
	ErrNoAnswers          = errors.New("no answers provided")
	ErrNoCompletedAttempt = errors.New("no completed attempt for this quiz")
)

// NotYetAvailableError is returned when a quiz is started before its
// activation window opens; it carries the opening time for the client.
type NotYetAvailableError struct {
	AvailableAt time.Time
	Wait        time.Duration
}

func (e *NotYetAvailableError) Error() string {
	return fmt.Sprintf("quiz is not available until %s", e.AvailableAt.Format(time.RFC3339))
}
