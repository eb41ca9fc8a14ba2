package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle means the window no longer exists. Retrying cannot help.
	ErrInvalidHandle = errors.New("window no longer exists")
	// ErrNoMatch means no visible window title contains every filter.
	ErrNoMatch = errors.New("no window matches filters")
	// ErrPositionOutOfRange means the requested ordinal exceeds the match count.
	ErrPositionOutOfRange = errors.New("position out of range")
	// ErrNoForeground means no window currently has focus.
	ErrNoForeground = errors.New("no foreground window")
)

// PositionError reports a 1-based position beyond the number of matches.
type PositionError struct {
	Position int
	Count    int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("position %d out of range: %d matching window(s)", e.Position, e.Count)
}

func (e *PositionError) Unwrap() error {
	return ErrPositionOutOfRange
}
