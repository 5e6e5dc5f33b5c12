package logic

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is; each typed error below unwraps to one of them.
var (
	ErrParse             = errors.New("parse error")
	ErrWrongPage         = errors.New("wrong page")
	ErrInvalidIndex      = errors.New("invalid index")
	ErrDuplicateEntity   = errors.New("duplicate entity")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrStaleSelection    = errors.New("stale selection")
)

// EntityKind names the kind of entity an error or list refers to.
type EntityKind string

const (
	EntityCourse  EntityKind = "course"
	EntityGroup   EntityKind = "group"
	EntityStudent EntityKind = "student"
	EntitySession EntityKind = "session"
)

const messageInvalidFormat = "Invalid command format!"

// ParseError is malformed command text. Usage, when set, is shown verbatim.
type ParseError struct {
	Message string
	Usage   string
}

func (e *ParseError) Error() string {
	if e.Usage == "" {
		return e.Message
	}
	return e.Message + "\n" + e.Usage
}

func (e *ParseError) Unwrap() error { return ErrParse }

func invalidFormat(usage string) *ParseError {
	return &ParseError{Message: messageInvalidFormat, Usage: usage}
}

// WrongPageError is an action attempted from a page that does not support it.
type WrongPageError struct {
	Required Page
	Action   string
}

func (e *WrongPageError) Error() string {
	return fmt.Sprintf("Wrong page. Navigate to %s page to %s", e.Required, e.Action)
}

func (e *WrongPageError) Unwrap() error { return ErrWrongPage }

// InvalidIndexError is an index outside the currently displayed list.
type InvalidIndexError struct {
	Entity EntityKind
	Index  int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("The %s index provided is invalid", e.Entity)
}

func (e *InvalidIndexError) Unwrap() error { return ErrInvalidIndex }

// DuplicateEntityError is an add that would break a uniqueness rule.
type DuplicateEntityError struct {
	Entity  EntityKind
	Message string
}

func (e *DuplicateEntityError) Error() string { return e.Message }

func (e *DuplicateEntityError) Unwrap() error { return ErrDuplicateEntity }

// InvalidTransitionError is a navigation step the current page does not allow.
type InvalidTransitionError struct {
	From    Page
	Message string
}

func (e *InvalidTransitionError) Error() string { return e.Message }

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

func illegalFrom(p Page, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: p, Message: fmt.Sprintf("Cannot %s from the %s page", action, p)}
}
