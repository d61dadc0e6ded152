package form

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchButton is returned by Press for an index outside the button row.
	ErrNoSuchButton = errors.New("no such button")
	// ErrReleased is returned when a button is pressed on an unmounted form.
	ErrReleased = errors.New("form is unmounted")
)

// DuplicateFieldNameError reports two field specs sharing a name.
type DuplicateFieldNameError struct {
	Name   string
	First  int
	Second int
}

func (e *DuplicateFieldNameError) Error() string {
	return fmt.Sprintf("duplicate field name %q (inputs %d and %d)", e.Name, e.First, e.Second)
}
