package modal

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownButtonSet is returned for a ButtonSet outside the preset table.
	ErrUnknownButtonSet = errors.New("unknown button set")
	// ErrNoSuchButton is returned by Press for an index outside the button row.
	ErrNoSuchButton = errors.New("no such button")
)

// InvalidStateError reports an operation the modal's current state does not
// allow, such as opening a modal that was already opened once.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("modal: cannot %s while %s", e.Op, e.State)
}
