package view

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContainer is returned when a view is configured without a render target.
	ErrNoContainer = errors.New("view: no render target")
	// ErrMissingTemplate is returned when a view has neither a tag name nor a template.
	ErrMissingTemplate = errors.New("view: tag name or template required")
	// ErrOverlappingMount is returned when a node id is attached to a surface twice.
	ErrOverlappingMount = errors.New("view: node already attached to surface")
)

// AlreadyMountedError is returned when Mount is called on a view that has
// been mounted before.
type AlreadyMountedError struct {
	ID  string
	Tag string
}

func (e *AlreadyMountedError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("view %s <%s> already mounted", e.ID, e.Tag)
	}
	return fmt.Sprintf("view %s already mounted", e.ID)
}
