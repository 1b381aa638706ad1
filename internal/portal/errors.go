package portal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPage is matched by every InvalidPageError.
	ErrInvalidPage = errors.New("invalid page")

	// ErrMissingSelection is returned when a transition needs a selected
	// document and none is available.
	ErrMissingSelection = errors.New("no document selected")

	// ErrModalNotOpen is returned when a confirm arrives for a closed dialog.
	ErrModalNotOpen = errors.New("modal is not open")

	ErrUnknownIntent = errors.New("unknown intent")
)

type InvalidPageError struct {
	Value string
}

func (e *InvalidPageError) Error() string {
	return fmt.Sprintf("invalid page %q: expected one of %v", e.Value, PageNames())
}

func (e *InvalidPageError) Is(target error) bool {
	return target == ErrInvalidPage
}
