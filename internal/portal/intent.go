package portal

import (
	"fmt"

	"github.com/Paintersrp/sidoc/internal/notify"
)

// Intent is a discrete user action handed to Reduce.
type Intent interface {
	intent()
}

type (
	// Navigate moves to Page. The viewer cannot be shown without a document,
	// so navigating to it reuses the focused document and fails with
	// ErrMissingSelection when there is none, leaving the page unchanged.
	// Every other page is always reached.
	Navigate struct {
		Page Page
	}

	Search struct {
		Query string
	}

	ViewDocument struct {
		ID DocumentID
	}

	EditDocument struct {
		ID OptionalID
	}

	RequestDelete struct {
		ID DocumentID
	}

	RequestShare struct {
		ID DocumentID
	}

	OpenUpload struct{}

	CloseModal struct {
		Modal Modal
	}

	ConfirmDelete struct{}
	ConfirmUpload struct{}
	ConfirmSave   struct{}

	// Back leaves the current screen for its parent.
	Back struct{}
)

func (Navigate) intent()      {}
func (Search) intent()        {}
func (ViewDocument) intent()  {}
func (EditDocument) intent()  {}
func (RequestDelete) intent() {}
func (RequestShare) intent()  {}
func (OpenUpload) intent()    {}
func (CloseModal) intent()    {}
func (ConfirmDelete) intent() {}
func (ConfirmUpload) intent() {}
func (ConfirmSave) intent()   {}
func (Back) intent()          {}

func (i Navigate) String() string      { return "navigate " + i.Page.String() }
func (i Search) String() string        { return fmt.Sprintf("search %q", i.Query) }
func (i ViewDocument) String() string  { return "view " + i.ID.String() }
func (i EditDocument) String() string  { return "edit " + i.ID.String() }
func (i RequestDelete) String() string { return "request delete " + i.ID.String() }
func (i RequestShare) String() string  { return "request share " + i.ID.String() }
func (OpenUpload) String() string      { return "open upload" }
func (i CloseModal) String() string    { return "close " + i.Modal.String() }
func (ConfirmDelete) String() string   { return "confirm delete" }
func (ConfirmUpload) String() string   { return "confirm upload" }
func (ConfirmSave) String() string     { return "confirm save" }
func (Back) String() string            { return "back" }

// Effect is work a transition asks the caller to perform.
type Effect interface {
	effect()
}

// Notify asks for a transient, auto-dismissing message.
type Notify struct {
	Message  string
	Severity notify.Severity
}

func (Notify) effect() {}
