package portal

import "fmt"

// Modal names one of the dialogs that can overlay any page.
type Modal int

const (
	ModalUpload Modal = iota
	ModalDelete
	ModalShare
)

func (m Modal) String() string {
	switch m {
	case ModalUpload:
		return "upload"
	case ModalDelete:
		return "delete"
	case ModalShare:
		return "share"
	}
	return fmt.Sprintf("modal(%d)", int(m))
}

// Dialog is a modal flag paired with the document it acts on.
type Dialog struct {
	Open   bool
	Target OptionalID
}

type Modals struct {
	Upload bool
	Delete Dialog
	Share  Dialog
}

// Any reports whether at least one dialog is visible.
func (m Modals) Any() bool {
	return m.Upload || m.Delete.Open || m.Share.Open
}

// State is everything the views read to decide what to draw. It is a value:
// transitions return a new State instead of mutating this one.
type State struct {
	Screen Screen
	Query  string
	Modals Modals

	// Focus is the most recently selected document. It survives leaving the
	// viewer so navigating back to it does not need the id again.
	Focus OptionalID
}

// Initial is the session start state.
func Initial() State {
	return State{Screen: Dashboard{}}
}

func (s State) Page() Page {
	if s.Screen == nil {
		return PageDashboard
	}
	return s.Screen.Page()
}

// Selected returns the document in focus on the current screen.
func (s State) Selected() OptionalID {
	if s.Screen == nil {
		return None()
	}
	return Selection(s.Screen)
}

// ModalOpen reports the visibility of a single dialog.
func (s State) ModalOpen(m Modal) bool {
	switch m {
	case ModalUpload:
		return s.Modals.Upload
	case ModalDelete:
		return s.Modals.Delete.Open
	case ModalShare:
		return s.Modals.Share.Open
	}
	return false
}
