package portal

import "strconv"

// DocumentID identifies a catalog document.
type DocumentID int

func (id DocumentID) String() string {
	return strconv.Itoa(int(id))
}

// OptionalID is a document id that may be absent.
type OptionalID struct {
	id  DocumentID
	set bool
}

func Some(id DocumentID) OptionalID { return OptionalID{id: id, set: true} }

func None() OptionalID { return OptionalID{} }

func (o OptionalID) Get() (DocumentID, bool) { return o.id, o.set }

func (o OptionalID) IsSet() bool { return o.set }

func (o OptionalID) String() string {
	if !o.set {
		return "none"
	}
	return o.id.String()
}

// Screen is the visible page together with the data the page needs to
// render. Every implementation lives in this package.
type Screen interface {
	Page() Page
	screen()
}

type (
	Dashboard struct{}
	Documents struct{}
	Tags      struct{}
	Shared    struct{}
	Recent    struct{}
	Profile   struct{}

	// Viewer always carries the document it shows.
	Viewer struct {
		ID DocumentID
	}

	// Editor without an ID composes a new document.
	Editor struct {
		ID OptionalID
	}

	SearchResults struct {
		Query string
	}
)

func (Dashboard) Page() Page     { return PageDashboard }
func (Documents) Page() Page     { return PageDocuments }
func (Tags) Page() Page          { return PageTags }
func (Shared) Page() Page        { return PageShared }
func (Recent) Page() Page        { return PageRecent }
func (Profile) Page() Page       { return PageProfile }
func (Viewer) Page() Page        { return PageViewer }
func (Editor) Page() Page        { return PageEditor }
func (SearchResults) Page() Page { return PageSearch }

func (Dashboard) screen()     {}
func (Documents) screen()     {}
func (Tags) screen()          {}
func (Shared) screen()        {}
func (Recent) screen()        {}
func (Profile) screen()       {}
func (Viewer) screen()        {}
func (Editor) screen()        {}
func (SearchResults) screen() {}

// Selection returns the document in focus on the screen, if any.
func Selection(s Screen) OptionalID {
	switch s := s.(type) {
	case Viewer:
		return Some(s.ID)
	case Editor:
		return s.ID
	}
	return None()
}
