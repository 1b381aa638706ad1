package portal

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/sidoc/internal/notify"
)

const (
	MessageDeleted  = "Document deleted successfully"
	MessageUploaded = "Document uploaded successfully"
	MessageSaved    = "Document saved successfully"
)

// Reduce applies one intent to s and returns the next state along with any
// effects the caller should run. s is never modified. On error the returned
// state equals s and no effects are produced.
func Reduce(s State, in Intent) (State, []Effect, error) {
	if s.Screen == nil {
		s.Screen = Dashboard{}
	}

	switch in := in.(type) {
	case Navigate:
		screen, err := screenFor(s, in.Page)
		if err != nil {
			return s, nil, err
		}
		s.Screen = screen
		return s, nil, nil

	case Search:
		query := strings.TrimSpace(in.Query)
		if query == "" {
			return s, nil, nil
		}
		s.Query = query
		s.Screen = SearchResults{Query: query}
		return s, nil, nil

	case ViewDocument:
		s.Focus = Some(in.ID)
		s.Screen = Viewer{ID: in.ID}
		return s, nil, nil

	case EditDocument:
		s.Focus = in.ID
		s.Screen = Editor{ID: in.ID}
		return s, nil, nil

	case RequestDelete:
		s.Modals.Delete = Dialog{Open: true, Target: Some(in.ID)}
		return s, nil, nil

	case RequestShare:
		s.Modals.Share = Dialog{Open: true, Target: Some(in.ID)}
		return s, nil, nil

	case OpenUpload:
		s.Modals.Upload = true
		return s, nil, nil

	case CloseModal:
		switch in.Modal {
		case ModalUpload:
			s.Modals.Upload = false
		case ModalDelete:
			s.Modals.Delete = Dialog{}
		case ModalShare:
			s.Modals.Share = Dialog{}
		default:
			return s, nil, fmt.Errorf("%w: %s", ErrUnknownIntent, in)
		}
		return s, nil, nil

	case ConfirmDelete:
		if !s.Modals.Delete.Open {
			return s, nil, fmt.Errorf("confirm delete: %w", ErrModalNotOpen)
		}
		s.Modals.Delete = Dialog{}
		return s, success(MessageDeleted), nil

	case ConfirmUpload:
		s.Modals.Upload = false
		return s, success(MessageUploaded), nil

	case ConfirmSave:
		s.Screen = Documents{}
		return s, success(MessageSaved), nil

	case Back:
		s.Screen = parent(s.Screen)
		return s, nil, nil
	}

	return s, nil, fmt.Errorf("%w: %T", ErrUnknownIntent, in)
}

func success(message string) []Effect {
	return []Effect{Notify{Message: message, Severity: notify.Success}}
}

// screenFor builds the screen a bare page navigation lands on. Pages that
// need a document take it from the current focus.
func screenFor(s State, p Page) (Screen, error) {
	switch p {
	case PageDashboard:
		return Dashboard{}, nil
	case PageDocuments:
		return Documents{}, nil
	case PageTags:
		return Tags{}, nil
	case PageShared:
		return Shared{}, nil
	case PageRecent:
		return Recent{}, nil
	case PageProfile:
		return Profile{}, nil
	case PageSearch:
		return SearchResults{Query: s.Query}, nil
	case PageEditor:
		return Editor{ID: s.Focus}, nil
	case PageViewer:
		id, ok := s.Focus.Get()
		if !ok {
			return nil, fmt.Errorf("navigate %s: %w", p, ErrMissingSelection)
		}
		return Viewer{ID: id}, nil
	}
	return nil, &InvalidPageError{Value: p.String()}
}

func parent(s Screen) Screen {
	switch s.(type) {
	case Viewer, Editor:
		return Documents{}
	case Dashboard, Documents, Tags, Shared, Recent, Profile, SearchResults:
		return Dashboard{}
	}
	return Dashboard{}
}
