package portal

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Paintersrp/sidoc/internal/notify"
)

var stateOpts = cmp.AllowUnexported(OptionalID{})

func mustReduce(t *testing.T, s State, in Intent) (State, []Effect) {
	t.Helper()
	next, effects, err := Reduce(s, in)
	if err != nil {
		t.Fatalf("Reduce(%v) returned error: %v", in, err)
	}
	return next, effects
}

func TestInitialState(t *testing.T) {
	s := Initial()
	want := State{Screen: Dashboard{}}
	if diff := cmp.Diff(want, s, stateOpts); diff != "" {
		t.Fatalf("initial state mismatch (-want +got):\n%s", diff)
	}
	if s.Modals.Any() {
		t.Fatalf("expected all modals closed")
	}
}

func TestNavigateSetsPage(t *testing.T) {
	// Seed a focus so the viewer is reachable by plain navigation.
	s, _ := mustReduce(t, Initial(), ViewDocument{ID: 1})

	sequence := []Page{
		PageDocuments, PageTags, PageViewer, PageShared, PageRecent,
		PageEditor, PageProfile, PageSearch, PageDashboard, PageViewer,
	}
	for _, p := range sequence {
		s, _ = mustReduce(t, s, Navigate{Page: p})
		if s.Page() != p {
			t.Fatalf("after navigate %v page is %v", p, s.Page())
		}
	}
}

func TestNavigateRejectsInvalidPage(t *testing.T) {
	s := Initial()
	next, effects, err := Reduce(s, Navigate{Page: Page(99)})
	if !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}
	if effects != nil {
		t.Fatalf("expected no effects, got %v", effects)
	}
	if diff := cmp.Diff(s, next, stateOpts); diff != "" {
		t.Fatalf("state changed on rejected intent:\n%s", diff)
	}
}

func TestNavigateToViewerRequiresSelection(t *testing.T) {
	_, _, err := Reduce(Initial(), Navigate{Page: PageViewer})
	if !errors.Is(err, ErrMissingSelection) {
		t.Fatalf("expected ErrMissingSelection, got %v", err)
	}
}

func TestNavigateToEditorWithoutSelectionIsNewDocument(t *testing.T) {
	s, _ := mustReduce(t, Initial(), Navigate{Page: PageEditor})
	editor, ok := s.Screen.(Editor)
	if !ok {
		t.Fatalf("expected editor screen, got %T", s.Screen)
	}
	if editor.ID.IsSet() {
		t.Fatalf("expected new-document editor, got id %v", editor.ID)
	}
}

func TestSearchIgnoresBlankQueries(t *testing.T) {
	start, _ := mustReduce(t, Initial(), Navigate{Page: PageDocuments})

	for _, query := range []string{"", "   ", "\t\n"} {
		next, effects := mustReduce(t, start, Search{Query: query})
		if diff := cmp.Diff(start, next, stateOpts); diff != "" {
			t.Fatalf("search %q changed state:\n%s", query, diff)
		}
		if len(effects) != 0 {
			t.Fatalf("search %q produced effects", query)
		}
	}
}

func TestSearchStoresQuery(t *testing.T) {
	s, _ := mustReduce(t, Initial(), Search{Query: "budget"})
	if s.Page() != PageSearch {
		t.Fatalf("expected search page, got %v", s.Page())
	}
	if s.Query != "budget" {
		t.Fatalf("expected query budget, got %q", s.Query)
	}
	if diff := cmp.Diff(SearchResults{Query: "budget"}, s.Screen); diff != "" {
		t.Fatalf("screen mismatch:\n%s", diff)
	}
}

func TestSearchTrimsQuery(t *testing.T) {
	s, _ := mustReduce(t, Initial(), Search{Query: "  roadmap "})
	if s.Query != "roadmap" {
		t.Fatalf("expected trimmed query, got %q", s.Query)
	}
}

func TestViewDocument(t *testing.T) {
	s, _ := mustReduce(t, Initial(), ViewDocument{ID: 7})
	if s.Page() != PageViewer {
		t.Fatalf("expected viewer, got %v", s.Page())
	}
	id, ok := s.Selected().Get()
	if !ok || id != 7 {
		t.Fatalf("expected selection 7, got %v", s.Selected())
	}
}

func TestRequestAndConfirmDelete(t *testing.T) {
	start, _ := mustReduce(t, Initial(), Navigate{Page: PageDocuments})

	s, _ := mustReduce(t, start, RequestDelete{ID: 3})
	want := Dialog{Open: true, Target: Some(3)}
	if diff := cmp.Diff(want, s.Modals.Delete, stateOpts); diff != "" {
		t.Fatalf("delete dialog mismatch:\n%s", diff)
	}

	s, effects := mustReduce(t, s, ConfirmDelete{})
	if s.Modals.Delete.Open || s.Modals.Delete.Target.IsSet() {
		t.Fatalf("expected delete dialog closed and cleared, got %+v", s.Modals.Delete)
	}
	if s.Page() != PageDocuments {
		t.Fatalf("confirm delete changed page to %v", s.Page())
	}
	wantEffects := []Effect{Notify{Message: MessageDeleted, Severity: notify.Success}}
	if diff := cmp.Diff(wantEffects, effects); diff != "" {
		t.Fatalf("effects mismatch:\n%s", diff)
	}

	again, effects, err := Reduce(s, ConfirmDelete{})
	if !errors.Is(err, ErrModalNotOpen) {
		t.Fatalf("expected ErrModalNotOpen on second confirm, got %v", err)
	}
	if len(effects) != 0 {
		t.Fatalf("second confirm produced effects: %v", effects)
	}
	if diff := cmp.Diff(s, again, stateOpts); diff != "" {
		t.Fatalf("second confirm changed state:\n%s", diff)
	}
}

func TestEditWithoutIDThenSave(t *testing.T) {
	s, _ := mustReduce(t, Initial(), ViewDocument{ID: 2})
	s, _ = mustReduce(t, s, EditDocument{ID: None()})
	if s.Page() != PageEditor {
		t.Fatalf("expected editor, got %v", s.Page())
	}
	if s.Selected().IsSet() {
		t.Fatalf("expected no selection in new-document mode")
	}

	s, effects := mustReduce(t, s, ConfirmSave{})
	if s.Page() != PageDocuments {
		t.Fatalf("expected documents after save, got %v", s.Page())
	}
	if len(effects) != 1 {
		t.Fatalf("expected one notification, got %v", effects)
	}
}

func TestSaveAlwaysLandsOnDocuments(t *testing.T) {
	starts := []Intent{
		Navigate{Page: PageDashboard},
		EditDocument{ID: Some(4)},
		Search{Query: "api"},
		ViewDocument{ID: 5},
	}
	for _, in := range starts {
		s, _ := mustReduce(t, Initial(), in)
		s, _ = mustReduce(t, s, ConfirmSave{})
		if s.Page() != PageDocuments {
			t.Fatalf("after %v and save, page is %v", in, s.Page())
		}
	}
}

func TestModalsAreIndependent(t *testing.T) {
	s, _ := mustReduce(t, Initial(), OpenUpload{})
	s, _ = mustReduce(t, s, RequestDelete{ID: 1})
	if !s.Modals.Upload {
		t.Fatalf("opening delete closed upload")
	}
	s, _ = mustReduce(t, s, RequestShare{ID: 2})
	if !s.Modals.Upload || !s.Modals.Delete.Open {
		t.Fatalf("opening share disturbed other dialogs: %+v", s.Modals)
	}

	s, _ = mustReduce(t, s, CloseModal{Modal: ModalDelete})
	if !s.Modals.Upload || !s.Modals.Share.Open {
		t.Fatalf("closing delete disturbed other dialogs: %+v", s.Modals)
	}
	if id, _ := s.Modals.Share.Target.Get(); id != 2 {
		t.Fatalf("share target changed to %v", s.Modals.Share.Target)
	}
}

func TestCloseModalResetsTarget(t *testing.T) {
	s, _ := mustReduce(t, Initial(), RequestShare{ID: 6})
	s, _ = mustReduce(t, s, CloseModal{Modal: ModalShare})
	if diff := cmp.Diff(Dialog{}, s.Modals.Share, stateOpts); diff != "" {
		t.Fatalf("share dialog not reset:\n%s", diff)
	}
	if s.ModalOpen(ModalShare) {
		t.Fatalf("expected share dialog closed")
	}
}

func TestConfirmUploadClosesDialogAndNotifies(t *testing.T) {
	s, _ := mustReduce(t, Initial(), OpenUpload{})
	s, effects := mustReduce(t, s, ConfirmUpload{})
	if s.Modals.Upload {
		t.Fatalf("expected upload dialog closed")
	}
	wantEffects := []Effect{Notify{Message: MessageUploaded, Severity: notify.Success}}
	if diff := cmp.Diff(wantEffects, effects); diff != "" {
		t.Fatalf("effects mismatch:\n%s", diff)
	}
	if s.Page() != PageDashboard {
		t.Fatalf("upload changed page to %v", s.Page())
	}
}

func TestBack(t *testing.T) {
	cases := []struct {
		name  string
		setup Intent
		want  Page
	}{
		{"viewer", ViewDocument{ID: 1}, PageDocuments},
		{"editor", EditDocument{ID: None()}, PageDocuments},
		{"profile", Navigate{Page: PageProfile}, PageDashboard},
		{"search", Search{Query: "q4"}, PageDashboard},
		{"dashboard", Navigate{Page: PageDashboard}, PageDashboard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := mustReduce(t, Initial(), tc.setup)
			s, _ = mustReduce(t, s, Back{})
			if s.Page() != tc.want {
				t.Fatalf("back from %s landed on %v, want %v", tc.name, s.Page(), tc.want)
			}
		})
	}
}

func TestFocusSurvivesLeavingViewer(t *testing.T) {
	s, _ := mustReduce(t, Initial(), ViewDocument{ID: 4})
	s, _ = mustReduce(t, s, Back{})
	if s.Selected().IsSet() {
		t.Fatalf("documents screen should not expose a selection")
	}
	s, _ = mustReduce(t, s, Navigate{Page: PageViewer})
	if diff := cmp.Diff(Viewer{ID: 4}, s.Screen); diff != "" {
		t.Fatalf("viewer mismatch:\n%s", diff)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := Initial()
	snapshot := s
	_, _, _ = Reduce(s, RequestDelete{ID: 9})
	_, _, _ = Reduce(s, Search{Query: "notes"})
	if diff := cmp.Diff(snapshot, s, stateOpts); diff != "" {
		t.Fatalf("input state mutated:\n%s", diff)
	}
}

type unknownIntent struct{}

func (unknownIntent) intent() {}

func TestReduceRejectsUnknownIntent(t *testing.T) {
	_, _, err := Reduce(Initial(), unknownIntent{})
	if !errors.Is(err, ErrUnknownIntent) {
		t.Fatalf("expected ErrUnknownIntent, got %v", err)
	}
}
