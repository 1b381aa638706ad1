package portal

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/config"
	core "github.com/Paintersrp/sidoc/internal/portal"
	"github.com/Paintersrp/sidoc/internal/state"
)

type launch struct {
	called bool
	page   core.Page
	doc    core.OptionalID
}

func (l *launch) run(_ *state.State, page core.Page, doc core.OptionalID) error {
	l.called = true
	l.page = page
	l.doc = doc
	return nil
}

func newTestCmd(t *testing.T, set map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	AddFlags(cmd)
	for name, value := range set {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("failed to set %s flag: %v", name, err)
		}
	}
	return cmd
}

func testState() *state.State {
	cfg := config.Default()
	cfg.StartPage = "shared"
	return &state.State{Config: cfg, Catalog: catalog.Default()}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		flags   map[string]string
		page    core.Page
		doc     core.OptionalID
		wantErr error
	}{
		{name: "config start page", page: core.PageShared, doc: core.None()},
		{name: "page flag", flags: map[string]string{"page": "recent"}, page: core.PageRecent, doc: core.None()},
		{name: "document", flags: map[string]string{"doc": "2"}, page: core.PageShared, doc: core.Some(2)},
		{name: "edit document", flags: map[string]string{"doc": "2", "page": "editor"}, page: core.PageEditor, doc: core.Some(2)},
		{name: "viewer without document", flags: map[string]string{"page": "viewer"}, wantErr: core.ErrMissingSelection},
		{name: "unknown page", flags: map[string]string{"page": "inbox"}, wantErr: core.ErrInvalidPage},
		{name: "unknown document", flags: map[string]string{"doc": "42"}, wantErr: catalog.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &launch{}
			err := Run(newTestCmd(t, tt.flags), testState(), l.run)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if l.called {
					t.Fatalf("portal must not launch on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Run returned error: %v", err)
			}
			if l.page != tt.page || l.doc != tt.doc {
				t.Fatalf("launched with %s/%s, want %s/%s", l.page, l.doc, tt.page, tt.doc)
			}
		})
	}
}

func TestRunReadsPageFromViper(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("page", "documents")

	l := &launch{}
	if err := Run(newTestCmd(t, nil), testState(), l.run); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if l.page != core.PageDocuments {
		t.Fatalf("expected viper page documents, got %s", l.page)
	}
}
