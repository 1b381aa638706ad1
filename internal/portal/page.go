package portal

import (
	"fmt"
	"strings"
)

// Page identifies which screen of the portal is visible.
type Page int

const (
	PageDashboard Page = iota
	PageDocuments
	PageTags
	PageShared
	PageRecent
	PageViewer
	PageEditor
	PageProfile
	PageSearch
)

var pageNames = [...]string{
	PageDashboard: "dashboard",
	PageDocuments: "documents",
	PageTags:      "tags",
	PageShared:    "shared",
	PageRecent:    "recent",
	PageViewer:    "viewer",
	PageEditor:    "editor",
	PageProfile:   "profile",
	PageSearch:    "search",
}

// Pages returns every page in sidebar order.
func Pages() []Page {
	return []Page{
		PageDashboard,
		PageDocuments,
		PageTags,
		PageShared,
		PageRecent,
		PageViewer,
		PageEditor,
		PageProfile,
		PageSearch,
	}
}

func (p Page) Valid() bool {
	return p >= PageDashboard && p <= PageSearch
}

func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageNames[p]
}

// Listing reports whether the page renders a document collection.
func (p Page) Listing() bool {
	switch p {
	case PageDocuments, PageTags, PageShared, PageRecent:
		return true
	case PageDashboard, PageViewer, PageEditor, PageProfile, PageSearch:
		return false
	}
	return false
}

// ParsePage resolves a page name as written in config files and flags.
func ParsePage(name string) (Page, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range pageNames {
		if n == normalized {
			return Page(i), nil
		}
	}
	return 0, &InvalidPageError{Value: name}
}

// PageNames lists the accepted page names.
func PageNames() []string {
	return append([]string(nil), pageNames[:]...)
}

func (p Page) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, &InvalidPageError{Value: p.String()}
	}
	return []byte(p.String()), nil
}

func (p *Page) UnmarshalText(text []byte) error {
	parsed, err := ParsePage(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
