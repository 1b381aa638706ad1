package portal

import (
	"errors"
	"testing"
)

func TestParsePageRoundTrip(t *testing.T) {
	for _, p := range Pages() {
		got, err := ParsePage(p.String())
		if err != nil {
			t.Fatalf("ParsePage(%q) returned error: %v", p.String(), err)
		}
		if got != p {
			t.Fatalf("ParsePage(%q) = %v, want %v", p.String(), got, p)
		}
	}
}

func TestParsePageNormalizes(t *testing.T) {
	got, err := ParsePage("  Documents ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != PageDocuments {
		t.Fatalf("expected documents, got %v", got)
	}
}

func TestParsePageRejectsUnknown(t *testing.T) {
	_, err := ParsePage("settings")
	if !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}

	var pageErr *InvalidPageError
	if !errors.As(err, &pageErr) || pageErr.Value != "settings" {
		t.Fatalf("expected InvalidPageError carrying the value, got %#v", err)
	}
}

func TestPageValid(t *testing.T) {
	if Page(-1).Valid() || Page(len(pageNames)).Valid() {
		t.Fatalf("out of range pages must be invalid")
	}
	if got := Page(42).String(); got != "page(42)" {
		t.Fatalf("unexpected string for invalid page: %q", got)
	}
}

func TestPageListing(t *testing.T) {
	listing := map[Page]bool{
		PageDocuments: true,
		PageTags:      true,
		PageShared:    true,
		PageRecent:    true,
	}
	for _, p := range Pages() {
		if p.Listing() != listing[p] {
			t.Fatalf("Listing() for %v = %v", p, p.Listing())
		}
	}
}

func TestPageTextMarshaling(t *testing.T) {
	var p Page
	if err := p.UnmarshalText([]byte("recent")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != PageRecent {
		t.Fatalf("expected recent, got %v", p)
	}
	text, err := PageSearch.MarshalText()
	if err != nil || string(text) != "search" {
		t.Fatalf("MarshalText = %q, %v", text, err)
	}
	if _, err := Page(99).MarshalText(); !errors.Is(err, ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage for out of range page, got %v", err)
	}
}
