package share

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
)

const DefaultBaseURL = "https://sidoc.app"

var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Permission is the access level offered when inviting someone.
type Permission string

const (
	CanView Permission = "view"
	CanEdit Permission = "edit"
	Admin   Permission = "admin"
)

var Permissions = []Permission{CanView, CanEdit, Admin}

func (p Permission) Label() string {
	switch p {
	case CanView:
		return "Can View"
	case CanEdit:
		return "Can Edit"
	case Admin:
		return "Admin"
	}
	return string(p)
}

// Next cycles through Permissions.
func (p Permission) Next() Permission {
	for i, perm := range Permissions {
		if perm == p {
			return Permissions[(i+1)%len(Permissions)]
		}
	}
	return CanView
}

// Slug lowercases title and joins its alphanumeric runs with dashes.
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// Link builds the public URL for a document title.
func Link(baseURL, title string) (string, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid share base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid share base url %q: scheme and host are required", baseURL)
	}
	slug := Slug(title)
	if slug == "" {
		return "", fmt.Errorf("cannot build a share link for an empty title")
	}
	return u.JoinPath("docs", slug).String(), nil
}

// Copier writes text somewhere the user can paste it from.
type Copier interface {
	Copy(text string) error
}

// SystemClipboard copies through the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, err)
	}
	return nil
}
