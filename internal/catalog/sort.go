package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// SortField selects the ordering of document listings.
type SortField string

const (
	SortDate   SortField = "date"
	SortTitle  SortField = "title"
	SortAuthor SortField = "author"
)

var sortFields = []SortField{SortDate, SortTitle, SortAuthor}

func ParseSortField(s string) (SortField, error) {
	field := SortField(strings.ToLower(strings.TrimSpace(s)))
	if field == "" {
		return SortDate, nil
	}
	for _, f := range sortFields {
		if f == field {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid sort field %q: expected date, title or author", s)
}

// Next cycles through the sort fields in display order.
func (f SortField) Next() SortField {
	for i, field := range sortFields {
		if field == f {
			return sortFields[(i+1)%len(sortFields)]
		}
	}
	return SortDate
}

func (f SortField) Label() string {
	switch f {
	case SortTitle:
		return "Title"
	case SortAuthor:
		return "Author"
	}
	return "Date Modified"
}

// Sort orders docs in place by field.
func Sort(docs []Document, field SortField) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, b := docs[i], docs[j]
		switch field {
		case SortTitle:
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		case SortAuthor:
			if a.Author != b.Author {
				return strings.ToLower(a.Author) < strings.ToLower(b.Author)
			}
			return a.Modified.After(b.Modified.Time)
		default:
			if !a.Modified.Equal(b.Modified.Time) {
				return a.Modified.After(b.Modified.Time)
			}
			return a.ID < b.ID
		}
	})
}
