// Package catalog holds the documents the portal browses. The bundled
// fixture stands in for a document service; a YAML file with the same
// shape can replace it.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/sidoc/internal/portal"
)

//go:embed seed.yaml
var seed []byte

var ErrNotFound = errors.New("document not found")

// Repository is the read side of a document store.
type Repository interface {
	List(sort SortField) []Document
	Get(id portal.DocumentID) (Document, error)
	Search(query string) []Result
	Recent(n int) []Document
	Tags() []TagGroup
	Shared() []Document
	Stats() Stats
}

type TagGroup struct {
	Tag       string
	Documents []Document
}

type Stats struct {
	Total     int
	Shared    int
	Drafts    int
	ThisWeek  int
	Reference time.Time
}

type file struct {
	Documents []Document `yaml:"documents"`
}

// Memory is a Repository backed by a slice held in memory.
type Memory struct {
	mu   sync.RWMutex
	docs []Document
}

func NewMemory(docs []Document) (*Memory, error) {
	m := &Memory{}
	if err := m.Replace(docs); err != nil {
		return nil, err
	}
	return m, nil
}

// Default returns the bundled fixture catalog.
func Default() *Memory {
	m, err := Load(bytes.NewReader(seed))
	if err != nil {
		panic(fmt.Sprintf("catalog: bundled fixture is invalid: %v", err))
	}
	return m
}

func Load(r io.Reader) (*Memory, error) {
	docs, err := decode(r)
	if err != nil {
		return nil, err
	}
	return NewMemory(docs)
}

// LoadFile reads a catalog file. An empty path yields the bundled fixture.
func LoadFile(path string) (*Memory, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return m, nil
}

// Reload re-reads path into m, keeping the old contents on failure.
func (m *Memory) Reload(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	docs, err := decode(f)
	if err != nil {
		return fmt.Errorf("reload catalog %s: %w", path, err)
	}
	return m.Replace(docs)
}

func decode(r io.Reader) ([]Document, error) {
	var f file
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return f.Documents, nil
}

// Replace swaps the catalog contents after validating every document.
func (m *Memory) Replace(docs []Document) error {
	seen := make(map[portal.DocumentID]bool, len(docs))
	for _, d := range docs {
		if err := d.validate(); err != nil {
			return err
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate document id %d", d.ID)
		}
		seen[d.ID] = true
	}

	copied := append([]Document(nil), docs...)
	m.mu.Lock()
	m.docs = copied
	m.mu.Unlock()
	return nil
}

func (m *Memory) snapshot() []Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Document(nil), m.docs...)
}

func (m *Memory) List(field SortField) []Document {
	docs := m.snapshot()
	Sort(docs, field)
	return docs
}

func (m *Memory) Get(id portal.DocumentID) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, d := range m.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return Document{}, fmt.Errorf("document %d: %w", id, ErrNotFound)
}

// Recent returns up to n documents, newest first. n <= 0 returns them all.
func (m *Memory) Recent(n int) []Document {
	docs := m.List(SortDate)
	if n > 0 && len(docs) > n {
		docs = docs[:n]
	}
	return docs
}

// Tags groups documents under each tag, tags sorted alphabetically.
func (m *Memory) Tags() []TagGroup {
	byTag := map[string][]Document{}
	for _, d := range m.List(SortTitle) {
		for _, tag := range d.Tags {
			byTag[tag] = append(byTag[tag], d)
		}
	}

	groups := make([]TagGroup, 0, len(byTag))
	for tag, docs := range byTag {
		groups = append(groups, TagGroup{Tag: tag, Documents: docs})
	}
	sort.Slice(groups, func(i, j int) bool {
		return strings.ToLower(groups[i].Tag) < strings.ToLower(groups[j].Tag)
	})
	return groups
}

func (m *Memory) Shared() []Document {
	var out []Document
	for _, d := range m.List(SortDate) {
		if d.Shared() {
			out = append(out, d)
		}
	}
	return out
}

// Stats summarizes the catalog. "This week" is measured back from the
// newest document so fixture data does not age out.
func (m *Memory) Stats() Stats {
	docs := m.List(SortDate)
	var s Stats
	s.Total = len(docs)
	if len(docs) > 0 {
		s.Reference = docs[0].Modified.Time
	}
	weekAgo := s.Reference.AddDate(0, 0, -7)
	for _, d := range docs {
		if d.Shared() {
			s.Shared++
		}
		if d.Status == StatusDraft {
			s.Drafts++
		}
		if d.Modified.After(weekAgo) {
			s.ThisWeek++
		}
	}
	return s
}
