package catalog

import (
	"sort"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
)

// Result is a search hit. TitleMatches holds the character offsets in the title
// that matched, for highlighting.
type Result struct {
	Document     Document
	Rank         int
	TitleMatches []int
}

const (
	rankTitle = iota
	rankMeta
	rankText
	rankFuzzy
)

// foldedTitle is a lowercased title. origin maps every byte of text to the
// index of the title rune it came from, so match offsets can be reported
// against the title as written.
type foldedTitle struct {
	text   string
	origin []int
}

func foldTitle(title string) foldedTitle {
	var b strings.Builder
	var origin []int
	for i, r := range []rune(title) {
		n, _ := b.WriteRune(unicode.ToLower(r))
		for ; n > 0; n-- {
			origin = append(origin, i)
		}
	}
	return foldedTitle{text: b.String(), origin: origin}
}

// runes returns the title rune offsets behind the given byte offsets of the
// folded text, without repeats.
func (f foldedTitle) runes(bytes []int) []int {
	out := make([]int, 0, len(bytes))
	for _, b := range bytes {
		if b < 0 || b >= len(f.origin) {
			continue
		}
		if o := f.origin[b]; len(out) == 0 || out[len(out)-1] != o {
			out = append(out, o)
		}
	}
	return out
}

// span returns the title offsets of the first occurrence of sub.
func (f foldedTitle) span(sub string) []int {
	start := strings.Index(f.text, sub)
	if start < 0 {
		return nil
	}
	bytes := make([]int, len(sub))
	for i := range bytes {
		bytes[i] = start + i
	}
	return f.runes(bytes)
}

type titles []foldedTitle

func (t titles) String(i int) string { return t[i].text }
func (t titles) Len() int            { return len(t) }

// Search ranks documents for query: substring hits in the title first, then
// in tags or author, then in the snippet or body, then fuzzy title matches.
// A blank query returns nothing.
func (m *Memory) Search(query string) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	docs := m.List(SortDate)
	folded := make(titles, len(docs))
	hits := map[int]Result{}

	for i, d := range docs {
		folded[i] = foldTitle(d.Title)
		switch {
		case strings.Contains(folded[i].text, q):
			hits[i] = Result{Document: d, Rank: rankTitle, TitleMatches: folded[i].span(q)}
		case matchesMeta(d, q):
			hits[i] = Result{Document: d, Rank: rankMeta}
		case strings.Contains(strings.ToLower(d.Snippet), q),
			strings.Contains(strings.ToLower(d.Body), q):
			hits[i] = Result{Document: d, Rank: rankText}
		}
	}

	fuzzyScore := map[int]int{}
	for _, match := range fuzzy.FindFrom(q, folded) {
		fuzzyScore[match.Index] = match.Score
		if _, ok := hits[match.Index]; ok {
			continue
		}
		hits[match.Index] = Result{
			Document:     docs[match.Index],
			Rank:         rankFuzzy,
			TitleMatches: folded[match.Index].runes(match.MatchedIndexes),
		}
	}

	idx := make([]int, 0, len(hits))
	for i := range hits {
		idx = append(idx, i)
	}
	sort.Slice(idx, func(a, b int) bool {
		ra, rb := hits[idx[a]], hits[idx[b]]
		if ra.Rank != rb.Rank {
			return ra.Rank < rb.Rank
		}
		if fuzzyScore[idx[a]] != fuzzyScore[idx[b]] {
			return fuzzyScore[idx[a]] > fuzzyScore[idx[b]]
		}
		return idx[a] < idx[b]
	})

	results := make([]Result, 0, len(idx))
	for _, i := range idx {
		results = append(results, hits[i])
	}
	return results
}

func matchesMeta(d Document, q string) bool {
	if strings.Contains(strings.ToLower(d.Author), q) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
