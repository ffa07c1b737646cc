package site

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/27piyush27/folio/internal/content"
)

// maxSearchContent caps the text indexed per section.
const maxSearchContent = 2000

// SearchEntry represents a single searchable section of the page.
type SearchEntry struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Content string `json:"content"`
}

// BuildSearchIndex produces one entry per navigation section, in page order.
func BuildSearchIndex(p *content.Profile) []SearchEntry {
	entries := make([]SearchEntry, 0, len(p.Navigation))
	for _, nav := range p.Navigation {
		section, err := p.Section(nav.Target)
		if err != nil {
			continue
		}
		text := flatten(section)
		entry := SearchEntry{
			Path:    "#" + nav.Target,
			Title:   nav.Name,
			Content: strings.Join(text, " "),
		}
		if len(text) > 0 {
			entry.Summary = text[0]
		}
		if len(entry.Content) > maxSearchContent {
			entry.Content = entry.Content[:maxSearchContent]
		}
		entries = append(entries, entry)
	}
	return entries
}

// Search returns the entries containing every term of query, best match
// first. Matching is case-insensitive.
func Search(entries []SearchEntry, query string) []SearchEntry {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	type scored struct {
		entry SearchEntry
		score int
	}
	var hits []scored
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		body := strings.ToLower(e.Content)
		score := 0
		for _, term := range terms {
			n := strings.Count(body, term)
			if strings.Contains(title, term) {
				n += 5
			}
			if n == 0 {
				score = 0
				break
			}
			score += n
		}
		if score > 0 {
			hits = append(hits, scored{e, score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })
	out := make([]SearchEntry, len(hits))
	for i, h := range hits {
		out[i] = h.entry
	}
	return out
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// flatten collects the string leaves of a section in document order.
func flatten(section interface{}) []string {
	data, err := json.Marshal(section)
	if err != nil {
		return nil
	}
	var tree interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil
	}
	var out []string
	var walk func(v interface{})
	walk = func(v interface{}) {
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				out = append(out, s)
			}
		case []interface{}:
			for _, item := range t {
				walk(item)
			}
		case map[string]interface{}:
			keys := make([]string, 0, len(t))
			for k := range t {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				walk(t[k])
			}
		}
	}
	walk(tree)
	return out
}
