package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Catalog maps a politician identifier (e.g. "bernie_sanders") to that
// politician's speech categories.
type Catalog map[string]map[string]Category

// InlineTranscript is a pre-supplied transcript carried directly in the
// catalog instead of a URL to fetch.
type InlineTranscript struct {
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
}

// Category is the content of one speech category. A category holds exactly
// one of two shapes, fixed at catalog-authoring time:
//   - URLs: filename -> source URL, fetched over HTTP
//   - Transcripts: an ordered list of inline {title, transcript} records
//
// The shape is detected while decoding the catalog JSON, so callers can
// branch on IsInline without re-inspecting raw JSON.
type Category struct {
	URLs        map[string]string
	Transcripts []InlineTranscript
}

// IsInline reports whether the category carries inline transcripts rather
// than a filename -> URL map.
func (c Category) IsInline() bool {
	return c.Transcripts != nil
}

// UnmarshalJSON decodes either category shape: a JSON array becomes inline
// transcripts, a JSON object becomes a URL map.
func (c *Category) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty category value")
	}

	switch trimmed[0] {
	case '[':
		var transcripts []InlineTranscript
		if err := json.Unmarshal(trimmed, &transcripts); err != nil {
			return fmt.Errorf("decode inline transcripts: %w", err)
		}
		c.Transcripts = transcripts
		c.URLs = nil
		return nil
	case '{':
		var urls map[string]string
		if err := json.Unmarshal(trimmed, &urls); err != nil {
			return fmt.Errorf("decode URL map: %w", err)
		}
		c.URLs = urls
		c.Transcripts = nil
		return nil
	default:
		return fmt.Errorf("category value must be an object or an array")
	}
}

// Load reads and decodes the catalog JSON file. Any read or parse failure is
// returned immediately so a malformed catalog aborts before work begins.
func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	return cat, nil
}

// Politicians returns the catalog's politician identifiers.
func (c Catalog) Politicians() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	return names
}
