package cleaner

import (
	"regexp"
	"sort"
	"strings"
)

// defaultContractions maps contractions to their expansions. Keys are
// lowercase; matching is case-insensitive.
var defaultContractions = map[string]string{
	"ain't":     "am not",
	"aren't":    "are not",
	"can't":     "cannot",
	"can't've":  "cannot have",
	"could've":  "could have",
	"couldn't":  "could not",
	"didn't":    "did not",
	"doesn't":   "does not",
	"don't":     "do not",
	"hadn't":    "had not",
	"hasn't":    "has not",
	"haven't":   "have not",
	"he'd":      "he would",
	"he'll":     "he will",
	"he's":      "he is",
	"how's":     "how is",
	"i'd":       "i would",
	"i'll":      "i will",
	"i'm":       "i am",
	"i've":      "i have",
	"isn't":     "is not",
	"it'd":      "it would",
	"it'll":     "it will",
	"it's":      "it is",
	"let's":     "let us",
	"mustn't":   "must not",
	"shan't":    "shall not",
	"she'd":     "she would",
	"she'll":    "she will",
	"she's":     "she is",
	"should've": "should have",
	"shouldn't": "should not",
	"that's":    "that is",
	"there's":   "there is",
	"they'd":    "they would",
	"they'll":   "they will",
	"they're":   "they are",
	"they've":   "they have",
	"wasn't":    "was not",
	"we'd":      "we would",
	"we'll":     "we will",
	"we're":     "we are",
	"we've":     "we have",
	"weren't":   "were not",
	"what's":    "what is",
	"where's":   "where is",
	"who's":     "who is",
	"won't":     "will not",
	"won't've":  "will not have",
	"would've":  "would have",
	"wouldn't":  "would not",
	"you'd":     "you would",
	"you'll":    "you will",
	"you're":    "you are",
	"you've":    "you have",
}

// ContractionExpander performs case-insensitive whole-word replacement over
// a contraction table.
type ContractionExpander struct {
	table   map[string]string
	pattern *regexp.Regexp
}

// NewContractionExpander builds an expander. A nil table uses the default
// English contractions. Keys are sorted by descending length before the
// alternation is built, so an overlapping pair like "can't"/"can't've"
// always matches the longer key first.
func NewContractionExpander(table map[string]string) *ContractionExpander {
	if table == nil {
		table = defaultContractions
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	quoted := make([]string, len(keys))
	for i, key := range keys {
		quoted[i] = regexp.QuoteMeta(key)
	}
	pattern := regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)

	return &ContractionExpander{table: table, pattern: pattern}
}

// Expand replaces every contraction with its expansion.
func (e *ContractionExpander) Expand(text string) string {
	return e.pattern.ReplaceAllStringFunc(text, func(match string) string {
		if expansion, ok := e.table[strings.ToLower(match)]; ok {
			return expansion
		}
		return match
	})
}
