// Package cleaner implements the text-normalization pipeline applied to raw
// speech transcripts before analysis. Steps run in a fixed, documented
// order; changing the order changes output (e.g. contraction expansion is
// case-insensitive precisely because it runs before lowercasing).
package cleaner

import (
	"regexp"
	"strings"
)

// Config selects the optional normalization steps. It is chosen once at
// construction time and applied uniformly to every text the cleaner
// processes.
type Config struct {
	ExpandContractions bool
	RemoveURLs         bool
	RemoveEmails       bool
	RemoveSpecialChars bool
	RemoveNumbers      bool
	Lowercase          bool
	RemovePunctuation  bool
	CollapseWhitespace bool
}

// DefaultConfig mirrors the pipeline's standard preprocessing settings.
func DefaultConfig() Config {
	return Config{
		RemoveURLs:         true,
		RemoveEmails:       true,
		Lowercase:          true,
		RemovePunctuation:  true,
		CollapseWhitespace: true,
	}
}

// Cleaner applies the normalization pipeline. Safe for reuse across texts;
// the configuration never changes mid-run.
type Cleaner struct {
	cfg      Config
	expander *ContractionExpander
}

// New creates a cleaner with the given configuration.
func New(cfg Config) *Cleaner {
	return &Cleaner{
		cfg:      cfg,
		expander: NewContractionExpander(nil),
	}
}

// step is one pipeline stage: a predicate over the configuration and the
// transform itself. Keeping the stages in one ordered table makes the
// ordering contract visible and testable per stage.
type step struct {
	name    string
	enabled func(Config) bool
	apply   func(*Cleaner, string) string
}

func always(Config) bool { return true }

var pipeline = []step{
	{"fix_encoding", always,
		func(_ *Cleaner, s string) string { return FixEncoding(s) }},
	{"remove_boilerplate", always,
		func(_ *Cleaner, s string) string { return RemoveBoilerplate(s) }},
	{"expand_contractions", func(c Config) bool { return c.ExpandContractions },
		func(cl *Cleaner, s string) string { return cl.expander.Expand(s) }},
	{"remove_urls", func(c Config) bool { return c.RemoveURLs },
		func(_ *Cleaner, s string) string { return urlPattern.ReplaceAllString(s, "") }},
	{"remove_emails", func(c Config) bool { return c.RemoveEmails },
		func(_ *Cleaner, s string) string { return emailPattern.ReplaceAllString(s, "") }},
	{"remove_special_chars", func(c Config) bool { return c.RemoveSpecialChars },
		func(_ *Cleaner, s string) string { return specialCharPattern.ReplaceAllString(s, "") }},
	{"remove_numbers", func(c Config) bool { return c.RemoveNumbers },
		func(_ *Cleaner, s string) string { return digitPattern.ReplaceAllString(s, "") }},
	{"lowercase", func(c Config) bool { return c.Lowercase },
		func(_ *Cleaner, s string) string { return strings.ToLower(s) }},
	{"remove_punctuation", func(c Config) bool { return c.RemovePunctuation },
		func(_ *Cleaner, s string) string { return stripPunctuation(s) }},
	{"collapse_whitespace", func(c Config) bool { return c.CollapseWhitespace },
		func(_ *Cleaner, s string) string { return strings.Join(strings.Fields(s), " ") }},
}

// Clean runs the full pipeline over the text. Pure: the same input and
// configuration always yield the same output.
func (c *Cleaner) Clean(text string) string {
	for _, s := range pipeline {
		if s.enabled(c.cfg) {
			text = s.apply(c, text)
		}
	}
	return text
}

var (
	urlPattern         = regexp.MustCompile(`https?://\S+`)
	emailPattern       = regexp.MustCompile(`\S+@\S+`)
	specialCharPattern = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	digitPattern       = regexp.MustCompile(`\d+`)
)

// asciiPunctuation matches the standard punctuation set stripped by the
// remove-punctuation step.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func stripPunctuation(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, text)
}
