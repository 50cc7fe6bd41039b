// Package tokens provides token-level processing for cleaned speech text:
// tokenization, filtering, stemming/lemmatization, and read-only analysis
// helpers for exploratory work.
package tokens

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jdkato/prose/v2"
	"github.com/kljensen/snowball/english"
)

// Tokenize splits text into words using language-aware tokenization
// (punctuation-aware splitting, not a naive whitespace split).
func Tokenize(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	docTokens := doc.Tokens()
	out := make([]string, 0, len(docTokens))
	for _, tok := range docTokens {
		out = append(out, tok.Text)
	}
	return out, nil
}

// RemoveStopwords drops tokens whose lowercase form is in the stopword set.
func RemoveStopwords(toks []string, stopwords map[string]struct{}) []string {
	if len(stopwords) == 0 {
		return toks
	}

	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		if _, ok := stopwords[strings.ToLower(tok)]; !ok {
			out = append(out, tok)
		}
	}
	return out
}

// FilterByLength keeps tokens with at least minLen characters.
func FilterByLength(toks []string, minLen int) []string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		if len([]rune(tok)) >= minLen {
			out = append(out, tok)
		}
	}
	return out
}

// Stem applies English Snowball stemming to every token. Stemming is a
// mechanical suffix-stripper and may produce non-words.
func Stem(toks []string) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = english.Stem(tok, true)
	}
	return out
}

// TaggedToken is a token with its part-of-speech tag (Penn Treebank set).
type TaggedToken struct {
	Text string
	Tag  string
}

// POSTags tags the text's tokens with parts of speech.
func POSTags(text string) ([]TaggedToken, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("pos tagging: %w", err)
	}

	docTokens := doc.Tokens()
	out := make([]TaggedToken, 0, len(docTokens))
	for _, tok := range docTokens {
		out = append(out, TaggedToken{Text: tok.Text, Tag: tok.Tag})
	}
	return out, nil
}

// Sentences segments text into sentences.
func Sentences(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("sentence segmentation: %w", err)
	}

	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, sent := range sents {
		out = append(out, sent.Text)
	}
	return out, nil
}

// ExtractNgrams returns the sliding n-grams over the token sequence.
// Returns nil when the sequence is shorter than n or n < 1.
func ExtractNgrams(toks []string, n int) [][]string {
	if n < 1 || len(toks) < n {
		return nil
	}

	out := make([][]string, 0, len(toks)-n+1)
	for i := 0; i+n <= len(toks); i++ {
		gram := make([]string, n)
		copy(gram, toks[i:i+n])
		out = append(out, gram)
	}
	return out
}

// Frequency is one entry of a word-frequency distribution.
type Frequency struct {
	Token string
	Count int
}

// WordFrequencies returns the topN most frequent tokens. Ties are broken by
// first occurrence in the token sequence. topN <= 0 returns all tokens.
func WordFrequencies(toks []string, topN int) []Frequency {
	counts := make(map[string]int, len(toks))
	order := make([]string, 0, len(toks))
	for _, tok := range toks {
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	freqs := make([]Frequency, 0, len(order))
	for _, tok := range order {
		freqs = append(freqs, Frequency{Token: tok, Count: counts[tok]})
	}

	// Stable sort keeps first-occurrence order among equal counts.
	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})

	if topN > 0 && len(freqs) > topN {
		freqs = freqs[:topN]
	}
	return freqs
}

// Statistics describes a text for exploratory analysis.
type Statistics struct {
	CharCount        int
	WordCount        int
	SentenceCount    int
	AvgWordLength    float64
	UniqueWords      int
	LexicalDiversity float64
}

// GetStatistics computes basic text statistics. Empty input yields all-zero
// statistics; lexical diversity is 0, never a division by zero.
func GetStatistics(text string) (Statistics, error) {
	stats := Statistics{CharCount: len(text)}

	toks, err := Tokenize(text)
	if err != nil {
		return Statistics{}, err
	}
	if len(toks) == 0 {
		return stats, nil
	}

	sents, err := Sentences(text)
	if err != nil {
		return Statistics{}, err
	}

	unique := make(map[string]struct{}, len(toks))
	totalLen := 0
	for _, tok := range toks {
		unique[tok] = struct{}{}
		totalLen += len(tok)
	}

	stats.WordCount = len(toks)
	stats.SentenceCount = len(sents)
	stats.AvgWordLength = float64(totalLen) / float64(len(toks))
	stats.UniqueWords = len(unique)
	stats.LexicalDiversity = float64(len(unique)) / float64(len(toks))
	return stats, nil
}
