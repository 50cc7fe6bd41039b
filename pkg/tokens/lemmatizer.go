package tokens

import (
	"fmt"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// Lemmatizer maps tokens to dictionary base forms. The English dictionary
// is loaded once at construction; construct before first use rather than
// lazily mid-pipeline.
type Lemmatizer struct {
	lemmatizer *golem.Lemmatizer
}

// NewLemmatizer loads the bundled English lemma dictionary.
func NewLemmatizer() (*Lemmatizer, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemma dictionary: %w", err)
	}
	return &Lemmatizer{lemmatizer: lem}, nil
}

// Lemmatize maps every token to its base form. Tokens not in the dictionary
// pass through unchanged.
func (l *Lemmatizer) Lemmatize(toks []string) []string {
	out := make([]string, len(toks))
	for i, tok := range toks {
		out[i] = l.lemmatizer.Lemma(tok)
	}
	return out
}
