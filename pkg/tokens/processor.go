package tokens

import (
	"fmt"

	"speech-corpus/pkg/cleaner"
)

// Config selects the token-level processing options layered on top of the
// text cleaner.
type Config struct {
	RemoveStopwords bool
	FilterLength    bool
	MinTokenLength  int

	// Stemming and Lemmatization are mutually exclusive; stemming wins if
	// both are requested at construction time.
	Stemming      bool
	Lemmatization bool
}

// Processor runs the full text-to-tokens pipeline:
// clean -> tokenize -> (stopwords?) -> (length filter?) -> (stem xor lemma?).
type Processor struct {
	cleaner    *cleaner.Cleaner
	cfg        Config
	stopwords  map[string]struct{}
	lemmatizer *Lemmatizer
}

// NewProcessor creates a processor. NLP resources (the lemma dictionary) are
// loaded here, once, never lazily during processing.
func NewProcessor(cleanCfg cleaner.Config, cfg Config) (*Processor, error) {
	p := &Processor{
		cleaner: cleaner.New(cleanCfg),
		cfg:     cfg,
	}

	if cfg.RemoveStopwords {
		p.stopwords = DefaultStopwords()
	}
	if cfg.Lemmatization && !cfg.Stemming {
		lem, err := NewLemmatizer()
		if err != nil {
			return nil, fmt.Errorf("initialize processor: %w", err)
		}
		p.lemmatizer = lem
	}

	return p, nil
}

// ProcessText runs the complete pipeline over raw text.
func (p *Processor) ProcessText(text string) ([]string, error) {
	cleaned := p.cleaner.Clean(text)

	toks, err := Tokenize(cleaned)
	if err != nil {
		return nil, err
	}

	if p.cfg.RemoveStopwords {
		toks = RemoveStopwords(toks, p.stopwords)
	}
	if p.cfg.FilterLength {
		toks = FilterByLength(toks, p.cfg.MinTokenLength)
	}

	switch {
	case p.cfg.Stemming:
		toks = Stem(toks)
	case p.lemmatizer != nil:
		toks = p.lemmatizer.Lemmatize(toks)
	}

	return toks, nil
}

// Clean exposes the underlying text cleaner for callers that want cleaned
// text rather than tokens.
func (p *Processor) Clean(text string) string {
	return p.cleaner.Clean(text)
}

// PreserveSentences cleans text sentence by sentence, keeping sentence
// boundaries intact. Useful for per-sentence sentiment analysis.
func (p *Processor) PreserveSentences(text string) ([]string, error) {
	sents, err := Sentences(text)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(sents))
	for _, sent := range sents {
		out = append(out, p.cleaner.Clean(sent))
	}
	return out, nil
}
