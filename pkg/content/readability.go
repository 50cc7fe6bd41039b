package content

import (
	"fmt"
	"strings"

	"github.com/go-shiori/go-readability"
)

// ReadabilityExtractor extracts text with the readability content scoring
// algorithm instead of the selector chain. Useful for sites whose main
// content container carries none of the common ids/classes, where the
// selector chain would fall through to <body> and pick up sidebar noise.
type ReadabilityExtractor struct{}

// NewReadabilityExtractor creates a readability-based extractor.
func NewReadabilityExtractor() *ReadabilityExtractor {
	return &ReadabilityExtractor{}
}

// ExtractText extracts the main article text from HTML content.
func (e *ReadabilityExtractor) ExtractText(htmlContent string) (string, error) {
	article, err := readability.FromReader(strings.NewReader(htmlContent), nil)
	if err != nil {
		return "", fmt.Errorf("readability extraction: %w", err)
	}

	return strings.TrimSpace(article.TextContent), nil
}
