package content

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Extractor defines an interface for pulling the meaningful speech text out
// of raw HTML, discarding navigation and boilerplate.
type Extractor interface {
	ExtractText(htmlContent string) (string, error)
}

// strippedTags are removed from the document unconditionally, regardless of
// nesting, before any content selection happens.
var strippedTags = []string{
	"script", "style", "nav", "header", "footer",
	"aside", "form", "button", "iframe",
}

// contentSelectors is the fixed-priority fallback chain for locating the
// main content node. The first selector that matches anything wins.
var contentSelectors = []string{
	"#main-content",
	"#content",
	"#article",
	".entry-content",
	".article-content",
	".post-content",
	".article-body",
	"[role=main]",
	"article",
	"main",
}

var multiNewline = regexp.MustCompile(`\n{3,}`)

// SelectorExtractor extracts text by stripping structural noise tags and
// walking a fixed chain of common main-content selectors. It is the default
// extractor for member press-release pages.
type SelectorExtractor struct{}

// NewSelectorExtractor creates the default selector-chain extractor.
func NewSelectorExtractor() *SelectorExtractor {
	return &SelectorExtractor{}
}

// ExtractText extracts plain text from arbitrary, possibly malformed HTML.
// Malformed input degrades gracefully rather than failing: the underlying
// parser treats unparseable fragments as text, and a hard parse error falls
// back to returning the input as-is after whitespace normalization.
func (e *SelectorExtractor) ExtractText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return normalizeLines(htmlContent), nil
	}

	doc.Find(strings.Join(strippedTags, ", ")).Remove()

	main := findMainContent(doc)
	return normalizeLines(nodeText(main)), nil
}

// findMainContent walks the selector chain and returns the first match,
// falling back to <body> and finally the whole document.
func findMainContent(doc *goquery.Document) *goquery.Selection {
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return sel.First()
		}
	}

	if body := doc.Find("body"); body.Length() > 0 {
		return body.First()
	}
	return doc.Selection
}

// nodeText concatenates the selection's text runs with newline separators,
// trimming each run.
func nodeText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(node *html.Node, parts *[]string) {
	if node.Type == html.TextNode {
		if text := strings.TrimSpace(node.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, parts)
	}
}

// normalizeLines collapses 3+ newline runs to 2, trims every line and drops
// blank ones, rejoining with single newlines.
func normalizeLines(text string) string {
	text = multiNewline.ReplaceAllString(text, "\n\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
