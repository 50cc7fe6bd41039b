package cleaner

import (
	"regexp"
	"strings"
)

var (
	// prevNextNav matches the "Prev Previous ... Next Next" pagination
	// blocks member sites embed between article body and footer.
	prevNextNav = regexp.MustCompile(`(?is)Prev\s*Previous.*?Next.*?Next`)

	// footerPatterns match trailing site sections extending to end of text.
	footerPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)Follow me on Twitter.*`),
		regexp.MustCompile(`(?is)Office Locations.*`),
		regexp.MustCompile(`(?is)Newsletter Signup.*`),
	}

	// dateline matches one leading dispatch-location line, e.g.
	// "WASHINGTON — Senator ...". Runs after encoding repair, so it matches
	// the repaired dash characters.
	dateline = regexp.MustCompile(`(?m)^\s*(?:WASHINGTON|February|March|April).*?[—–-].*?\n`)

	tripleNewline = regexp.MustCompile(`\n{3,}`)
)

// RemoveBoilerplate strips known navigation/footer phrases and one leading
// dateline, then re-collapses newline runs and trims the result.
func RemoveBoilerplate(text string) string {
	text = prevNextNav.ReplaceAllString(text, "")
	for _, pattern := range footerPatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	text = removeFirstMatch(dateline, text)
	text = tripleNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// removeFirstMatch removes only the first occurrence of the pattern.
func removeFirstMatch(re *regexp.Regexp, text string) string {
	if loc := re.FindStringIndex(text); loc != nil {
		return text[:loc[0]] + text[loc[1]:]
	}
	return text
}
