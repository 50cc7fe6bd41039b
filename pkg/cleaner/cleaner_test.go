package cleaner

import (
	"strings"
	"testing"
)

func allStepsConfig() Config {
	return Config{
		ExpandContractions: true,
		RemoveURLs:         true,
		RemoveEmails:       true,
		RemoveSpecialChars: true,
		RemoveNumbers:      true,
		Lowercase:          true,
		RemovePunctuation:  true,
		CollapseWhitespace: true,
	}
}

func TestClean_PipelineOrdering(t *testing.T) {
	// The fixed step order is a contract: expansion before lowercasing,
	// URL/email removal before special-char removal, and so on.
	input := "Don't worry, visit http://x.com or email a@b.com. Call 123 now!!!"
	expected := "do not worry visit or email call now"

	got := New(allStepsConfig()).Clean(input)
	if got != expected {
		t.Errorf("Clean(%q) = %q, want %q", input, got, expected)
	}
}

func TestClean_Deterministic(t *testing.T) {
	c := New(allStepsConfig())
	input := "It's a test, isn't it? Visit https://example.org NOW."

	first := c.Clean(input)
	second := c.Clean(input)
	if first != second {
		t.Errorf("Clean is not deterministic: %q vs %q", first, second)
	}
}

func TestClean_DefaultConfig(t *testing.T) {
	input := "We need REAL change, now!"
	expected := "we need real change now"

	got := New(DefaultConfig()).Clean(input)
	if got != expected {
		t.Errorf("Clean(%q) = %q, want %q", input, got, expected)
	}
}

func TestFixEncoding(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"apostrophe", "Donâ€™t", "Don't"},
		{"left quote", "â€œquoted", `"quoted`},
		{"ellipsis", "waitâ€¦", "wait..."},
		{"em dash", "Washington â€” today", "Washington — today"},
		{"double encoded apostrophe", "wonÃ¢Â€Â™t", "won't"},
		{"clean text untouched", "Nothing wrong here", "Nothing wrong here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixEncoding(tt.input); got != tt.expect {
				t.Errorf("FixEncoding(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestRemoveBoilerplate_Pagination(t *testing.T) {
	input := "Speech body.\nPrev Previous Older Speech Next Newer Speech Next\nMore body."

	got := RemoveBoilerplate(input)
	if strings.Contains(got, "Previous") || strings.Contains(got, "Newer Speech") {
		t.Errorf("Expected pagination block removed, got %q", got)
	}
	if !strings.Contains(got, "Speech body.") || !strings.Contains(got, "More body.") {
		t.Errorf("Expected body text preserved, got %q", got)
	}
}

func TestRemoveBoilerplate_TrailingFooter(t *testing.T) {
	input := "The speech itself.\nFollow me on Twitter @senator\nOffice Locations\nSuite 100"

	got := RemoveBoilerplate(input)
	if got != "The speech itself." {
		t.Errorf("Expected footer stripped to end of text, got %q", got)
	}
}

func TestRemoveBoilerplate_LeadingDateline(t *testing.T) {
	input := "WASHINGTON — Senator announced the bill today.\nThank you all for coming.\n"

	got := RemoveBoilerplate(input)
	if strings.Contains(got, "WASHINGTON") {
		t.Errorf("Expected dateline removed, got %q", got)
	}
	if !strings.HasPrefix(got, "Thank you") {
		t.Errorf("Expected speech to start after dateline, got %q", got)
	}
}

func TestRemoveBoilerplate_CollapsesNewlines(t *testing.T) {
	input := "First.\n\n\n\n\nSecond."

	got := RemoveBoilerplate(input)
	if got != "First.\n\nSecond." {
		t.Errorf("Expected newline runs collapsed to two, got %q", got)
	}
}

func TestExpandContractions_CaseInsensitive(t *testing.T) {
	e := NewContractionExpander(nil)

	tests := []struct {
		input  string
		expect string
	}{
		{"Don't stop", "do not stop"},
		{"DON'T STOP", "do not STOP"},
		{"I can't believe it's true", "I cannot believe it is true"},
	}

	for _, tt := range tests {
		if got := e.Expand(tt.input); got != tt.expect {
			t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.expect)
		}
	}
}

func TestExpandContractions_LongestKeyWins(t *testing.T) {
	// "can't've" must not be partially matched as "can't" + "'ve"
	e := NewContractionExpander(nil)

	if got := e.Expand("we can't've known"); got != "we cannot have known" {
		t.Errorf("Expand overlapping contraction = %q, want %q", got, "we cannot have known")
	}
}

func TestClean_StepsRunOnlyWhenEnabled(t *testing.T) {
	input := "Keep 123 and PUNCTUATION!"

	got := New(Config{}).Clean(input)
	if !strings.Contains(got, "123") || !strings.Contains(got, "PUNCTUATION!") {
		t.Errorf("Expected disabled steps to leave text alone, got %q", got)
	}
}
