package cleaner

import "strings"

// encodingReplacer repairs known UTF-8-as-Latin-1 mojibake. This is a fixed
// lookup table, not a general encoding detector. Double-encoded sequences
// must precede the single-encoded ones they contain ("Ã¢Â€Â™" before "Â"),
// and the bare "â€" prefix must come after every longer sequence it starts.
var encodingReplacer = strings.NewReplacer(
	"Ã¢Â€Â™", "'",
	"Ã¢Â€Â", "\"",
	"â€™", "'",
	"â€œ", "\"",
	"â€", "\"",
	"â€”", "—",
	"â€“", "-",
	"â€¦", "...",
	"â€", "\"",
	"Â", " ",
)

// FixEncoding replaces known mis-decoded byte sequences with their intended
// characters.
func FixEncoding(text string) string {
	return encodingReplacer.Replace(text)
}
