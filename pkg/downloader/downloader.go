package downloader

import (
	"context"
	"log"
	"sort"
	"strings"
	"time"
	"unicode"

	"speech-corpus/pkg/catalog"
	"speech-corpus/pkg/content"
	"speech-corpus/pkg/corpus"
	"speech-corpus/pkg/domain"
	"speech-corpus/pkg/fetch"
)

// Outcome aggregates one politician's success/failure counts across all
// categories for a single run.
type Outcome struct {
	Successful int
	Failed     int
}

// Recorder receives every successfully downloaded speech. Used to keep an
// external index of the corpus; recorder failures are logged but never
// counted against the run.
type Recorder interface {
	Record(ctx context.Context, speech *domain.Speech) error
}

// Config wires the downloader's collaborators.
type Config struct {
	Repo      *corpus.Repository
	Fetcher   *fetch.Fetcher
	Extractor content.Extractor

	// Sleep is the inter-request politeness delay applied after every
	// fetch attempt, including skips.
	Sleep time.Duration

	// Force re-downloads files that already exist on disk.
	Force bool

	// Recorder is optional.
	Recorder Recorder

	// Sleeper overrides the blocking sleep; tests use a no-op.
	Sleeper fetch.Sleeper
}

// Downloader iterates a speech catalog and dispatches every entry to either
// the inline-transcript path or the fetch-extract-save path. A single item's
// failure never aborts the run.
type Downloader struct {
	repo      *corpus.Repository
	fetcher   *fetch.Fetcher
	extractor content.Extractor
	sleep     time.Duration
	force     bool
	recorder  Recorder
	sleeper   fetch.Sleeper
}

// New creates a downloader. Extractor defaults to the selector-chain
// extractor and Sleeper to a real blocking sleep.
func New(cfg Config) *Downloader {
	extractor := cfg.Extractor
	if extractor == nil {
		extractor = content.NewSelectorExtractor()
	}
	sleeper := cfg.Sleeper
	if sleeper == nil {
		sleeper = fetch.DefaultSleeper
	}
	fetcher := cfg.Fetcher
	if fetcher == nil {
		fetcher = fetch.NewFetcher(nil)
	}

	return &Downloader{
		repo:      cfg.Repo,
		fetcher:   fetcher,
		extractor: extractor,
		sleep:     cfg.Sleep,
		force:     cfg.Force,
		recorder:  cfg.Recorder,
		sleeper:   sleeper,
	}
}

// DownloadAll processes the whole catalog and returns per-politician
// outcomes. Politicians and categories are visited in sorted order so runs
// are deterministic.
func (d *Downloader) DownloadAll(ctx context.Context, cat catalog.Catalog) map[string]Outcome {
	outcomes := make(map[string]Outcome, len(cat))

	politicians := cat.Politicians()
	sort.Strings(politicians)

	for _, politician := range politicians {
		log.Printf("Starting download of %s speeches", politician)
		log.Printf("Output directory: %s", d.repo.PoliticianDir(politician))

		outcome := Outcome{}
		categories := sortedKeys(cat[politician])

		for _, category := range categories {
			d.downloadCategory(ctx, politician, category, cat[politician][category], &outcome)
		}

		outcomes[politician] = outcome
	}

	d.logSummary(outcomes)
	return outcomes
}

// downloadCategory processes one category. A directory-creation failure
// blocks the category's writes: every entry is counted as failed.
func (d *Downloader) downloadCategory(ctx context.Context, politician, category string, cc catalog.Category, outcome *Outcome) {
	if err := d.repo.EnsureCategoryDir(politician, category); err != nil {
		log.Printf("Skipping category %s/%s: %v", politician, category, err)
		outcome.Failed += categorySize(cc)
		return
	}

	if cc.IsInline() {
		d.saveInlineTranscripts(ctx, politician, category, cc.Transcripts, outcome)
		return
	}

	for _, filename := range sortedKeys(cc.URLs) {
		d.downloadPage(ctx, politician, category, filename, cc.URLs[filename], outcome)
		d.sleeper(d.sleep)
	}
}

// saveInlineTranscripts writes catalog-supplied transcript text verbatim.
// Records missing either field are skipped silently, not counted as failures.
func (d *Downloader) saveInlineTranscripts(ctx context.Context, politician, category string, records []catalog.InlineTranscript, outcome *Outcome) {
	for _, record := range records {
		if record.Title == "" || record.Transcript == "" {
			continue
		}

		filename := DeriveTranscriptFilename(record.Title)
		if err := d.repo.WriteText(politician, category, filename, record.Transcript); err != nil {
			log.Printf("Error saving transcript %s/%s/%s: %v", politician, category, filename, err)
			outcome.Failed++
			continue
		}

		log.Printf("Saved: %s", filename)
		outcome.Successful++
		d.record(ctx, politician, category, filename, "", record.Transcript)
	}
}

// downloadPage handles one URL-map entry: skip-if-exists, fetch, extract,
// save. Skipped existing files count as successful, which is what makes a
// resumed run report a fully-populated directory as all-successful.
func (d *Downloader) downloadPage(ctx context.Context, politician, category, filename, url string, outcome *Outcome) {
	log.Printf("Downloading: %s", url)
	path := d.repo.Path(politician, category, filename)

	if !fetch.ShouldFetch(path, d.force) {
		log.Printf("File %s already exists", path)
		outcome.Successful++
		return
	}

	body, err := d.fetcher.Fetch(ctx, url)
	if err != nil {
		log.Printf("Error downloading %s (-> %s): %v", url, filename, err)
		outcome.Failed++
		return
	}

	text, err := d.extractor.ExtractText(body)
	if err != nil {
		log.Printf("Error extracting %s (-> %s): %v", url, filename, err)
		outcome.Failed++
		return
	}

	if err := d.repo.WriteText(politician, category, filename, text); err != nil {
		log.Printf("Error saving %s (-> %s): %v", url, filename, err)
		outcome.Failed++
		return
	}

	log.Printf("Saved: %s", filename)
	outcome.Successful++
	d.record(ctx, politician, category, filename, url, text)
}

// record forwards a successful download to the optional recorder.
func (d *Downloader) record(ctx context.Context, politician, category, filename, url, text string) {
	if d.recorder == nil {
		return
	}

	speech := &domain.Speech{
		Politician:   politician,
		Category:     category,
		Filename:     filename,
		SourceURL:    url,
		Text:         text,
		DownloadedAt: time.Now(),
	}
	if err := d.recorder.Record(ctx, speech); err != nil {
		log.Printf("Error recording %s: %v", speech.Key(), err)
	}
}

// logSummary prints the end-of-run report. It always prints, even when every
// item failed, so operators can tell "nothing to do" from "everything
// failed".
func (d *Downloader) logSummary(outcomes map[string]Outcome) {
	log.Printf("%s", strings.Repeat("=", 80))
	for _, politician := range sortedKeys(outcomes) {
		outcome := outcomes[politician]
		log.Printf("Download complete! - Politician: %s", politician)
		log.Printf("Successful: %d", outcome.Successful)
		log.Printf("Failed: %d", outcome.Failed)
		log.Printf("Files saved to: %s", d.repo.PoliticianDir(politician))
		log.Printf("%s", strings.Repeat("=", 80))
	}
}

// DeriveTranscriptFilename turns an inline transcript title into a filename:
// slashes become hyphens, colons become underscores, the title is
// sentence-cased, spaces become underscores and ".txt" is appended. Sentence
// casing lowercases embedded acronyms ("NATO Summit" -> "Nato_summit").
func DeriveTranscriptFilename(title string) string {
	name := strings.ReplaceAll(title, "/", "-")
	name = strings.ReplaceAll(name, ":", "_")
	name = sentenceCase(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name + ".txt"
}

// sentenceCase lowercases the string and uppercases only the first rune.
func sentenceCase(s string) string {
	s = strings.ToLower(s)
	runes := []rune(s)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

// categorySize counts a category's entries for failure accounting. Incomplete
// inline records are excluded: the save path skips them silently, so they are
// never failures regardless of how the category as a whole fares.
func categorySize(cc catalog.Category) int {
	if cc.IsInline() {
		n := 0
		for _, record := range cc.Transcripts {
			if record.Title != "" && record.Transcript != "" {
				n++
			}
		}
		return n
	}
	return len(cc.URLs)
}

// sortedKeys returns a map's keys in sorted order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
