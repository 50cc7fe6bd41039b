// Package mirror pushes the on-disk raw corpus into MongoDB so downstream
// analysis can query speeches without filesystem access. The filesystem
// stays the source of truth; the mirror is derived and re-runnable.
package mirror

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"speech-corpus/pkg/db"
	"speech-corpus/pkg/domain"
)

// Config wires the mirror's dependencies.
type Config struct {
	Mongo   *db.Client
	RawRoot string
}

// Mirror replicates raw speech files into MongoDB, skipping speeches the
// database already holds.
type Mirror struct {
	mongo   *db.Client
	rawRoot string
}

// New creates a mirror.
func New(cfg Config) (*Mirror, error) {
	if cfg.Mongo == nil {
		return nil, fmt.Errorf("mongo client is required")
	}
	if cfg.RawRoot == "" {
		return nil, fmt.Errorf("raw corpus root is required")
	}
	return &Mirror{mongo: cfg.Mongo, rawRoot: cfg.RawRoot}, nil
}

// Run walks the raw tree and saves every speech not yet mirrored. Returns
// (mirrored, skipped) counts. Per-file failures are logged and skipped; they
// never abort the run.
func (m *Mirror) Run(ctx context.Context) (int, int, error) {
	existing, err := m.mongo.GetAllKeys(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load existing speech keys: %w", err)
	}
	log.Printf("Mirror: %d speeches already in database", len(existing))

	speeches, err := m.collectSpeeches()
	if err != nil {
		return 0, 0, err
	}
	log.Printf("Mirror: found %d speech files on disk", len(speeches))

	mirrored, skipped := 0, 0
	for _, speech := range speeches {
		if existing[speech.Key()] {
			skipped++
			continue
		}
		if err := m.mongo.SaveSpeech(ctx, speech); err != nil {
			log.Printf("Mirror: error saving %s: %v", speech.Key(), err)
			continue
		}
		mirrored++
		if mirrored%100 == 0 {
			log.Printf("Mirror progress: %d mirrored, %d skipped", mirrored, skipped)
		}
	}

	log.Printf("Mirror complete: %d mirrored, %d skipped (total on disk: %d)", mirrored, skipped, len(speeches))
	return mirrored, skipped, nil
}

// collectSpeeches reads every .txt file in the two-level corpus layout into
// a Speech record. Politician and category come from the file's position in
// the tree.
func (m *Mirror) collectSpeeches() ([]*domain.Speech, error) {
	var speeches []*domain.Speech

	err := filepath.WalkDir(m.rawRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}

		text, readErr := os.ReadFile(path)
		if readErr != nil {
			log.Printf("Mirror: error reading %s: %v", path, readErr)
			return nil
		}

		info, statErr := d.Info()
		downloadedAt := time.Now()
		if statErr == nil {
			downloadedAt = info.ModTime()
		}

		speeches = append(speeches, &domain.Speech{
			Politician:   filepath.Base(filepath.Dir(filepath.Dir(path))),
			Category:     filepath.Base(filepath.Dir(path)),
			Filename:     d.Name(),
			Text:         string(text),
			DownloadedAt: downloadedAt,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk raw corpus %s: %w", m.rawRoot, err)
	}

	return speeches, nil
}
