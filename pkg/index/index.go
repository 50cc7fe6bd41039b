// Package index maintains a Postgres manifest of downloaded speeches, so
// operators can query what the corpus holds without walking the tree.
package index

import (
	"context"
	"crypto/md5"
	"fmt"

	"speech-corpus/pkg/db"
	"speech-corpus/pkg/domain"
)

// Index records downloaded speeches in a relational download manifest. It
// runs against any DBProvider (plain Postgres or Supabase).
type Index struct {
	pg db.DBProvider
}

// New creates an index over the given provider. Call EnsureSchema before
// the first Record.
func New(pg db.DBProvider) *Index {
	return &Index{pg: pg}
}

// EnsureSchema creates the speech manifest table if missing. The corpus key
// (politician, category, filename) is the primary key, matching the on-disk
// layout's uniqueness rule: duplicates overwrite, never merge.
func (i *Index) EnsureSchema(ctx context.Context) error {
	if i.pg.DB() == nil {
		return fmt.Errorf("postgres DB not connected")
	}

	const ddl = `
CREATE TABLE IF NOT EXISTS speech (
  politician TEXT NOT NULL,
  category TEXT NOT NULL,
  filename TEXT NOT NULL,
  source_url TEXT NOT NULL DEFAULT '',
  content_hash TEXT NOT NULL DEFAULT '',
  downloaded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (politician, category, filename)
);`

	if _, err := i.pg.DB().ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create speech table: %w", err)
	}
	return nil
}

// Record upserts one downloaded speech into the manifest. Implements the
// downloader's Recorder hook.
func (i *Index) Record(ctx context.Context, speech *domain.Speech) error {
	if i.pg.DB() == nil {
		return fmt.Errorf("postgres DB not connected")
	}

	hash := md5.Sum([]byte(speech.Text))

	const upsert = `
INSERT INTO speech (politician, category, filename, source_url, content_hash, downloaded_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (politician, category, filename) DO UPDATE
SET source_url = EXCLUDED.source_url,
    content_hash = EXCLUDED.content_hash,
    downloaded_at = EXCLUDED.downloaded_at`

	_, err := i.pg.DB().ExecContext(ctx, upsert,
		speech.Politician, speech.Category, speech.Filename,
		speech.SourceURL, fmt.Sprintf("%x", hash), speech.DownloadedAt)
	if err != nil {
		return fmt.Errorf("record speech %s: %w", speech.Key(), err)
	}
	return nil
}

// CountsByPolitician returns how many speeches the manifest holds per
// politician.
func (i *Index) CountsByPolitician(ctx context.Context) (map[string]int, error) {
	if i.pg.DB() == nil {
		return nil, fmt.Errorf("postgres DB not connected")
	}

	rows, err := i.pg.DB().QueryContext(ctx,
		`SELECT politician, COUNT(*) FROM speech GROUP BY politician`)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var politician string
		var count int
		if err := rows.Scan(&politician, &count); err != nil {
			return nil, fmt.Errorf("scan count row: %w", err)
		}
		counts[politician] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return counts, nil
}
