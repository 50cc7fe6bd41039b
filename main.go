package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"speech-corpus/pkg/catalog"
	"speech-corpus/pkg/content"
	"speech-corpus/pkg/corpus"
	"speech-corpus/pkg/db"
	"speech-corpus/pkg/downloader"
	"speech-corpus/pkg/fetch"
	"speech-corpus/pkg/httpclient"
	"speech-corpus/pkg/index"
)

// newExtractor maps the -extractor flag to an implementation. The selector
// chain is the default; readability covers sites whose content container
// carries none of the common ids/classes.
func newExtractor(name string) (content.Extractor, error) {
	switch name {
	case "selector":
		return content.NewSelectorExtractor(), nil
	case "readability":
		return content.NewReadabilityExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown extractor %q (want selector or readability)", name)
	}
}

func main() {
	var (
		catalogPath = flag.String("catalog", "data/config/speech_urls.json", "path to the speech catalog JSON")
		rawRoot     = flag.String("raw", "data/raw", "raw corpus root directory")
		force       = flag.Bool("force", false, "re-download files that already exist")
		sleep       = flag.Duration("sleep", 2*time.Second, "delay between requests")
		timeout     = flag.Duration("timeout", 30*time.Second, "request timeout")
		extractor   = flag.String("extractor", "selector", "content extractor: selector or readability")
		postgresDSN = flag.String("postgres", "", "optional Postgres DSN for the download index")
	)
	flag.Parse()

	cat, err := catalog.Load(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	ext, err := newExtractor(*extractor)
	if err != nil {
		log.Fatalf("Failed to configure extractor: %v", err)
	}

	ctx := context.Background()

	cfg := downloader.Config{
		Repo:      corpus.NewRepository(*rawRoot),
		Fetcher:   fetch.NewFetcher(httpclient.NewClient(nil, *timeout)),
		Extractor: ext,
		Sleep:     *sleep,
		Force:     *force,
	}

	var idx *index.Index
	if *postgresDSN != "" {
		pg := db.NewPostgresClient(db.PostgresConfig{DSN: *postgresDSN})
		if err := pg.Connect(ctx); err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		defer pg.Close()

		idx = index.New(pg)
		if err := idx.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to prepare download index: %v", err)
		}
		cfg.Recorder = idx
	}

	outcomes := downloader.New(cfg).DownloadAll(ctx, cat)

	total := downloader.Outcome{}
	for _, outcome := range outcomes {
		total.Successful += outcome.Successful
		total.Failed += outcome.Failed
	}
	log.Printf("All politicians done: %d successful, %d failed", total.Successful, total.Failed)

	if idx != nil {
		counts, err := idx.CountsByPolitician(ctx)
		if err != nil {
			log.Printf("Failed to read download index counts: %v", err)
			return
		}

		politicians := make([]string, 0, len(counts))
		for politician := range counts {
			politicians = append(politicians, politician)
		}
		sort.Strings(politicians)
		for _, politician := range politicians {
			log.Printf("Index: %s holds %d speeches", politician, counts[politician])
		}
	}
}
