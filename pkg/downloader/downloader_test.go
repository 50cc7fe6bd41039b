package downloader

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"speech-corpus/pkg/catalog"
	"speech-corpus/pkg/corpus"
	"speech-corpus/pkg/fetch"
	"speech-corpus/pkg/httpclient"
)

func noSleep(time.Duration) {}

func newTestDownloader(t *testing.T, root string, force bool) *Downloader {
	t.Helper()
	return New(Config{
		Repo:    corpus.NewRepository(root),
		Fetcher: fetch.NewFetcher(httpclient.NewClient(nil, 5*time.Second)),
		Force:   force,
		Sleeper: noSleep,
	})
}

func TestDeriveTranscriptFilename(t *testing.T) {
	tests := []struct {
		title  string
		expect string
	}{
		{"Test Rally Speech", "Test_rally_speech.txt"},
		{"NATO Summit", "Nato_summit.txt"},
		{"Healthcare: Reform", "Healthcare__reform.txt"},
		{"Before/After", "Before-after.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := DeriveTranscriptFilename(tt.title); got != tt.expect {
				t.Errorf("DeriveTranscriptFilename(%q) = %q, want %q", tt.title, got, tt.expect)
			}
		})
	}
}

func TestDownloadAll_InlineTranscripts(t *testing.T) {
	root := t.TempDir()
	d := newTestDownloader(t, root, false)

	cat := catalog.Catalog{
		"x": {
			"rally": catalog.Category{
				Transcripts: []catalog.InlineTranscript{
					{Title: "Test Rally Speech", Transcript: "Hello world"},
					{Title: "Missing Transcript"},
					{Transcript: "Missing title"},
				},
			},
		},
	}

	outcomes := d.DownloadAll(context.Background(), cat)

	// Incomplete records are skipped silently, not counted as failures
	if outcomes["x"].Successful != 1 || outcomes["x"].Failed != 0 {
		t.Errorf("Expected 1 successful / 0 failed, got %+v", outcomes["x"])
	}

	content, err := os.ReadFile(filepath.Join(root, "x", "rally", "Test_rally_speech.txt"))
	if err != nil {
		t.Fatalf("Expected transcript file: %v", err)
	}
	if string(content) != "Hello world" {
		t.Errorf("Expected transcript saved verbatim, got %q", content)
	}
}

func TestDownloadAll_BlockedCategoryCountsOnlyCompleteRecords(t *testing.T) {
	root := t.TempDir()
	// A file where the politician directory should go makes MkdirAll fail
	if err := os.WriteFile(filepath.Join(root, "x"), []byte("in the way"), 0o644); err != nil {
		t.Fatalf("Failed to create blocking file: %v", err)
	}
	d := newTestDownloader(t, root, false)

	cat := catalog.Catalog{
		"x": {
			"rally": catalog.Category{
				Transcripts: []catalog.InlineTranscript{
					{Title: "Test Rally Speech", Transcript: "Hello world"},
					{Title: "Missing Transcript"},
					{Transcript: "Missing title"},
				},
			},
		},
	}

	outcomes := d.DownloadAll(context.Background(), cat)

	// Incomplete records are skipped on the save path, so they are not
	// failures when the category directory cannot be created either
	if outcomes["x"].Successful != 0 || outcomes["x"].Failed != 1 {
		t.Errorf("Expected 0 successful / 1 failed, got %+v", outcomes["x"])
	}
}

func TestDownloadAll_PartialFailureIsolation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("<html><body><main>Speech text</main></body></html>"))
	}))
	defer server.Close()

	root := t.TempDir()
	d := newTestDownloader(t, root, false)

	cat := catalog.Catalog{
		"x": {
			"floor": catalog.Category{
				URLs: map[string]string{
					"one.txt":   server.URL + "/one",
					"two.txt":   server.URL + "/broken",
					"three.txt": server.URL + "/three",
				},
			},
		},
	}

	outcomes := d.DownloadAll(context.Background(), cat)

	if outcomes["x"].Successful != 2 || outcomes["x"].Failed != 1 {
		t.Errorf("Expected 2 successful / 1 failed, got %+v", outcomes["x"])
	}

	for _, filename := range []string{"one.txt", "three.txt"} {
		content, err := os.ReadFile(filepath.Join(root, "x", "floor", filename))
		if err != nil {
			t.Fatalf("Expected %s to be written: %v", filename, err)
		}
		if string(content) != "Speech text" {
			t.Errorf("Expected extracted text in %s, got %q", filename, content)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "x", "floor", "two.txt")); err == nil {
		t.Error("Expected no file for the failed download")
	}
}

func TestDownloadAll_SecondRunIssuesNoRequests(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte("<html><body><main>Speech text</main></body></html>"))
	}))
	defer server.Close()

	root := t.TempDir()
	cat := catalog.Catalog{
		"x": {
			"floor": catalog.Category{
				URLs: map[string]string{
					"one.txt": server.URL + "/one",
					"two.txt": server.URL + "/two",
				},
			},
		},
	}

	first := newTestDownloader(t, root, false).DownloadAll(context.Background(), cat)
	if first["x"].Successful != 2 {
		t.Fatalf("First run: expected 2 successful, got %+v", first["x"])
	}
	afterFirst := requests.Load()
	if afterFirst != 2 {
		t.Fatalf("First run: expected 2 requests, got %d", afterFirst)
	}

	second := newTestDownloader(t, root, false).DownloadAll(context.Background(), cat)
	if second["x"].Successful != 2 || second["x"].Failed != 0 {
		t.Errorf("Second run: expected existing files to count as successful, got %+v", second["x"])
	}
	if requests.Load() != afterFirst {
		t.Errorf("Second run issued %d extra requests, expected 0", requests.Load()-afterFirst)
	}
}

func TestDownloadAll_ForceRedownloads(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte("<html><body><main>Fresh text</main></body></html>"))
	}))
	defer server.Close()

	root := t.TempDir()
	cat := catalog.Catalog{
		"x": {
			"floor": catalog.Category{
				URLs: map[string]string{"one.txt": server.URL + "/one"},
			},
		},
	}

	newTestDownloader(t, root, false).DownloadAll(context.Background(), cat)
	newTestDownloader(t, root, true).DownloadAll(context.Background(), cat)

	if requests.Load() != 2 {
		t.Errorf("Expected force run to re-fetch, got %d total requests", requests.Load())
	}
}
