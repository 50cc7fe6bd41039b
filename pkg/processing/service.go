// Package processing walks the raw speech tree and writes the cleaned
// corpus, one processed file per raw file.
package processing

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"speech-corpus/pkg/tokens"
)

// Config holds the cleaning run's configuration.
type Config struct {
	// RawRoot is the raw corpus root (politician/category/file layout).
	RawRoot string
	// ProcessedRoot receives the cleaned files under the same layout.
	ProcessedRoot string
	// Processor supplies the cleaning pipeline.
	Processor *tokens.Processor
	// SaveTokens additionally writes the processed token list as JSON
	// next to the cleaned text.
	SaveTokens bool
}

// Service runs the cleaning stage over a downloaded corpus.
type Service struct {
	cfg Config
}

// NewService creates the cleaning service.
func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// ProcessAll cleans every .txt file under the raw root and writes
// <processed_root>/<politician>/<category>/<stem>_processed.txt. Re-running
// with identical configuration is idempotent: output is a deterministic
// function of raw content and configuration. Returns the number of files
// processed.
func (s *Service) ProcessAll() (int, error) {
	var paths []string
	err := filepath.WalkDir(s.cfg.RawRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".txt") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan raw corpus %s: %w", s.cfg.RawRoot, err)
	}

	if len(paths) == 0 {
		log.Printf("No .txt files found in %s", s.cfg.RawRoot)
		return 0, nil
	}

	log.Printf("Found %d speeches to process", len(paths))

	processed := 0
	for _, path := range paths {
		if err := s.processFile(path); err != nil {
			log.Printf("Error processing %s: %v", path, err)
			continue
		}
		processed++
	}

	log.Printf("Successfully processed and saved %d speeches", processed)
	return processed, nil
}

// processFile cleans one raw speech file. The politician and category are
// derived from the file's position in the tree (grandparent and parent
// directory names).
func (s *Service) processFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	category := filepath.Base(filepath.Dir(path))
	politician := filepath.Base(filepath.Dir(filepath.Dir(path)))

	outputDir := filepath.Join(s.cfg.ProcessedRoot, politician, category)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", outputDir, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), ".txt")
	cleaned := s.cfg.Processor.Clean(string(raw))

	outputPath := filepath.Join(outputDir, stem+"_processed.txt")
	if err := os.WriteFile(outputPath, []byte(cleaned), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}

	if s.cfg.SaveTokens {
		if err := s.writeTokens(path, outputDir, stem, string(raw)); err != nil {
			return err
		}
	}

	return nil
}

// writeTokens runs the full token pipeline and saves the result as JSON.
func (s *Service) writeTokens(path, outputDir, stem, raw string) error {
	toks, err := s.cfg.Processor.ProcessText(raw)
	if err != nil {
		return fmt.Errorf("tokenize %s: %w", path, err)
	}

	data, err := json.Marshal(toks)
	if err != nil {
		return fmt.Errorf("encode tokens for %s: %w", path, err)
	}

	tokenPath := filepath.Join(outputDir, stem+"_processed.json")
	if err := os.WriteFile(tokenPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tokenPath, err)
	}
	return nil
}
