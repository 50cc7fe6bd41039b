package main

import (
	"flag"
	"log"

	"speech-corpus/pkg/cleaner"
	"speech-corpus/pkg/processing"
	"speech-corpus/pkg/tokens"
)

func main() {
	var (
		rawRoot       = flag.String("raw", "data/raw", "raw corpus root directory")
		processedRoot = flag.String("processed", "data/processed", "processed corpus root directory")

		expandContractions = flag.Bool("expand-contractions", false, "expand contractions before other steps")
		removeURLs         = flag.Bool("remove-urls", true, "strip http/https URLs")
		removeEmails       = flag.Bool("remove-emails", true, "strip email addresses")
		removeSpecial      = flag.Bool("remove-special-chars", false, "keep only alphanumeric and whitespace")
		removeNumbers      = flag.Bool("remove-numbers", false, "strip digit runs")
		lowercase          = flag.Bool("lowercase", true, "fold to lowercase")
		removePunct        = flag.Bool("remove-punctuation", true, "strip punctuation")
		collapseWhitespace = flag.Bool("collapse-whitespace", true, "collapse whitespace runs to single spaces")

		removeStopwords = flag.Bool("remove-stopwords", true, "drop English stopwords from token output")
		minTokenLen     = flag.Int("min-token-length", 0, "drop tokens shorter than this (0 disables)")
		stem            = flag.Bool("stem", false, "apply Snowball stemming to token output")
		lemmatize       = flag.Bool("lemmatize", false, "apply lemmatization to token output")
		saveTokens      = flag.Bool("save-tokens", false, "also write processed tokens as JSON")
	)
	flag.Parse()

	if *stem && *lemmatize {
		log.Fatal("stemming and lemmatization are mutually exclusive; pick one")
	}

	cleanCfg := cleaner.Config{
		ExpandContractions: *expandContractions,
		RemoveURLs:         *removeURLs,
		RemoveEmails:       *removeEmails,
		RemoveSpecialChars: *removeSpecial,
		RemoveNumbers:      *removeNumbers,
		Lowercase:          *lowercase,
		RemovePunctuation:  *removePunct,
		CollapseWhitespace: *collapseWhitespace,
	}
	tokenCfg := tokens.Config{
		RemoveStopwords: *removeStopwords,
		FilterLength:    *minTokenLen > 0,
		MinTokenLength:  *minTokenLen,
		Stemming:        *stem,
		Lemmatization:   *lemmatize,
	}

	processor, err := tokens.NewProcessor(cleanCfg, tokenCfg)
	if err != nil {
		log.Fatalf("Failed to initialize processor: %v", err)
	}

	service := processing.NewService(processing.Config{
		RawRoot:       *rawRoot,
		ProcessedRoot: *processedRoot,
		Processor:     processor,
		SaveTokens:    *saveTokens,
	})

	count, err := service.ProcessAll()
	if err != nil {
		log.Fatalf("Cleaning run failed: %v", err)
	}
	log.Printf("Done: %d speeches processed", count)
}
