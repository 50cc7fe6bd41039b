package domain

import "time"

// Speech represents one downloaded speech transcript in the corpus
type Speech struct {
	Politician   string    `bson:"politician"`
	Category     string    `bson:"category"`
	Filename     string    `bson:"filename"`
	SourceURL    string    `bson:"source_url,omitempty"`
	Text         string    `bson:"text"`
	DownloadedAt time.Time `bson:"downloaded_at"`
}

// Key returns the corpus-relative identifier for the speech,
// matching the on-disk layout politician/category/filename
func (s *Speech) Key() string {
	return s.Politician + "/" + s.Category + "/" + s.Filename
}
