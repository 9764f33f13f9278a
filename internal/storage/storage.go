package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/denverhappyhour/pipeline/internal/extract"
	"github.com/denverhappyhour/pipeline/internal/venue"
)

// ErrMissingInput marks a read whose artifact has not been produced yet.
// Callers check it with errors.Is to print run-the-prerequisite guidance.
var ErrMissingInput = errors.New("input artifact not found")

const (
	venuesFile  = "venues.json"
	resultsFile = "happy_hours.json"
	pagesDir    = "pages"
)

// Storage handles persistence of pipeline artifacts
type Storage struct {
	dataDir string
}

// New creates a new Storage instance rooted at dataDir
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// VenuesPath returns the path of the venue list artifact
func (s *Storage) VenuesPath() string {
	return filepath.Join(s.dataDir, venuesFile)
}

// ResultsPath returns the path of the final records artifact
func (s *Storage) ResultsPath() string {
	return filepath.Join(s.dataDir, resultsFile)
}

// PagesDir returns the directory holding per-venue capture files
func (s *Storage) PagesDir() string {
	return filepath.Join(s.dataDir, pagesDir)
}

// CapturePath returns the capture file path for a venue slug
func (s *Storage) CapturePath(slug string) string {
	return filepath.Join(s.PagesDir(), slug+".txt")
}

// SaveVenues writes the venue list artifact
func (s *Storage) SaveVenues(venues []*venue.Venue) error {
	return s.writeJSON(s.VenuesPath(), venues)
}

// LoadVenues reads the venue list artifact. A missing file wraps
// ErrMissingInput.
func (s *Storage) LoadVenues() ([]*venue.Venue, error) {
	data, err := os.ReadFile(s.VenuesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, s.VenuesPath())
		}
		return nil, fmt.Errorf("reading venue list: %w", err)
	}

	var venues []*venue.Venue
	if err := json.Unmarshal(data, &venues); err != nil {
		return nil, fmt.Errorf("parsing venue list: %w", err)
	}
	return venues, nil
}

// SaveCapture writes one venue's capture text under the pages directory
func (s *Storage) SaveCapture(slug, text string) error {
	if err := os.MkdirAll(s.PagesDir(), 0755); err != nil {
		return fmt.Errorf("creating pages directory: %w", err)
	}
	if err := os.WriteFile(s.CapturePath(slug), []byte(text), 0644); err != nil {
		return fmt.Errorf("writing capture: %w", err)
	}
	return nil
}

// LoadCapture reads one venue's capture text. A missing capture file reads
// as empty text, which the extractor treats as a sentinel.
func (s *Storage) LoadCapture(slug string) (string, error) {
	data, err := os.ReadFile(s.CapturePath(slug))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading capture: %w", err)
	}
	return string(data), nil
}

// HasCapture reports whether a venue's capture file exists
func (s *Storage) HasCapture(slug string) bool {
	_, err := os.Stat(s.CapturePath(slug))
	return err == nil
}

// HasPages reports whether the crawl stage has run at all
func (s *Storage) HasPages() bool {
	info, err := os.Stat(s.PagesDir())
	return err == nil && info.IsDir()
}

// SaveResults writes the final records artifact
func (s *Storage) SaveResults(results []*extract.Result) error {
	return s.writeJSON(s.ResultsPath(), results)
}

// LoadResults reads the final records artifact. A missing file wraps
// ErrMissingInput.
func (s *Storage) LoadResults() ([]*extract.Result, error) {
	data, err := os.ReadFile(s.ResultsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, s.ResultsPath())
		}
		return nil, fmt.Errorf("reading records: %w", err)
	}

	var results []*extract.Result
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parsing records: %w", err)
	}
	return results, nil
}

func (s *Storage) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
