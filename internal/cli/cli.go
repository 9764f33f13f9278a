package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/denverhappyhour/pipeline/internal/crawler"
	"github.com/denverhappyhour/pipeline/internal/discovery"
	"github.com/denverhappyhour/pipeline/internal/extract"
	"github.com/denverhappyhour/pipeline/internal/filter"
	"github.com/denverhappyhour/pipeline/internal/storage"
	"github.com/denverhappyhour/pipeline/internal/venue"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDataDir string
	flagVerbose bool

	flagNeighborhood string
	flagDay          string
	flagName         string
	flagFormat       string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "happyhour",
		Short: "Denver happy hour data pipeline",
		Long: `A three-stage pipeline for Denver happy hour data.
discover finds venues, crawl gathers their website text, and extract
derives structured happy hour records. Each stage reads the previous
stage's output from the data directory.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "data", "Data directory for pipeline artifacts")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newDiscoverCmd(), newCrawlCmd(), newExtractCmd(), newRunCmd(), newListCmd())
	return cmd
}

func newDiscoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discover",
		Short: "Find venues in the target neighborhoods",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.New(flagDataDir)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}
			return discoverVenues(cmd.Context(), store, discovery.NewBrowser())
		},
	}
}

func newCrawlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "crawl",
		Short: "Gather website text for every discovered venue",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.New(flagDataDir)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}
			venues, err := store.LoadVenues()
			if err != nil {
				return withStageGuidance(err, "discover")
			}
			return crawlVenues(store, venues)
		},
	}
}

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "Derive happy hour records from crawled text",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.New(flagDataDir)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}
			venues, err := store.LoadVenues()
			if err != nil {
				return withStageGuidance(err, "discover")
			}
			if !store.HasPages() {
				return fmt.Errorf("no crawled pages at %s: run \"happyhour crawl\" first", store.PagesDir())
			}
			return extractVenues(store, venues)
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run discover, crawl, and extract in order",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.New(flagDataDir)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}
			if err := discoverVenues(cmd.Context(), store, discovery.NewBrowser()); err != nil {
				return err
			}
			venues, err := store.LoadVenues()
			if err != nil {
				return err
			}
			if err := crawlVenues(store, venues); err != nil {
				return err
			}
			return extractVenues(store, venues)
		},
	}
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Query the final happy hour records",
		RunE: func(cmd *cobra.Command, args []string) error {
			format := OutputFormat(flagFormat)
			if format != FormatText && format != FormatJSON {
				return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
			}

			store, err := storage.New(flagDataDir)
			if err != nil {
				return fmt.Errorf("initializing storage: %w", err)
			}
			results, err := store.LoadResults()
			if err != nil {
				return withStageGuidance(err, "extract")
			}

			f := &filter.Filter{
				Neighborhood: flagNeighborhood,
				Day:          flagDay,
				Name:         flagName,
			}
			return WriteOutput(os.Stdout, f.Apply(results), format)
		},
	}

	cmd.Flags().StringVar(&flagNeighborhood, "neighborhood", "", "Neighborhood to match exactly, or 'all'")
	cmd.Flags().StringVar(&flagDay, "day", "", "Weekday the happy hour must include, or 'all'")
	cmd.Flags().StringVar(&flagName, "name", "", "Substring of the venue name, case-insensitive")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	return cmd
}

// discoverVenues runs the discovery stage and writes the venue list
func discoverVenues(ctx context.Context, store *storage.Storage, src discovery.Source) error {
	venues := discovery.Venues(ctx, src)
	if err := store.SaveVenues(venues); err != nil {
		return fmt.Errorf("saving venue list: %w", err)
	}
	log.Info("venue list written", "venues", len(venues), "path", store.VenuesPath())
	return nil
}

// crawlVenues captures website text for every venue. A crawl failure never
// aborts the remaining venues, and a final pass guarantees each venue has a
// capture file, sentinel included.
func crawlVenues(store *storage.Storage, venues []*venue.Venue) error {
	c := crawler.New()

	var sp *spinner.Spinner
	if !flagVerbose {
		sp = spinner.New(spinner.CharSets[9], 100*time.Millisecond)
		sp.Start()
		defer sp.Stop()
	}

	for i, v := range venues {
		if sp != nil {
			sp.Suffix = fmt.Sprintf(" crawling %s (%d/%d)", v.Slug, i+1, len(venues))
		}
		log.Debug("crawling venue", "venue", v.Slug, "website", v.Website)
		if err := store.SaveCapture(v.Slug, c.Capture(v)); err != nil {
			log.Error("saving capture failed", "venue", v.Slug, "error", err)
		}
	}

	for _, v := range venues {
		if store.HasCapture(v.Slug) {
			continue
		}
		if err := store.SaveCapture(v.Slug, crawler.Sentinel(v, "capture was not written")); err != nil {
			return fmt.Errorf("writing sentinel capture for %s: %w", v.Slug, err)
		}
	}

	log.Info("captures written", "venues", len(venues), "dir", store.PagesDir())
	return nil
}

// extractVenues derives one record per venue and writes the final artifact
func extractVenues(store *storage.Storage, venues []*venue.Venue) error {
	results := extract.Results(venues, func(v *venue.Venue) string {
		text, err := store.LoadCapture(v.Slug)
		if err != nil {
			log.Warn("reading capture failed", "venue", v.Slug, "error", err)
			return ""
		}
		return text
	})

	if err := store.SaveResults(results); err != nil {
		return fmt.Errorf("saving records: %w", err)
	}
	log.Info("records written", "venues", len(results), "path", store.ResultsPath())
	return nil
}

// withStageGuidance tells the user which stage produces a missing input
func withStageGuidance(err error, stage string) error {
	if errors.Is(err, storage.ErrMissingInput) {
		return fmt.Errorf("%v: run \"happyhour %s\" first", err, stage)
	}
	return err
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
