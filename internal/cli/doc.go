// Package cli wires the pipeline stages into the happyhour command.
//
// Each stage is its own subcommand (discover, crawl, extract) reading the
// previous stage's artifact from the data directory; run executes all three
// in order, and list queries the final records with the same filters the
// frontend offers. A stage whose input artifact is missing exits non-zero
// with guidance naming the prerequisite stage.
package cli
