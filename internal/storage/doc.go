// Package storage provides file persistence for the pipeline's artifacts.
//
// Each stage reads its predecessor's artifact and writes its own: the venue
// list and the final records are JSON files, and each venue's raw capture
// is a plain text file named by slug under the pages directory. A missing
// input artifact surfaces as ErrMissingInput so the CLI can tell the user
// which stage to run first.
package storage
