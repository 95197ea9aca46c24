// Package snapshots provides the sources a catalog snapshot blob can be read from
package snapshots

//go:generate mockgen -destination=mock/mock_repository.go -package=snapshotsmock github.com/KirkDiggler/sim-catalog/internal/repositories/snapshots Repository

import (
	"context"

	"github.com/KirkDiggler/sim-catalog/internal/snapshot"
)

// DefaultName is the base name of the snapshot when a source points at a
// directory rather than a file
const DefaultName = "db"

// Repository fetches raw snapshot bytes. It does not decode them.
type Repository interface {
	// Fetch returns the snapshot payload
	// Returns errors.NotFound if the snapshot does not exist at the source
	// Returns errors.Unavailable if the source could not be reached
	// Returns errors.Internal for unexpected failures
	Fetch(ctx context.Context, input *FetchInput) (*FetchOutput, error)
}

// FetchInput defines the input for fetching a snapshot
type FetchInput struct {
	// Encoding is the preferred encoding. Sources that point at a directory
	// use it to pick db.json or db.bin. Defaults to JSON.
	Encoding snapshot.Encoding
}

// FetchOutput defines the output of a snapshot fetch
type FetchOutput struct {
	Data []byte
	// Encoding is what the payload is actually encoded as
	Encoding snapshot.Encoding
	// Source describes where the bytes came from, for logs
	Source string
	// Cached is true when the bytes were served from a cache
	Cached bool
}

func preferredEncoding(input *FetchInput) snapshot.Encoding {
	if input == nil || input.Encoding == "" {
		return snapshot.EncodingJSON
	}
	return input.Encoding
}
