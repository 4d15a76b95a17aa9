package domain

import "context"

// ArtworkRepository provides access to the remote artwork service
type ArtworkRepository interface {
	// ListArtworks returns one page of the unfiltered collection
	ListArtworks(ctx context.Context, page, limit int) (*ArtworkPage, error)

	// SearchArtworks returns the identifiers matching query on the given page
	SearchArtworks(ctx context.Context, query string, page, limit int) (*PageRef, error)

	// GetArtwork returns a single record. A nil record with a nil error
	// means the service answered without data.
	GetArtwork(ctx context.Context, id int) (*Artwork, error)
}
