package gallery

import (
	"context"
	"time"

	"github.com/mmcdole/artic/internal/domain"
)

// PageFetcher executes a fetch plan (implemented by service.ArtworkService)
type PageFetcher interface {
	FetchPage(ctx context.Context, fetchID string, plan domain.FetchPlan) (*domain.ArtworkPage, error)
}

// ArtworkFetcher loads one record (implemented by service.ArtworkService)
type ArtworkFetcher interface {
	FetchArtwork(ctx context.Context, id int) (*domain.Artwork, error)
}

// requestContext bounds a request by timeout; zero means no deadline
func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}
