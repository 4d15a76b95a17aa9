package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmcdole/artic/internal/domain"
	"go.uber.org/ratelimit"
	"golang.org/x/sync/errgroup"
)

// ArtworkService executes fetch plans against the artwork repository
type ArtworkService struct {
	repo    domain.ArtworkRepository
	limiter ratelimit.Limiter
	logger  *slog.Logger
}

// NewArtworkService creates a new artwork service. requestsPerSecond caps the
// rate of hydrate requests; zero or less means unlimited.
func NewArtworkService(repo domain.ArtworkRepository, requestsPerSecond int, logger *slog.Logger) *ArtworkService {
	if logger == nil {
		logger = slog.Default()
	}
	limiter := ratelimit.NewUnlimited()
	if requestsPerSecond > 0 {
		limiter = ratelimit.New(requestsPerSecond)
	}
	return &ArtworkService{
		repo:    repo,
		limiter: limiter,
		logger:  logger,
	}
}

// FetchPage executes a plan and returns a page of full records.
// Search plans are hydrated; if any record fails the whole page fails.
func (s *ArtworkService) FetchPage(ctx context.Context, fetchID string, plan domain.FetchPlan) (*domain.ArtworkPage, error) {
	logger := s.logger.With("fetchID", fetchID, "query", plan.Query, "page", plan.Page)

	if !plan.IsSearch() {
		page, err := s.repo.ListArtworks(ctx, plan.Page, plan.Limit)
		if err != nil {
			logger.Error("failed to list artworks", "error", err)
			return nil, err
		}
		logger.Debug("listed artworks", "count", len(page.Artworks), "totalPages", page.TotalPages)
		return page, nil
	}

	ref, err := s.repo.SearchArtworks(ctx, plan.Query, plan.Page, plan.Limit)
	if err != nil {
		logger.Error("failed to search artworks", "error", err)
		return nil, err
	}
	logger.Debug("search returned", "count", len(ref.IDs), "totalPages", ref.TotalPages)

	artworks, err := s.hydrate(ctx, ref.IDs)
	if err != nil {
		logger.Error("failed to hydrate search results", "error", err)
		return nil, err
	}

	return &domain.ArtworkPage{
		Artworks:    artworks,
		TotalPages:  ref.TotalPages,
		CurrentPage: ref.CurrentPage,
		Total:       ref.Total,
	}, nil
}

// hydrate fetches the full record for every id concurrently.
// Results keep the order of ids.
func (s *ArtworkService) hydrate(ctx context.Context, ids []int) ([]domain.Artwork, error) {
	artworks := make([]domain.Artwork, len(ids))
	if len(ids) == 0 {
		return artworks, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			s.limiter.Take()
			if err := gctx.Err(); err != nil {
				return err
			}

			art, err := s.repo.GetArtwork(gctx, id)
			if err != nil {
				return fmt.Errorf("hydrating artwork %d: %w", id, err)
			}
			if art == nil {
				return fmt.Errorf("hydrating artwork %d: %w", id, domain.ErrNotFound)
			}
			artworks[i] = *art
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artworks, nil
}

// FetchArtwork returns a single record. A nil record means the service
// answered without data.
func (s *ArtworkService) FetchArtwork(ctx context.Context, id int) (*domain.Artwork, error) {
	art, err := s.repo.GetArtwork(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch artwork", "error", err, "artworkID", id)
		return nil, err
	}
	if art == nil {
		s.logger.Warn("artwork has no data", "artworkID", id)
		return nil, nil
	}
	s.logger.Debug("fetched artwork", "artworkID", id, "title", art.Title)
	return art, nil
}
