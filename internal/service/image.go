package service

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/artic/internal/adapter/source/artic"
	"github.com/mmcdole/artic/internal/domain"
)

// launcher abstracts image viewer launching (consumer-defined interface)
type launcher interface {
	Launch(url string) error
}

// ImageService builds image URLs and opens them in a viewer
type ImageService struct {
	launcher launcher
	iiifURL  string
	logger   *slog.Logger
}

// NewImageService creates a new image service
func NewImageService(launcher launcher, iiifURL string, logger *slog.Logger) *ImageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageService{
		launcher: launcher,
		iiifURL:  iiifURL,
		logger:   logger,
	}
}

// URL returns the image URL for an artwork, or "" when it has no image
func (s *ImageService) URL(art domain.Artwork, size artic.ImageSize) string {
	return artic.ImageURL(s.iiifURL, art.ImageID, size)
}

// Open launches the viewer for an artwork's image
func (s *ImageService) Open(art domain.Artwork, size artic.ImageSize) error {
	url := s.URL(art, size)
	if url == "" {
		return fmt.Errorf("artwork %d has no image", art.ID)
	}

	s.logger.Info("opening image", "title", art.Title, "artworkID", art.ID, "url", url)

	return s.launcher.Launch(url)
}
