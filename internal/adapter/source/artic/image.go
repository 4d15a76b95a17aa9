package artic

import (
	"fmt"
	"strings"
)

// DefaultIIIFURL is the image server used when none is configured
const DefaultIIIFURL = "https://www.artic.edu/iiif/2"

// ImageSize is a IIIF size parameter
type ImageSize string

const (
	// HeroImage is the detail page banner (width,height)
	HeroImage ImageSize = "845,325"

	// ThumbnailImage is the list card image opened from the grid (width only)
	ThumbnailImage ImageSize = "800,"
)

// ImageURL builds the IIIF URL for an image. An empty image id yields an
// empty URL so callers can render a missing-image placeholder.
func ImageURL(iiifBase, imageID string, size ImageSize) string {
	if imageID == "" {
		return ""
	}
	if iiifBase == "" {
		iiifBase = DefaultIIIFURL
	}
	return fmt.Sprintf("%s/%s/full/%s/0/default.jpg", strings.TrimRight(iiifBase, "/"), imageID, size)
}
