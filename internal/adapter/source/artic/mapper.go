package artic

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/artic/internal/domain"
)

// MapArtwork converts an API record to a domain artwork
func MapArtwork(dto ArtworkDTO) domain.Artwork {
	art := domain.Artwork{
		ID:                  dto.ID,
		Title:               deref(dto.Title),
		ArtistDisplay:       deref(dto.ArtistDisplay),
		DateDisplay:         deref(dto.DateDisplay),
		MainReferenceNumber: deref(dto.MainReferenceNumber),
		Dimensions:          deref(dto.Dimensions),
		ImageID:             deref(dto.ImageID),
		Description:         HTMLToText(deref(dto.Description)),
		MediumDisplay:       deref(dto.MediumDisplay),
		PlaceOfOrigin:       deref(dto.PlaceOfOrigin),
		ArtworkType:         deref(dto.ArtworkTypeTitle),
		CreditLine:          deref(dto.CreditLine),
	}
	if dto.Thumbnail != nil {
		art.ThumbnailAltText = dto.Thumbnail.AltText
	}
	return art
}

// MapArtworks converts a slice of API records
func MapArtworks(dtos []ArtworkDTO) []domain.Artwork {
	arts := make([]domain.Artwork, 0, len(dtos))
	for _, dto := range dtos {
		arts = append(arts, MapArtwork(dto))
	}
	return arts
}

// HTMLToText flattens the HTML fragments the API uses for descriptions.
// Paragraphs become blank-line separated blocks.
func HTMLToText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	var blocks []string
	paragraphs := doc.Find("p")
	if paragraphs.Length() == 0 {
		if text := collapseSpace(doc.Text()); text != "" {
			blocks = append(blocks, text)
		}
	} else {
		paragraphs.Each(func(_ int, s *goquery.Selection) {
			if text := collapseSpace(s.Text()); text != "" {
				blocks = append(blocks, text)
			}
		})
	}

	return strings.Join(blocks, "\n\n")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
