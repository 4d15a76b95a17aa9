package domain

import "strconv"

// Artwork is a single record from the artwork API.
// Records are immutable once fetched.
type Artwork struct {
	ID                  int    `json:"id"`
	Title               string `json:"title"`
	ArtistDisplay       string `json:"artist_display"`
	DateDisplay         string `json:"date_display"`
	MainReferenceNumber string `json:"main_reference_number"`
	Dimensions          string `json:"dimensions"`
	ImageID             string `json:"image_id"` // empty when the work has no image

	// Secondary metadata shown on the detail page when present
	Description      string `json:"description"` // plain text
	MediumDisplay    string `json:"medium_display"`
	PlaceOfOrigin    string `json:"place_of_origin"`
	ArtworkType      string `json:"artwork_type"`
	CreditLine       string `json:"credit_line"`
	ThumbnailAltText string `json:"thumbnail_alt_text"`
}

// GetID returns the identifier as a string for display and logging
func (a Artwork) GetID() string {
	return strconv.Itoa(a.ID)
}

// GetTitle returns the display title, falling back when the API has none
func (a Artwork) GetTitle() string {
	if a.Title == "" {
		return "Untitled"
	}
	return a.Title
}

// HasImage reports whether an image can be built for this artwork
func (a Artwork) HasImage() bool {
	return a.ImageID != ""
}

// ArtworkPage is one page of listing or search results, fully hydrated.
type ArtworkPage struct {
	Artworks    []Artwork
	TotalPages  int
	CurrentPage int
	Total       int
}

// PageRef is a page of search hits. Search results only carry identifiers
// and a few fields, so they need hydrating before display.
type PageRef struct {
	IDs         []int
	TotalPages  int
	CurrentPage int
	Total       int
}
