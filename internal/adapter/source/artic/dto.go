package artic

// Pagination is the paging block returned by list and search endpoints
type Pagination struct {
	Total       int `json:"total"`
	Limit       int `json:"limit"`
	Offset      int `json:"offset"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// ListResponse is the envelope of GET /artworks
type ListResponse struct {
	Pagination *Pagination  `json:"pagination"`
	Data       []ArtworkDTO `json:"data"`
}

// SearchResponse is the envelope of GET /artworks/search.
// Hits only carry the identifier and a few summary fields.
type SearchResponse struct {
	Pagination *Pagination `json:"pagination"`
	Data       []SearchHit `json:"data"`
}

// SearchHit is a partial record returned by the search endpoint
type SearchHit struct {
	ID    *int    `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"_score"`
}

// DetailResponse is the envelope of GET /artworks/{id}
type DetailResponse struct {
	Data *ArtworkDTO `json:"data"`
}

// Thumbnail describes the low-quality preview of an artwork
type Thumbnail struct {
	LQIP    string `json:"lqip"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	AltText string `json:"alt_text"`
}

// ArtworkDTO is a full artwork record as the API returns it.
// Nullable text fields are pointers.
type ArtworkDTO struct {
	ID                  int        `json:"id"`
	Title               *string    `json:"title"`
	ArtistDisplay       *string    `json:"artist_display"`
	DateDisplay         *string    `json:"date_display"`
	MainReferenceNumber *string    `json:"main_reference_number"`
	Dimensions          *string    `json:"dimensions"`
	ImageID             *string    `json:"image_id"`
	Description         *string    `json:"description"`
	MediumDisplay       *string    `json:"medium_display"`
	PlaceOfOrigin       *string    `json:"place_of_origin"`
	ArtworkTypeTitle    *string    `json:"artwork_type_title"`
	CreditLine          *string    `json:"credit_line"`
	Thumbnail           *Thumbnail `json:"thumbnail"`
}
