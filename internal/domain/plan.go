package domain

// PageSize is the fixed number of artworks per page
const PageSize = 10

// FetchPlan is the resolved request for one page of the list view.
// Query is either the search term or the category, never both.
type FetchPlan struct {
	Query string
	Page  int
	Limit int
}

// NewFetchPlan resolves a plan. A non-empty search term wins over the category.
func NewFetchPlan(searchTerm string, category Category, page int) FetchPlan {
	query := searchTerm
	if query == "" {
		query = string(category)
	}
	if page < 1 {
		page = 1
	}
	return FetchPlan{Query: query, Page: page, Limit: PageSize}
}

// IsSearch reports whether the plan goes through the search endpoint
func (p FetchPlan) IsSearch() bool {
	return p.Query != ""
}
