package domain

// Category is one of the fixed collection filters
type Category string

const (
	CategoryNone       Category = ""
	CategoryPainting   Category = "Painting"
	CategorySculpture  Category = "Sculpture"
	CategoryPrint      Category = "Print"
	CategoryPhotograph Category = "Photograph"
	CategoryTextile    Category = "Textile"
)

// Categories returns the closed category set in display order
func Categories() []Category {
	return []Category{
		CategoryNone,
		CategoryPainting,
		CategorySculpture,
		CategoryPrint,
		CategoryPhotograph,
		CategoryTextile,
	}
}

// Label returns the menu label for the category
func (c Category) Label() string {
	if c == CategoryNone {
		return "Select Category..."
	}
	return string(c)
}

// IsValid reports whether c belongs to the closed set
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
