package domain

// Menu courses, in display order.
const (
	CourseAppetizers = "appetizers"
	CourseMains      = "mains"
	CourseDesserts   = "desserts"
	CourseDrinks     = "drinks"
)

// MenuItem is one entry on the published menu. Price is in cents; a zero or
// negative price together with an empty name marks an entry the cart cannot
// extract an item from.
type MenuItem struct {
	ID          string   `json:"id"`
	Course      string   `json:"course"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Description string   `json:"description,omitempty"`
	PrepTime    string   `json:"prep_time,omitempty"`
	Rating      string   `json:"rating,omitempty"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
	ChefsPick   bool     `json:"chefs_pick,omitempty"`
	Popular     bool     `json:"popular,omitempty"`
}

// LineItemFrom builds a cart line item from the menu entry with the given
// quantity. The caller assigns the ID.
func (m *MenuItem) LineItemFrom(id string, quantity int) LineItem {
	return LineItem{
		ID:          id,
		Name:        m.Name,
		UnitPrice:   m.Price,
		Quantity:    quantity,
		Description: m.Description,
		PrepTime:    m.PrepTime,
		Rating:      m.Rating,
		DietaryTags: m.DietaryTags,
		ChefsPick:   m.ChefsPick,
		Popular:     m.Popular,
	}
}
