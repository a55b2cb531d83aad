// Package catalog holds the published menu the cart adds items from. The
// menu is static for the lifetime of the process; there is no admin surface
// for editing it.
package catalog

import (
	"errors"
	"fmt"

	"github.com/bellavista/ordering/internal/domain"
)

// ErrIncompleteEntry marks a menu entry that lacks a recoverable name or
// price. Adding such an entry to the cart is skipped, not surfaced.
var ErrIncompleteEntry = errors.New("menu entry is missing a name or price")

// ErrUnknownEntry marks a menu item ID that is not on the menu.
var ErrUnknownEntry = errors.New("unknown menu entry")

// Catalog is an in-memory, read-only menu.
type Catalog struct {
	items []domain.MenuItem
	byID  map[string]*domain.MenuItem
}

// New builds a catalog from the given entries, preserving order.
func New(items []domain.MenuItem) *Catalog {
	c := &Catalog{
		items: items,
		byID:  make(map[string]*domain.MenuItem, len(items)),
	}
	for i := range c.items {
		c.byID[c.items[i].ID] = &c.items[i]
	}
	return c
}

// Default returns the Bella Vista menu.
func Default() *Catalog {
	return New(defaultMenu)
}

// Items returns all menu entries in display order.
func (c *Catalog) Items() []domain.MenuItem {
	out := make([]domain.MenuItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemsByCourse returns the menu entries for one course, in display order.
func (c *Catalog) ItemsByCourse(course string) []domain.MenuItem {
	var out []domain.MenuItem
	for _, item := range c.items {
		if item.Course == course {
			out = append(out, item)
		}
	}
	return out
}

// Resolve returns the menu entry for the given ID. It fails with
// ErrUnknownEntry for IDs not on the menu and ErrIncompleteEntry for entries
// the cart cannot extract a name and price from.
func (c *Catalog) Resolve(id string) (*domain.MenuItem, error) {
	item, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("resolve %q: %w", id, ErrUnknownEntry)
	}
	if item.Name == "" || item.Price <= 0 {
		return nil, fmt.Errorf("resolve %q: %w", id, ErrIncompleteEntry)
	}
	return item, nil
}

var defaultMenu = []domain.MenuItem{
	{
		ID:          "bruschetta",
		Course:      domain.CourseAppetizers,
		Name:        "Bruschetta",
		Price:       800,
		Description: "Grilled bread, vine tomatoes, basil, and olive oil",
		PrepTime:    "10 min",
		Rating:      "4.8",
		DietaryTags: []string{"vegetarian"},
		Popular:     true,
	},
	{
		ID:          "calamari-fritti",
		Course:      domain.CourseAppetizers,
		Name:        "Calamari Fritti",
		Price:       1250,
		Description: "Crispy squid with lemon aioli",
		PrepTime:    "15 min",
		Rating:      "4.6",
	},
	{
		ID:          "caprese",
		Course:      domain.CourseAppetizers,
		Name:        "Insalata Caprese",
		Price:       1100,
		Description: "Buffalo mozzarella, heirloom tomatoes, basil",
		PrepTime:    "5 min",
		Rating:      "4.7",
		DietaryTags: []string{"vegetarian", "gluten-free"},
	},
	{
		ID:          "osso-buco",
		Course:      domain.CourseMains,
		Name:        "Osso Buco",
		Price:       3400,
		Description: "Braised veal shank, saffron risotto, gremolata",
		PrepTime:    "35 min",
		Rating:      "4.9",
		ChefsPick:   true,
	},
	{
		ID:          "risotto-funghi",
		Course:      domain.CourseMains,
		Name:        "Risotto ai Funghi",
		Price:       2300,
		Description: "Carnaroli rice, porcini, parmesan",
		PrepTime:    "25 min",
		Rating:      "4.7",
		DietaryTags: []string{"vegetarian", "gluten-free"},
	},
	{
		ID:          "margherita",
		Course:      domain.CourseMains,
		Name:        "Pizza Margherita",
		Price:       1800,
		Description: "San Marzano tomato, fior di latte, basil",
		PrepTime:    "20 min",
		Rating:      "4.8",
		DietaryTags: []string{"vegetarian"},
		Popular:     true,
	},
	{
		ID:          "linguine-vongole",
		Course:      domain.CourseMains,
		Name:        "Linguine alle Vongole",
		Price:       2600,
		Description: "Fresh clams, white wine, garlic, chili",
		PrepTime:    "20 min",
		Rating:      "4.6",
	},
	{
		ID:          "tiramisu",
		Course:      domain.CourseDesserts,
		Name:        "Tiramisu",
		Price:       950,
		Description: "Espresso-soaked savoiardi, mascarpone cream",
		PrepTime:    "5 min",
		Rating:      "4.9",
		DietaryTags: []string{"vegetarian"},
		Popular:     true,
	},
	{
		ID:          "panna-cotta",
		Course:      domain.CourseDesserts,
		Name:        "Panna Cotta",
		Price:       850,
		Description: "Vanilla cream, seasonal berry coulis",
		PrepTime:    "5 min",
		Rating:      "4.5",
		DietaryTags: []string{"vegetarian", "gluten-free"},
	},
	{
		ID:          "espresso",
		Course:      domain.CourseDrinks,
		Name:        "Espresso",
		Price:       350,
		Description: "Double shot, single-origin arabica",
		PrepTime:    "2 min",
		Rating:      "4.7",
		DietaryTags: []string{"vegan"},
	},
	{
		ID:          "chianti",
		Course:      domain.CourseDrinks,
		Name:        "Chianti Classico",
		Price:       1200,
		Description: "Glass, DOCG, Sangiovese",
		Rating:      "4.8",
	},
}
