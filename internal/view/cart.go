// Package view builds the JSON projection of the cart that the storefront
// renders. Rendering is a pure function of cart and totals; rendering the
// same cart twice yields identical output.
package view

import "github.com/bellavista/ordering/internal/domain"

// Badge labels attached to line items.
const (
	BadgeChefsPick = "chef's pick"
	BadgePopular   = "popular"
)

// LineItemView is the display form of one cart line.
type LineItemView struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	UnitPrice   string   `json:"unit_price"`
	Quantity    int      `json:"quantity"`
	LineTotal   string   `json:"line_total"`
	Description string   `json:"description,omitempty"`
	PrepTime    string   `json:"prep_time,omitempty"`
	Rating      string   `json:"rating,omitempty"`
	DietaryTags []string `json:"dietary_tags,omitempty"`
	Badges      []string `json:"badges,omitempty"`
}

// TotalsView is the display form of the cart totals.
type TotalsView struct {
	Subtotal    string `json:"subtotal"`
	Tax         string `json:"tax"`
	DeliveryFee string `json:"delivery_fee"`
	Total       string `json:"total"`
}

// CartView is the full display form of the cart. Totals is nil for an empty
// cart so the storefront shows its empty state instead of zero amounts.
type CartView struct {
	SessionID string         `json:"session_id"`
	Items     []LineItemView `json:"items"`
	ItemCount int            `json:"item_count"`
	Empty     bool           `json:"empty"`
	Totals    *TotalsView    `json:"totals,omitempty"`
}

// RenderCart projects a cart and its totals into display form.
func RenderCart(cart *domain.Cart, totals domain.Totals) CartView {
	v := CartView{
		SessionID: cart.SessionID,
		Items:     make([]LineItemView, 0, len(cart.Items)),
		ItemCount: cart.ItemCount(),
		Empty:     len(cart.Items) == 0,
	}

	for _, item := range cart.Items {
		v.Items = append(v.Items, renderLineItem(item))
	}

	if !v.Empty {
		v.Totals = &TotalsView{
			Subtotal:    domain.FormatCents(totals.Subtotal),
			Tax:         domain.FormatCents(totals.Tax),
			DeliveryFee: domain.FormatCents(totals.DeliveryFee),
			Total:       domain.FormatCents(totals.Total),
		}
	}

	return v
}

func renderLineItem(item domain.LineItem) LineItemView {
	var badges []string
	if item.ChefsPick {
		badges = append(badges, BadgeChefsPick)
	}
	if item.Popular {
		badges = append(badges, BadgePopular)
	}

	return LineItemView{
		ID:          item.ID,
		Name:        item.Name,
		UnitPrice:   domain.FormatCents(item.UnitPrice),
		Quantity:    item.Quantity,
		LineTotal:   domain.FormatCents(item.UnitPrice * int64(item.Quantity)),
		Description: item.Description,
		PrepTime:    item.PrepTime,
		Rating:      item.Rating,
		DietaryTags: item.DietaryTags,
		Badges:      badges,
	}
}
