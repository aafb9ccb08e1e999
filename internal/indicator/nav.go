// Package indicator keeps a floating arrow aligned with the active
// navigation label.
package indicator

import "github.com/samber/lo"

// NavItem is one entry of the navigation bar. Display order is slice order.
type NavItem struct {
	Label string
	Route string
}

// DefaultItems is the site's navigation bar.
var DefaultItems = []NavItem{
	{Label: "Home", Route: "/"},
	{Label: "Let's Talk", Route: "/contact"},
}

// Gap is the horizontal space between the arrow and the label text.
const Gap = 20.0

// ForRoute returns the item whose route is exactly route.
func ForRoute(items []NavItem, route string) (NavItem, bool) {
	return lo.Find(items, func(item NavItem) bool {
		return item.Route == route
	})
}

// ForLabel returns the item with the given label.
func ForLabel(items []NavItem, label string) (NavItem, bool) {
	return lo.Find(items, func(item NavItem) bool {
		return item.Label == label
	})
}

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Offset returns the arrow's x offset relative to container so that it sits
// gap pixels before the label text.
func Offset(label, container Rect, gap float64) float64 {
	return label.Left - container.Left - gap
}
