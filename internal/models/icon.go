package models

import "strings"

// knownIcons is the closed set of symbolic icon names the presentation
// layer can render. Anything outside this set must be raw SVG markup;
// unknown names are rejected at the API boundary instead of silently
// falling back to a placeholder.
var knownIcons = map[string]struct{}{
	"Activity":        {},
	"ArrowLeftRight":  {},
	"BarChart3":       {},
	"Bitcoin":         {},
	"Briefcase":       {},
	"Car":             {},
	"DollarSign":      {},
	"Fuel":            {},
	"Gift":            {},
	"GraduationCap":   {},
	"HandCoins":       {},
	"Heart":           {},
	"HelpCircle":      {},
	"Home":            {},
	"Landmark":        {},
	"LayoutDashboard": {},
	"Phone":           {},
	"PiggyBank":       {},
	"Plane":           {},
	"Settings":        {},
	"Shirt":           {},
	"ShoppingCart":    {},
	"Tags":            {},
	"Target":          {},
	"TrendingDown":    {},
	"TrendingUp":      {},
	"Tv":              {},
	"Utensils":        {},
	"Wifi":            {},
}

// IsRawIconMarkup reports whether the icon value is inline SVG markup
// rather than a symbolic name.
func IsRawIconMarkup(icon string) bool {
	return strings.HasPrefix(icon, "<svg")
}

// ValidIcon reports whether icon is a known symbolic name or raw markup.
func ValidIcon(icon string) bool {
	if IsRawIconMarkup(icon) {
		return true
	}
	_, ok := knownIcons[icon]
	return ok
}
