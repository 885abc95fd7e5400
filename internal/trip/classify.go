package trip

import (
	"encoding/json"
	"fmt"
)

// Category is the closed set of visual/semantic buckets used for marker
// coloring and iconography. CategoryActivity is the generic fallback and the
// zero value.
type Category int

const (
	CategoryActivity Category = iota
	CategoryFamily
	CategoryIndoor
	CategoryOutdoor
	CategoryFood
	CategoryCultural
	CategoryShopping
)

func (c Category) String() string {
	switch c {
	case CategoryFamily:
		return "Family"
	case CategoryIndoor:
		return "Indoor"
	case CategoryOutdoor:
		return "Outdoor"
	case CategoryFood:
		return "Food"
	case CategoryCultural:
		return "Cultural"
	case CategoryShopping:
		return "Shopping"
	default:
		return "Activity"
	}
}

// MarshalJSON emits the category as its display name.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decoding category: %w", err)
	}
	switch s {
	case "Family":
		*c = CategoryFamily
	case "Indoor":
		*c = CategoryIndoor
	case "Outdoor":
		*c = CategoryOutdoor
	case "Food":
		*c = CategoryFood
	case "Cultural":
		*c = CategoryCultural
	case "Shopping":
		*c = CategoryShopping
	default:
		*c = CategoryActivity
	}
	return nil
}

// Classify assigns an activity to exactly one category. First match wins:
// a meal is always Food no matter what it is tagged with.
func Classify(a Activity) Category {
	if a.Type == "meal" {
		return CategoryFood
	}
	if hasTag(a.Tags, "indoor") {
		return CategoryIndoor
	}
	if hasTag(a.Tags, "outdoor") {
		return CategoryOutdoor
	}
	if hasTag(a.Tags, "family") {
		return CategoryFamily
	}
	return CategoryActivity
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// CategoryStyle is the fixed visual token set for a category: a CSS swatch
// class for list badges, a hex color for map markers, and an icon.
type CategoryStyle struct {
	Swatch   string `json:"swatch"`
	MapColor string `json:"mapColor"`
	Icon     string `json:"icon"`
}

// StyleOf returns the stable style tokens for a category. Categories outside
// the known set map to a neutral gray token.
func StyleOf(c Category) CategoryStyle {
	switch c {
	case CategoryFamily:
		return CategoryStyle{Swatch: "bg-blue-500", MapColor: "#3b82f6", Icon: "👨‍👩‍👧‍👦"}
	case CategoryIndoor:
		return CategoryStyle{Swatch: "bg-purple-500", MapColor: "#a855f7", Icon: "🏛️"}
	case CategoryOutdoor:
		return CategoryStyle{Swatch: "bg-green-500", MapColor: "#22c55e", Icon: "🏞️"}
	case CategoryFood:
		return CategoryStyle{Swatch: "bg-orange-500", MapColor: "#f97316", Icon: "🍽️"}
	case CategoryCultural:
		return CategoryStyle{Swatch: "bg-pink-500", MapColor: "#ec4899", Icon: "🎭"}
	case CategoryShopping:
		return CategoryStyle{Swatch: "bg-yellow-500", MapColor: "#eab308", Icon: "🛍️"}
	default:
		return CategoryStyle{Swatch: "bg-gray-500", MapColor: "#6b7280", Icon: "📍"}
	}
}
