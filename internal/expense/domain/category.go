package domain

// Category is the closed set of expense categories. It is not
// user-extensible; anything unrecognized is rejected at the boundary rather
// than stored as a free-form string.
type Category string

const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryHousing        Category = "housing"
	CategoryUtilities      Category = "utilities"
	CategoryHealthcare     Category = "healthcare"
	CategoryEntertainment  Category = "entertainment"
	CategoryEducation      Category = "education"
	CategoryShopping       Category = "shopping"
	CategorySavings        Category = "savings"
	CategoryOthers         Category = "others"
)

// Categories lists every valid category, in a stable order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryHousing,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryEntertainment,
		CategoryEducation,
		CategoryShopping,
		CategorySavings,
		CategoryOthers,
	}
}

// ParseCategory maps s onto the closed category set. An empty string maps to
// CategoryOthers, matching the create-time default.
func ParseCategory(s string) (Category, bool) {
	if s == "" {
		return CategoryOthers, true
	}
	switch c := Category(s); c {
	case CategoryFood, CategoryTransportation, CategoryHousing,
		CategoryUtilities, CategoryHealthcare, CategoryEntertainment,
		CategoryEducation, CategoryShopping, CategorySavings, CategoryOthers:
		return c, true
	default:
		return "", false
	}
}

func (c Category) String() string { return string(c) }
