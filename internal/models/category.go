package models

// Category represents a transaction category. Predefined categories are
// compiled in and immutable; user categories live in the store and are
// persisted with snapshots.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Icon         string `json:"icon"`
	Color        string `json:"color,omitempty"`
	IsPredefined bool   `json:"is_predefined"`
}

// FallbackCategoryID is the category that transactions are reassigned to
// when the category they reference is deleted.
const FallbackCategoryID = "cat_other"

// predefinedCategories is the built-in set shipped with the application.
// It is never persisted, so the list stays authoritative across upgrades.
var predefinedCategories = []Category{
	{ID: "cat_groceries", Name: "Groceries", Icon: "ShoppingCart", Color: "#E040FB", IsPredefined: true},
	{ID: "cat_utilities", Name: "Utilities", Icon: "Home", Color: "#7E57C2", IsPredefined: true},
	{ID: "cat_rent", Name: "Rent/Mortgage", Icon: "Landmark", Color: "#BA68C8", IsPredefined: true},
	{ID: "cat_transport", Name: "Transportation", Icon: "Car", Color: "#9575CD", IsPredefined: true},
	{ID: "cat_dining", Name: "Dining Out", Icon: "Utensils", Color: "#F06292", IsPredefined: true},
	{ID: "cat_entertainment", Name: "Entertainment", Icon: "Tv", Color: "#CE93D8", IsPredefined: true},
	{ID: "cat_health", Name: "Healthcare", Icon: "Heart", Color: "#F48FB1", IsPredefined: true},
	{ID: "cat_education", Name: "Education", Icon: "GraduationCap", Color: "#AB47BC", IsPredefined: true},
	{ID: "cat_salary", Name: "Salary", Icon: "Briefcase", Color: "#64B5F6", IsPredefined: true},
	{ID: "cat_gifts", Name: "Gifts", Icon: "Gift", Color: "#D1C4E9", IsPredefined: true},
	{ID: "cat_travel", Name: "Travel", Icon: "Plane", Color: "#9FA8DA", IsPredefined: true},
	{ID: "cat_fuel", Name: "Fuel", Icon: "Fuel", Color: "#CE93D8", IsPredefined: true},
	{ID: "cat_clothing", Name: "Clothing", Icon: "Shirt", Color: "#F06292", IsPredefined: true},
	{ID: "cat_phone", Name: "Phone Bill", Icon: "Phone", Color: "#BA68C8", IsPredefined: true},
	{ID: "cat_internet", Name: "Internet Bill", Icon: "Wifi", Color: "#9575CD", IsPredefined: true},
	{ID: "cat_investments", Name: "Investments", Icon: "PiggyBank", Color: "#4DB6AC", IsPredefined: true},
	{ID: "cat_freelance", Name: "Freelance Income", Icon: "HandCoins", Color: "#81C784", IsPredefined: true},
	{ID: "cat_crypto", Name: "Crypto", Icon: "Bitcoin", Color: "#FFF176", IsPredefined: true},
	{ID: FallbackCategoryID, Name: "Other", Icon: "Tags", Color: "#BDBDBD", IsPredefined: true},
}

// PredefinedCategories returns a copy of the built-in category set.
func PredefinedCategories() []Category {
	out := make([]Category, len(predefinedCategories))
	copy(out, predefinedCategories)
	return out
}

// IsPredefinedID reports whether id belongs to a built-in category.
func IsPredefinedID(id string) bool {
	for _, c := range predefinedCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}
