package progress

import (
	"strings"

	"github.com/limbo/habitpulse/pkg/entity"
)

type CategoryInfo struct {
	Category entity.Category `json:"category"`
	Label    string          `json:"label"`
	Color    string          `json:"color"`
	Icon     string          `json:"icon"`
}

// Display order of the breakdown; other always goes last.
var categories = []CategoryInfo{
	{entity.CategoryPhysical, "Physical", "#ef4444", "dumbbell"},
	{entity.CategoryNutrition, "Nutrition", "#22c55e", "apple"},
	{entity.CategorySleep, "Sleep", "#6366f1", "moon"},
	{entity.CategoryMental, "Mental", "#a855f7", "brain"},
	{entity.CategoryRelationships, "Relationships", "#ec4899", "heart"},
	{entity.CategoryFinancial, "Financial", "#eab308", "wallet"},
	{entity.CategoryOther, "Other", "#6b7280", "circle"},
}

var categoryAliases = []struct {
	Alias    string
	Category entity.Category
}{
	{"health", entity.CategoryPhysical},
	{"fitness", entity.CategoryPhysical},
	{"exercise", entity.CategoryPhysical},
	{"diet", entity.CategoryNutrition},
	{"food", entity.CategoryNutrition},
	{"eating", entity.CategoryNutrition},
	{"rest", entity.CategorySleep},
	{"mindfulness", entity.CategoryMental},
	{"mental-health", entity.CategoryMental},
	{"mental_health", entity.CategoryMental},
	{"learning", entity.CategoryMental},
	{"social", entity.CategoryRelationships},
	{"family", entity.CategoryRelationships},
	{"finance", entity.CategoryFinancial},
	{"finances", entity.CategoryFinancial},
	{"money", entity.CategoryFinancial},
}

// CoreCategoryCount is the number of categories a user can cover, other excluded.
const CoreCategoryCount = 6

// NormalizeCategory resolves legacy aliases onto the six categories.
func NormalizeCategory(raw string) entity.Category {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range categories {
		if string(c.Category) == value {
			return c.Category
		}
	}
	for _, a := range categoryAliases {
		if a.Alias == value {
			return a.Category
		}
	}
	return entity.CategoryOther
}

func LookupCategory(category entity.Category) CategoryInfo {
	normalized := NormalizeCategory(string(category))
	for _, c := range categories {
		if c.Category == normalized {
			return c
		}
	}
	return categories[len(categories)-1]
}

func Categories() []CategoryInfo {
	return append([]CategoryInfo(nil), categories...)
}
