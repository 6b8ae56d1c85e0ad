package search

import (
	"strings"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

// Type tags which query path a search keyword resolves to.
type Type string

const (
	TypeCategory Type = "category"
	TypeProduct  Type = "product"
)

// categoryThreshold is the minimum similarity between a keyword and a
// category/subcategory name or description for the keyword to be treated as a
// taxonomy search.
const categoryThreshold = 0.6

// commonCategoryTerms are domain words that mark a keyword as a taxonomy
// search even when no category matches it directly.
var commonCategoryTerms = []string{
	"electronics",
	"fashion",
	"home",
	"sports",
	"kids",
	"shoes",
	"clothing",
	"accessories",
}

// Classify decides whether keyword targets the category taxonomy or
// individual products. Pure function over pre-fetched snapshots; first match
// wins: exact name equality, then similarity against names and descriptions,
// then the fixed domain vocabulary.
func Classify(keyword string, categories []models.Category, subcategories []models.SubCategory) Type {
	keywordLower := strings.ToLower(keyword)

	for _, cat := range categories {
		if keywordLower == strings.ToLower(cat.Name) {
			return TypeCategory
		}
	}
	for _, sub := range subcategories {
		if keywordLower == strings.ToLower(sub.Name) {
			return TypeCategory
		}
	}

	for _, cat := range categories {
		if Similarity(keyword, cat.Name) >= categoryThreshold ||
			Similarity(keyword, cat.Description) >= categoryThreshold {
			return TypeCategory
		}
	}
	for _, sub := range subcategories {
		if Similarity(keyword, sub.Name) >= categoryThreshold ||
			Similarity(keyword, sub.Description) >= categoryThreshold {
			return TypeCategory
		}
	}

	for _, term := range commonCategoryTerms {
		if strings.Contains(keywordLower, term) {
			return TypeCategory
		}
	}

	return TypeProduct
}
