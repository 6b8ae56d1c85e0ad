package search

import (
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/apperr"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

// Result is one ranked search hit with its taxonomy context.
type Result struct {
	ProductID          uint    `json:"product_id"`
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	Price              float64 `json:"price"`
	Stock              int     `json:"stock"`
	ImageURL           string  `json:"image_url"`
	SubCategoryID      uint    `json:"sub_category_id"`
	SubCategoryName    string  `json:"sub_category_name"`
	CategoryID         uint    `json:"category_id"`
	CategoryName       string  `json:"category_name"`
	Similarity         float64 `json:"similarity,omitempty" gorm:"-"`
}

const (
	// fuzzyMinResults is the product-path result count below which the fuzzy
	// backfill pass runs.
	fuzzyMinResults = 5
	// fuzzyThreshold is the minimum name similarity for a fuzzy candidate.
	fuzzyThreshold = 0.5
	// maxResults caps the combined result set.
	maxResults = 20
)

const resultColumns = `
	p.id AS product_id,
	p.name AS product_name,
	p.description AS product_description,
	p.price,
	p.stock,
	p.image_url,
	sc.id AS sub_category_id,
	sc.name AS sub_category_name,
	c.id AS category_id,
	c.name AS category_name`

// Run classifies keyword and executes the matching query path. Data-access
// failures surface as a backend-unavailable error; an empty result set is a
// value, not an error.
func Run(db *gorm.DB, keyword string) ([]Result, Type, error) {
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return nil, "", apperr.Unavailable("search backend unavailable")
	}
	var subcategories []models.SubCategory
	if err := db.Find(&subcategories).Error; err != nil {
		return nil, "", apperr.Unavailable("search backend unavailable")
	}

	searchType := Classify(keyword, categories, subcategories)

	if searchType == TypeCategory {
		results, err := categoryResults(db, keyword)
		return results, TypeCategory, err
	}

	results, err := productResults(db, keyword)
	if err != nil {
		return nil, TypeProduct, err
	}
	if len(results) < fuzzyMinResults {
		results, err = backfillFuzzy(db, keyword, results)
		if err != nil {
			return nil, TypeProduct, err
		}
	}
	return results, TypeProduct, nil
}

// categoryResults runs the single taxonomy join, matching keyword as a
// case-insensitive substring against category and subcategory names and
// descriptions. Natural join order, no further ranking.
func categoryResults(db *gorm.DB, keyword string) ([]Result, error) {
	pattern := "%" + strings.ToLower(keyword) + "%"

	var results []Result
	err := db.Raw(`
		SELECT`+resultColumns+`
		FROM categories c
		JOIN sub_categories sc ON sc.category_id = c.id
		JOIN products p ON p.sub_category_id = sc.id
		WHERE LOWER(c.name) LIKE ?
		   OR LOWER(c.description) LIKE ?
		   OR LOWER(sc.name) LIKE ?
		   OR LOWER(sc.description) LIKE ?`,
		pattern, pattern, pattern, pattern,
	).Scan(&results).Error
	if err != nil {
		return nil, apperr.Unavailable("search backend unavailable")
	}
	return results, nil
}

// productResults matches keyword against product names, ranked exact match
// first, then prefix, then substring, alphabetically within each tier.
func productResults(db *gorm.DB, keyword string) ([]Result, error) {
	keywordLower := strings.ToLower(keyword)

	var results []Result
	err := db.Raw(`
		SELECT`+resultColumns+`
		FROM products p
		JOIN sub_categories sc ON p.sub_category_id = sc.id
		JOIN categories c ON sc.category_id = c.id
		WHERE LOWER(p.name) LIKE ?
		ORDER BY
			CASE
				WHEN LOWER(p.name) = ? THEN 1
				WHEN LOWER(p.name) LIKE ? THEN 2
				ELSE 3
			END,
			p.name`,
		"%"+keywordLower+"%", keywordLower, keywordLower+"%",
	).Scan(&results).Error
	if err != nil {
		return nil, apperr.Unavailable("search backend unavailable")
	}
	return results, nil
}

// backfillFuzzy scans the full catalog, keeps products whose name similarity
// to keyword exceeds the threshold and appends the best novel ones until the
// result cap is reached. Never duplicates a product already present.
func backfillFuzzy(db *gorm.DB, keyword string, results []Result) ([]Result, error) {
	var catalog []Result
	err := db.Raw(`
		SELECT` + resultColumns + `
		FROM products p
		JOIN sub_categories sc ON p.sub_category_id = sc.id
		JOIN categories c ON sc.category_id = c.id`,
	).Scan(&catalog).Error
	if err != nil {
		return nil, apperr.Unavailable("search backend unavailable")
	}

	seen := make(map[uint]bool, len(results))
	for _, r := range results {
		seen[r.ProductID] = true
	}

	var candidates []Result
	for _, p := range catalog {
		if sim := Similarity(keyword, p.ProductName); sim > fuzzyThreshold {
			p.Similarity = sim
			candidates = append(candidates, p)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})

	for _, match := range candidates {
		if seen[match.ProductID] {
			continue
		}
		results = append(results, match)
		seen[match.ProductID] = true
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}
