package repository

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"crafts-server/models"
)

// Sort orders accepted by SortProducts, matching the shop page's
// sort-by control.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// nameCollator compares product names case-insensitively with locale
// rules rather than byte order.
var nameCollator = collate.New(language.English, collate.Loose)

// SortProducts returns a sorted copy; the source slice is never
// mutated. Unknown keys return the copy unsorted.
func SortProducts(products []models.Product, key string) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch key {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return nameCollator.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return nameCollator.CompareString(sorted[i].Name, sorted[j].Name) > 0
		})
	}
	return sorted
}

// FilterByCategory keeps products in the given category. "all" or an
// empty category keeps everything.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "" || category == "all" {
		return append([]models.Product(nil), products...)
	}
	var filtered []models.Product
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SearchProducts keeps products whose name contains term,
// case-insensitively. An empty term keeps everything.
func SearchProducts(products []models.Product, term string) []models.Product {
	if term == "" {
		return append([]models.Product(nil), products...)
	}
	term = strings.ToLower(term)
	var matched []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterByTag keeps posts carrying the given tag. "all" or an empty tag
// keeps everything.
func FilterByTag(posts []models.BlogPost, tag string) []models.BlogPost {
	if tag == "" || tag == "all" {
		return append([]models.BlogPost(nil), posts...)
	}
	var filtered []models.BlogPost
	for _, p := range posts {
		for _, t := range p.Tags {
			if t == tag {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// SearchPosts keeps posts whose title or content contains term,
// case-insensitively.
func SearchPosts(posts []models.BlogPost, term string) []models.BlogPost {
	if term == "" {
		return append([]models.BlogPost(nil), posts...)
	}
	term = strings.ToLower(term)
	var matched []models.BlogPost
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), term) ||
			strings.Contains(strings.ToLower(p.Content), term) {
			matched = append(matched, p)
		}
	}
	return matched
}
