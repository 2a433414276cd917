package services

import "github.com/Bamimore2000/borokini/pkg/cache"

// Cache keys for the public catalog pages. Repositories populate them on
// read; admin mutations below delete every key whose page renders the
// mutated entity.
const (
	cacheKeyProductsAll         = "borokini:products:all"
	cacheKeyProductsCategory    = "borokini:products:category:"
	cacheKeyCollectionsAll      = "borokini:collections:all"
	cacheKeyEditorialsPublished = "borokini:editorials:published"
)

// productCategories is the fixed category set the storefront navigates by.
var productCategories = []string{"necklaces", "rings", "earrings"}

func invalidateProducts() {
	keys := []string{cacheKeyProductsAll}
	for _, c := range productCategories {
		keys = append(keys, cacheKeyProductsCategory+c)
	}
	cache.Del(keys...)
}

func invalidateCollections() {
	// Collection pages also list their products.
	cache.Del(cacheKeyCollectionsAll)
	invalidateProducts()
}

func invalidateEditorials() {
	cache.Del(cacheKeyEditorialsPublished)
}
