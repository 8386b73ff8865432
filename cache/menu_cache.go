package menu_cache

import (
	"sync"

	"github.com/google/uuid"

	"github.com/apenara/cafe-menu-digital/models"
)

// Remembered entity lists backing the admin panels. Each list is an
// explicit client-side cache of store state: Refresh replaces it from a
// fresh read, Upsert/Remove apply a local mutation after a successful
// write. Nothing else reconciles it, so a concurrent session's writes
// stay invisible until the next Refresh.

// ── Category list ────────────────────────────────────────────────────────────

var (
	catMu      sync.RWMutex
	categories []models.Category
	catLoaded  bool
)

// Categories returns a snapshot of the remembered category list. ok is
// false until the first Refresh.
func Categories() (list []models.Category, ok bool) {
	catMu.RLock()
	defer catMu.RUnlock()
	if !catLoaded {
		return nil, false
	}
	out := make([]models.Category, len(categories))
	copy(out, categories)
	return out, true
}

// CategoryName resolves a category id to its localized name. A dangling
// reference resolves to an empty mapping, never an error.
func CategoryName(id uuid.UUID) models.LocalizedText {
	catMu.RLock()
	defer catMu.RUnlock()
	for i := range categories {
		if categories[i].ID == id {
			return categories[i].Name
		}
	}
	return models.LocalizedText{}
}

func RefreshCategories(list []models.Category) {
	catMu.Lock()
	defer catMu.Unlock()
	categories = make([]models.Category, len(list))
	copy(categories, list)
	catLoaded = true
}

// UpsertCategory updates the remembered entry in place by id, or
// appends when the id is new.
func UpsertCategory(c models.Category) {
	catMu.Lock()
	defer catMu.Unlock()
	for i := range categories {
		if categories[i].ID == c.ID {
			categories[i] = c
			return
		}
	}
	categories = append(categories, c)
}

func RemoveCategory(id uuid.UUID) {
	catMu.Lock()
	defer catMu.Unlock()
	for i := range categories {
		if categories[i].ID == id {
			categories = append(categories[:i], categories[i+1:]...)
			return
		}
	}
}

// ── Product list ─────────────────────────────────────────────────────────────

var (
	prodMu     sync.RWMutex
	products   []models.Product
	prodLoaded bool
)

func Products() (list []models.Product, ok bool) {
	prodMu.RLock()
	defer prodMu.RUnlock()
	if !prodLoaded {
		return nil, false
	}
	out := make([]models.Product, len(products))
	copy(out, products)
	return out, true
}

func RefreshProducts(list []models.Product) {
	prodMu.Lock()
	defer prodMu.Unlock()
	products = make([]models.Product, len(list))
	copy(products, list)
	prodLoaded = true
}

func UpsertProduct(p models.Product) {
	prodMu.Lock()
	defer prodMu.Unlock()
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			return
		}
	}
	products = append(products, p)
}

func RemoveProduct(id uuid.UUID) {
	prodMu.Lock()
	defer prodMu.Unlock()
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return
		}
	}
}

// ── Invalidate everything ────────────────────────────────────────────────────

// Invalidate drops both lists; the next admin list read refreshes from
// the store.
func Invalidate() {
	catMu.Lock()
	categories = nil
	catLoaded = false
	catMu.Unlock()

	prodMu.Lock()
	products = nil
	prodLoaded = false
	prodMu.Unlock()
}
