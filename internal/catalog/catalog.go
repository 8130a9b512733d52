package catalog

import (
	"fmt"
	"sort"

	"github.com/osse101/FichasBot_Go/internal/domain"
)

// Catalog answers read-only lookups over the static item definitions
type Catalog interface {
	GetItemByID(id string) (*domain.Item, error)
	ItemExists(id string) bool
	GetItemsByCategory(category domain.ItemCategory) ([]domain.Item, error)
	All() []domain.Item
}

type catalog struct {
	byID       map[string]domain.Item
	byCategory map[domain.ItemCategory][]domain.Item
	ordered    []domain.Item
}

// New builds an immutable catalog from a validated config
func New(config *Config) Catalog {
	c := &catalog{
		byID:       make(map[string]domain.Item, len(config.Items)),
		byCategory: make(map[domain.ItemCategory][]domain.Item),
		ordered:    make([]domain.Item, 0, len(config.Items)),
	}

	for _, item := range config.Items {
		c.byID[item.ID] = item
		c.byCategory[item.Category] = append(c.byCategory[item.Category], item)
		c.ordered = append(c.ordered, item)
	}

	for cat := range c.byCategory {
		items := c.byCategory[cat]
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	}

	return c
}

// LoadDefault builds the catalog from path, or the embedded catalog when path is empty
func LoadDefault(path string) (Catalog, error) {
	l, err := NewLoader()
	if err != nil {
		return nil, err
	}

	var cfg *Config
	if path == "" {
		cfg, err = l.LoadEmbedded()
	} else {
		cfg, err = l.Load(path)
	}
	if err != nil {
		return nil, err
	}

	return New(cfg), nil
}

// GetItemByID returns a copy of the item definition
func (c *catalog) GetItemByID(id string) (*domain.Item, error) {
	item, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return &item, nil
}

func (c *catalog) ItemExists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// GetItemsByCategory returns the category's items ordered by price.
// Unknown categories are an error; known but empty ones return an empty slice.
func (c *catalog) GetItemsByCategory(category domain.ItemCategory) ([]domain.Item, error) {
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, category)
	}
	items := c.byCategory[category]
	out := make([]domain.Item, len(items))
	copy(out, items)
	return out, nil
}

// All returns every item in file order
func (c *catalog) All() []domain.Item {
	out := make([]domain.Item, len(c.ordered))
	copy(out, c.ordered)
	return out
}
