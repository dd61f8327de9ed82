// Package menu holds the fixed restaurant menu. Items are referenced by their
// numeric id, which is unique across all categories.
package menu

import "fmt"

type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// MenuItem is an item flattened together with its category.
type MenuItem struct {
	ID           int
	Name         string
	CategoryID   string
	CategoryName string
}

type Catalog struct {
	categories []Category
	items      []MenuItem
	byID       map[int]MenuItem
}

// New builds a catalog and rejects duplicate item ids.
func New(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: categories,
		byID:       make(map[int]MenuItem),
	}
	for _, cat := range categories {
		for _, it := range cat.Items {
			if prev, dup := c.byID[it.ID]; dup {
				return nil, fmt.Errorf("menu item id %d used by %q and %q", it.ID, prev.Name, it.Name)
			}
			mi := MenuItem{ID: it.ID, Name: it.Name, CategoryID: cat.ID, CategoryName: cat.Name}
			c.byID[it.ID] = mi
			c.items = append(c.items, mi)
		}
	}
	return c, nil
}

// Categories returns the categories in menu order.
func (c *Catalog) Categories() []Category { return c.categories }

// Items returns every item in menu order: category order, then item order.
func (c *Catalog) Items() []MenuItem { return c.items }

func (c *Catalog) Lookup(id int) (MenuItem, bool) {
	it, ok := c.byID[id]
	return it, ok
}

var defaultCatalog = func() *Catalog {
	c, err := New(restaurantMenu)
	if err != nil {
		panic(err)
	}
	return c
}()

// Default is the restaurant's menu.
func Default() *Catalog { return defaultCatalog }
