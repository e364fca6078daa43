package catalog

import (
	"errors"
	"fmt"

	"catering/internal/pkg/errs"
)

// Catalog is an ordered, read-only set of items keyed by identifier.
type Catalog struct {
	items []Item
	byID  map[string]int
}

// NewCatalog builds a catalog. Every item must be constructed and identifiers
// must be unique.
func NewCatalog(items []Item) (Catalog, error) {
	c := Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}

	var problems []error
	for n, item := range items {
		if err := item.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("item %d: %w", n, err))
			continue
		}
		if _, dup := c.byID[item.id]; dup {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"catalog", fmt.Errorf("duplicate item id %q", item.id)))
			continue
		}
		c.byID[item.id] = len(c.items)
		c.items = append(c.items, item)
	}

	if err := errors.Join(problems...); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Items returns every item in declared order.
func (c Catalog) Items() []Item {
	return append([]Item(nil), c.items...)
}

// Item looks an item up by identifier.
func (c Catalog) Item(id string) (Item, bool) {
	n, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[n], true
}

func (c Catalog) Len() int {
	return len(c.items)
}
