package services

import (
	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
)

// CatalogResolver answers eligibility questions against a static catalog.
// Unknown tiers or slots always produce an empty result rather than an error.
type CatalogResolver struct {
	catalog catalog.Catalog
}

func NewCatalogResolver(c catalog.Catalog) CatalogResolver {
	return CatalogResolver{catalog: c}
}

// Catalog returns the catalog the resolver answers for.
func (r CatalogResolver) Catalog() catalog.Catalog {
	return r.catalog
}

// EligibleItems returns every item whose minimum tier ranks at most tier and
// whose allowed slots contain slot, in catalog order.
func (r CatalogResolver) EligibleItems(tier kernel.GuestTier, slot kernel.TimeSlot) []catalog.Item {
	if tier.Validate() != nil || slot.Validate() != nil {
		return []catalog.Item{}
	}

	eligible := make([]catalog.Item, 0, r.catalog.Len())
	for _, item := range r.catalog.Items() {
		if item.EligibleFor(tier, slot) {
			eligible = append(eligible, item)
		}
	}
	return eligible
}

// IsEligible re-checks a previously selected item after tier or slot changed.
// An id missing from the catalog is not eligible. Clearing a stale selection is
// left to the caller.
func (r CatalogResolver) IsEligible(itemID string, tier kernel.GuestTier, slot kernel.TimeSlot) bool {
	item, ok := r.catalog.Item(itemID)
	if !ok {
		return false
	}
	return item.EligibleFor(tier, slot)
}
