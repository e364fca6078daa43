package queries

import (
	"context"
	"errors"

	"catering/internal/core/domain/model/catalog"
	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/guard"
)

var ErrGetEligibleCatalogItemsQueryIsNotConstructed = errors.New(
	"GetEligibleCatalogItemsQuery must be created via NewGetEligibleCatalogItemsQuery constructor",
)

// GetEligibleCatalogItemsQuery lists the items a form may offer for a tier and slot.
// Unknown tiers or slots are accepted and simply yield no items.
type GetEligibleCatalogItemsQuery struct {
	tier kernel.GuestTier
	slot kernel.TimeSlot

	guard guard.ConstructorGuard
}

func NewGetEligibleCatalogItemsQuery(tier kernel.GuestTier, slot kernel.TimeSlot) GetEligibleCatalogItemsQuery {
	return GetEligibleCatalogItemsQuery{tier: tier, slot: slot, guard: guard.NewConstructorGuard()}
}

func (q GetEligibleCatalogItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetEligibleCatalogItemsQueryIsNotConstructed)
}

func (q GetEligibleCatalogItemsQuery) Tier() kernel.GuestTier {
	return q.tier
}

func (q GetEligibleCatalogItemsQuery) Slot() kernel.TimeSlot {
	return q.slot
}

type GetEligibleCatalogItemsQueryHandler struct {
	resolver services.CatalogResolver
}

func NewGetEligibleCatalogItemsQueryHandler(resolver services.CatalogResolver) GetEligibleCatalogItemsQueryHandler {
	return GetEligibleCatalogItemsQueryHandler{resolver: resolver}
}

func (h GetEligibleCatalogItemsQueryHandler) Handle(_ context.Context, query GetEligibleCatalogItemsQuery) ([]catalog.Item, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.resolver.EligibleItems(query.Tier(), query.Slot()), nil
}
