package queries

import (
	"context"
	"errors"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/core/domain/services"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrCheckCatalogEligibilityQueryIsNotConstructed = errors.New(
	"CheckCatalogEligibilityQuery must be created via NewCheckCatalogEligibilityQuery constructor",
)

// CheckCatalogEligibilityQuery re-validates a previously selected item after the
// tier or slot of a form changed. When the answer is false the caller clears the
// selection.
type CheckCatalogEligibilityQuery struct {
	itemID string
	tier   kernel.GuestTier
	slot   kernel.TimeSlot

	guard guard.ConstructorGuard
}

func NewCheckCatalogEligibilityQuery(itemID string, tier kernel.GuestTier, slot kernel.TimeSlot) (CheckCatalogEligibilityQuery, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return CheckCatalogEligibilityQuery{}, errs.NewValueIsRequiredError("itemID")
	}
	return CheckCatalogEligibilityQuery{
		itemID: itemID,
		tier:   tier,
		slot:   slot,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q CheckCatalogEligibilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckCatalogEligibilityQueryIsNotConstructed)
}

// CheckCatalogEligibilityQueryResponse tells whether the item exists and is eligible.
type CheckCatalogEligibilityQueryResponse struct {
	ItemID   string
	Known    bool
	Eligible bool
}

type CheckCatalogEligibilityQueryHandler struct {
	resolver services.CatalogResolver
}

func NewCheckCatalogEligibilityQueryHandler(resolver services.CatalogResolver) CheckCatalogEligibilityQueryHandler {
	return CheckCatalogEligibilityQueryHandler{resolver: resolver}
}

func (h CheckCatalogEligibilityQueryHandler) Handle(
	_ context.Context,
	query CheckCatalogEligibilityQuery,
) (CheckCatalogEligibilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckCatalogEligibilityQueryResponse{}, err
	}

	_, known := h.resolver.Catalog().Item(query.itemID)
	return CheckCatalogEligibilityQueryResponse{
		ItemID:   query.itemID,
		Known:    known,
		Eligible: h.resolver.IsEligible(query.itemID, query.tier, query.slot),
	}, nil
}
