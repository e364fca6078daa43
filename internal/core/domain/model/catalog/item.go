package catalog

import (
	"errors"
	"fmt"
	"strings"

	"catering/internal/core/domain/model/kernel"
	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one orderable consumption item.
type Item struct {
	id           string
	displayName  string
	minimumTier  kernel.GuestTier
	allowedSlots []kernel.TimeSlot
	defaultUnit  string

	guard guard.ConstructorGuard
}

// NewItem validates and builds an item. Duplicate slots are collapsed and the
// remaining slots keep their declared order.
func NewItem(id, displayName string, minimumTier kernel.GuestTier, allowedSlots []kernel.TimeSlot, defaultUnit string) (Item, error) {
	item := Item{
		id:          strings.TrimSpace(id),
		displayName: strings.TrimSpace(displayName),
		minimumTier: minimumTier,
		defaultUnit: strings.TrimSpace(defaultUnit),
		guard:       guard.NewConstructorGuard(),
	}

	var problems []error
	if item.id == "" {
		problems = append(problems, errs.NewValueIsRequiredError("item.id"))
	}
	if item.displayName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("item.displayName"))
	}
	if item.defaultUnit == "" {
		problems = append(problems, errs.NewValueIsRequiredError("item.defaultUnit"))
	}
	if err := minimumTier.Validate(); err != nil {
		problems = append(problems, err)
	}
	if len(allowedSlots) == 0 {
		problems = append(problems, errs.NewValueIsRequiredError("item.allowedSlots"))
	}

	seen := make(map[kernel.TimeSlot]bool, len(allowedSlots))
	for _, slot := range allowedSlots {
		if err := slot.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"item.allowedSlots", fmt.Errorf("item %q: %w", item.id, err)))
			continue
		}
		if !seen[slot] {
			seen[slot] = true
			item.allowedSlots = append(item.allowedSlots, slot)
		}
	}

	if err := errors.Join(problems...); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ID() string {
	return i.id
}

func (i Item) DisplayName() string {
	return i.displayName
}

// MinimumTier is the lowest guest tier the item is offered to.
func (i Item) MinimumTier() kernel.GuestTier {
	return i.minimumTier
}

// AllowedSlots returns a copy of the slots the item is served in.
func (i Item) AllowedSlots() []kernel.TimeSlot {
	return append([]kernel.TimeSlot(nil), i.allowedSlots...)
}

// DefaultUnit is the counting unit a line falls back to, e.g. "kotak" or "pax".
func (i Item) DefaultUnit() string {
	return i.defaultUnit
}

// AllowsSlot reports whether the item is served in slot.
func (i Item) AllowsSlot(slot kernel.TimeSlot) bool {
	for _, allowed := range i.allowedSlots {
		if allowed == slot {
			return true
		}
	}
	return false
}

// EligibleFor reports whether guests of tier may order the item in slot.
// Unknown tiers rank 0 and are never eligible.
func (i Item) EligibleFor(tier kernel.GuestTier, slot kernel.TimeSlot) bool {
	return tier.Rank() > 0 && tier.Rank() >= i.minimumTier.Rank() && i.AllowsSlot(slot)
}
