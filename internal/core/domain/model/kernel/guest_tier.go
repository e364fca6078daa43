package kernel

import (
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

// GuestTier is the ordered class of guests an order is placed for. Its rank gates
// which catalog items may be ordered: higher tiers unlock everything lower tiers can order.
//
//	Standard(1) < Regular(2) < Premium(3) < VIP(4) < VVIP(5)
type GuestTier int

const (
	// UnknownTier is the zero value. It ranks 0, so nothing is eligible for it.
	UnknownTier GuestTier = iota
	Standard
	Regular
	Premium
	VIP
	VVIP
)

type tierNames struct {
	name  string
	label string
}

func getTierNames() map[GuestTier]tierNames {
	return map[GuestTier]tierNames{
		Standard: {"Standard", "standar"},
		Regular:  {"Regular", "reguler"},
		Premium:  {"Premium", "perta"},
		VIP:      {"VIP", "vip"},
		VVIP:     {"VVIP", "vvip"},
	}
}

// AllGuestTiers lists the valid tiers in ascending rank.
func AllGuestTiers() []GuestTier {
	return []GuestTier{Standard, Regular, Premium, VIP, VVIP}
}

// ParseGuestTier accepts the English name or the form label of a tier, ignoring case
// and surrounding spaces.
func ParseGuestTier(s string) (GuestTier, error) {
	needle := strings.TrimSpace(s)
	for tier, names := range getTierNames() {
		if strings.EqualFold(needle, names.name) || strings.EqualFold(needle, names.label) {
			return tier, nil
		}
	}
	return UnknownTier, errs.NewValueIsInvalidErrorWithCause("guestTier", fmt.Errorf("%q is not a guest tier", s))
}

// Validate rejects UnknownTier and out-of-range values.
func (t GuestTier) Validate() error {
	if _, ok := getTierNames()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("guestTier", fmt.Errorf("%d is not a valid guest tier", int(t)))
	}
	return nil
}

// Rank is the integer rank compared against a catalog item's minimum. Invalid tiers rank 0.
func (t GuestTier) Rank() int {
	if t.Validate() != nil {
		return 0
	}
	return int(t)
}

func (t GuestTier) String() string {
	if names, ok := getTierNames()[t]; ok {
		return names.name
	}
	return "Unknown"
}

// Label is the Indonesian form label of the tier.
func (t GuestTier) Label() string {
	if names, ok := getTierNames()[t]; ok {
		return names.label
	}
	return ""
}

func (t GuestTier) MarshalText() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return []byte(t.String()), nil
}

func (t *GuestTier) UnmarshalText(text []byte) error {
	parsed, err := ParseGuestTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
